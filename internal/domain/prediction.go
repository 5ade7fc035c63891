package domain

// PredictionRequest is a valuation request for a single property. Features
// are passed to the regressor in caller order; the trained model fixes the
// expected order and arity.
type PredictionRequest struct {
	CityCode string
	Features []float64
}

// PredictionResult carries the predicted price rounded to 2 decimal places.
type PredictionResult struct {
	CityCode       string
	PredictedPrice float64
}

// ArtifactHandle points at a serialized regression artifact on disk. Identity
// is the path derived from the city code.
type ArtifactHandle struct {
	CityCode string
	Path     string
}
