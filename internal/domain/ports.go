package domain

import "context"

// ModelRegistry resolves a city code to a serialized artifact on durable
// storage. Resolution is re-derived on every call so artifacts can be
// hot-swapped on disk.
type ModelRegistry interface {
	Resolve(ctx context.Context, cityCode string) (ArtifactHandle, error)
}

// Regressor is a loaded, invocable regression model. Predict takes a single
// row of features and returns exactly one value.
type Regressor interface {
	Predict(features []float64) (float64, error)
	Close() error
}

// ArtifactLoader deserializes a resolved artifact into a Regressor. Callers
// own the returned regressor and must Close it.
type ArtifactLoader interface {
	Load(ctx context.Context, handle ArtifactHandle) (Regressor, error)
}

// DocumentRenderer converts rendered proposal markup into a binary document.
type DocumentRenderer interface {
	Render(ctx context.Context, html []byte) (*RenderedDocument, error)
}
