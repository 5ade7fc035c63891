package dto

type PredictRequest struct {
	CityCode string    `json:"city_code"`
	Features []float64 `json:"features"`
}

type PredictResponse struct {
	CityCode       string  `json:"city_code"`
	PredictedPrice float64 `json:"predicted_price"`
}

type PropertyInfoDTO struct {
	Address         string  `json:"address"`
	LandAreaSqm     float64 `json:"land_area_sqm"`
	BuildingAreaSqm float64 `json:"building_area_sqm"`
	BuildingYear    string  `json:"building_year"`
	Structure       string  `json:"structure"`
}

type PriceRangeDTO struct {
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
}

// GenerateDocumentRequest mirrors the /generate_pdf body. Every field is
// optional; defaults are applied during assembly.
type GenerateDocumentRequest struct {
	PropertyInfo       PropertyInfoDTO `json:"property_info"`
	PredictedPrice     float64         `json:"predicted_price"`
	ProposedPriceRange PriceRangeDTO   `json:"proposed_price_range"`
	AIMarketLiquidity  string          `json:"ai_market_liquidity"`
}
