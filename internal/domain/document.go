package domain

// ProposalFilename is the suggested download name for generated proposals.
const ProposalFilename = "real_estate_estimate.pdf"

// LiquidityUnclassified is substituted when no market-liquidity label was
// supplied.
const LiquidityUnclassified = "未判定"

type PropertyInfo struct {
	Address         string
	LandAreaSqm     float64
	BuildingAreaSqm float64
	BuildingYear    string
	Structure       string
}

type PriceRange struct {
	MinPrice float64
	MaxPrice float64
}

// DocumentRequest is the input to proposal generation. Every field is
// optional; missing values fall back to defaults during assembly.
type DocumentRequest struct {
	PropertyInfo       PropertyInfo
	PredictedPrice     float64
	ProposedPriceRange PriceRange
	AIMarketLiquidity  string
}

// FilledTemplate is the proposal schema fully merged with defaults,
// pre-rendering. All values are formatted strings so the rendered document
// never depends on numeric formatting rules downstream.
type FilledTemplate struct {
	Date            string
	Address         string
	LandAreaSqm     string
	BuildingAreaSqm string
	BuildingYear    string
	Structure       string
	PredictedPrice  string
	MinPrice        string
	MaxPrice        string
	MarketLiquidity string
}

// RenderedDocument is the binary output of the renderer. Ephemeral, produced
// per request.
type RenderedDocument struct {
	Data        []byte
	ContentType string
	Filename    string
}
