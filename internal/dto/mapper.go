package dto

import "valuation-service/internal/domain"

func ToPredictionRequest(r PredictRequest) domain.PredictionRequest {
	return domain.PredictionRequest{
		CityCode: r.CityCode,
		Features: r.Features,
	}
}

func ToPredictResponse(res *domain.PredictionResult) PredictResponse {
	return PredictResponse{
		CityCode:       res.CityCode,
		PredictedPrice: res.PredictedPrice,
	}
}

func ToDocumentRequest(r GenerateDocumentRequest) domain.DocumentRequest {
	return domain.DocumentRequest{
		PropertyInfo: domain.PropertyInfo{
			Address:         r.PropertyInfo.Address,
			LandAreaSqm:     r.PropertyInfo.LandAreaSqm,
			BuildingAreaSqm: r.PropertyInfo.BuildingAreaSqm,
			BuildingYear:    r.PropertyInfo.BuildingYear,
			Structure:       r.PropertyInfo.Structure,
		},
		PredictedPrice: r.PredictedPrice,
		ProposedPriceRange: domain.PriceRange{
			MinPrice: r.ProposedPriceRange.MinPrice,
			MaxPrice: r.ProposedPriceRange.MaxPrice,
		},
		AIMarketLiquidity: r.AIMarketLiquidity,
	}
}
