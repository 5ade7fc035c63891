package usecase

import (
	"context"
	"math"

	"valuation-service/internal/domain"
)

type PredictUseCase struct {
	registry domain.ModelRegistry
	loader   domain.ArtifactLoader
}

func NewPredictUseCase(registry domain.ModelRegistry, loader domain.ArtifactLoader) *PredictUseCase {
	return &PredictUseCase{registry: registry, loader: loader}
}

// Predict validates the request, resolves and loads the city's artifact, and
// runs a single-row inference. The artifact is loaded fresh on every call so
// swapped files take effect immediately.
func (uc *PredictUseCase) Predict(ctx context.Context, req domain.PredictionRequest) (*domain.PredictionResult, error) {
	if req.CityCode == "" || emptyFeatures(req.Features) {
		return nil, domain.ErrMissingFields
	}

	handle, err := uc.registry.Resolve(ctx, req.CityCode)
	if err != nil {
		return nil, err
	}

	model, err := uc.loader.Load(ctx, handle)
	if err != nil {
		return nil, err
	}
	defer model.Close()

	price, err := model.Predict(req.Features)
	if err != nil {
		return nil, err
	}

	return &domain.PredictionResult{
		CityCode:       req.CityCode,
		PredictedPrice: math.Round(price*100) / 100,
	}, nil
}

// emptyFeatures treats an absent, empty or all-zero vector as missing input.
func emptyFeatures(features []float64) bool {
	for _, f := range features {
		if f != 0 {
			return false
		}
	}
	return true
}
