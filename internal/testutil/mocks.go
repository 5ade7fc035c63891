package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"valuation-service/internal/domain"
)

// MockRegistry is a mock of ModelRegistry.
type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) Resolve(ctx context.Context, cityCode string) (domain.ArtifactHandle, error) {
	args := m.Called(ctx, cityCode)
	return args.Get(0).(domain.ArtifactHandle), args.Error(1)
}

// MockLoader is a mock of ArtifactLoader.
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) Load(ctx context.Context, handle domain.ArtifactHandle) (domain.Regressor, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Regressor), args.Error(1)
}

// MockRegressor is a mock of Regressor.
type MockRegressor struct {
	mock.Mock
}

func (m *MockRegressor) Predict(features []float64) (float64, error) {
	args := m.Called(features)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRegressor) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockRenderer is a mock of DocumentRenderer.
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(ctx context.Context, html []byte) (*domain.RenderedDocument, error) {
	args := m.Called(ctx, html)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RenderedDocument), args.Error(1)
}
