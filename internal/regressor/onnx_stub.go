//go:build !cgo
// +build !cgo

package regressor

import (
	"context"
	"errors"

	"valuation-service/internal/config"
	"valuation-service/internal/domain"
)

// ONNXLoader stub type when built without CGO (see onnx.go for the real
// implementation).
type ONNXLoader struct{}

func NewONNXLoader(_ config.ModelsConfig) *ONNXLoader {
	return &ONNXLoader{}
}

// Load returns an error when built without CGO (ONNX not available).
func (l *ONNXLoader) Load(_ context.Context, _ domain.ArtifactHandle) (domain.Regressor, error) {
	return nil, errors.New("ONNX regressor requires CGO; build with CGO_ENABLED=1 and onnxruntime")
}
