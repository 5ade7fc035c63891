package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"valuation-service/internal/domain"
)

// PredictUseCase is the inference pipeline behind POST /predict.
type PredictUseCase interface {
	Predict(ctx context.Context, req domain.PredictionRequest) (*domain.PredictionResult, error)
}

// DocumentUseCase is the proposal pipeline behind POST /generate_pdf.
type DocumentUseCase interface {
	Generate(ctx context.Context, req domain.DocumentRequest) (*domain.RenderedDocument, error)
}

type Handler struct {
	predictUC  PredictUseCase
	documentUC DocumentUseCase
}

func New(predictUC PredictUseCase, documentUC DocumentUseCase) *Handler {
	return &Handler{predictUC: predictUC, documentUC: documentUC}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/predict", h.Predict)
	r.POST("/generate_pdf", h.GenerateDocument)
}
