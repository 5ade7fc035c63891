package renderer

import (
	"context"

	"valuation-service/internal/domain"
)

// Placeholder stands in when no rendering backend is configured. It returns a
// fixed non-empty payload with PDF headers so the endpoint stays available
// while the backend is disabled.
type Placeholder struct{}

func NewPlaceholder() *Placeholder {
	return &Placeholder{}
}

func (Placeholder) Render(_ context.Context, _ []byte) (*domain.RenderedDocument, error) {
	return &domain.RenderedDocument{
		Data:        []byte("PDFレンダリングバックエンドは無効です（RENDERER_ENABLEDで有効化してください）"),
		ContentType: "application/pdf",
		Filename:    domain.ProposalFilename,
	}, nil
}
