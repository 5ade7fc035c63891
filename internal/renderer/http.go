// Package renderer converts filled proposal markup into binary documents.
package renderer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"valuation-service/internal/domain"
)

// HTTPRenderer posts proposal HTML to an external PDF rendering backend and
// returns the bytes it produces.
type HTTPRenderer struct {
	httpClient *http.Client
	backendURL string
}

func NewHTTPRenderer(backendURL string, timeout time.Duration) *HTTPRenderer {
	return &HTTPRenderer{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		backendURL: backendURL,
	}
}

func (r *HTTPRenderer) Render(ctx context.Context, html []byte) (*domain.RenderedDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.backendURL, bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("create render request: %w", err)
	}
	req.Header.Set("Content-Type", "text/html; charset=utf-8")
	req.Header.Set("Accept", "application/pdf")

	log.WithFields(log.Fields{
		"url":   r.backendURL,
		"bytes": len(html),
	}).Debug("forwarding proposal to render backend")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("render backend request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("render backend returned %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read rendered document: %w", err)
	}

	return &domain.RenderedDocument{
		Data:        pdf,
		ContentType: "application/pdf",
		Filename:    domain.ProposalFilename,
	}, nil
}
