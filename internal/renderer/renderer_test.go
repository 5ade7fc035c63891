package renderer

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"valuation-service/internal/domain"
)

func TestPlaceholder(t *testing.T) {
	doc, err := NewPlaceholder().Render(context.Background(), []byte("<html></html>"))
	assert.NoError(t, err)
	assert.NotEmpty(t, doc.Data)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, domain.ProposalFilename, doc.Filename)
}

func TestHTTPRenderer(t *testing.T) {
	var received []byte
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "text/html; charset=utf-8", r.Header.Get("Content-Type"))
		received, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer backend.Close()

	r := NewHTTPRenderer(backend.URL, 5*time.Second)
	doc, err := r.Render(context.Background(), []byte("<html>proposal</html>"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("<html>proposal</html>"), received)
	assert.Equal(t, []byte("%PDF-1.4 fake"), doc.Data)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, domain.ProposalFilename, doc.Filename)
}

func TestHTTPRenderer_BackendError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "conversion failed", http.StatusBadGateway)
	}))
	defer backend.Close()

	r := NewHTTPRenderer(backend.URL, 5*time.Second)
	_, err := r.Render(context.Background(), []byte("<html></html>"))
	assert.EqualError(t, err, "render backend returned 502: conversion failed")
}

func TestHTTPRenderer_BackendUnreachable(t *testing.T) {
	r := NewHTTPRenderer("http://127.0.0.1:1", 500*time.Millisecond)
	_, err := r.Render(context.Background(), []byte("<html></html>"))
	assert.Error(t, err)
}
