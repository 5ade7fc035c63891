package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"valuation-service/internal/domain"
	"valuation-service/internal/testutil"
	"valuation-service/internal/usecase"
)

func setupRouter() (*testutil.MockRegistry, *testutil.MockLoader, *testutil.MockRenderer, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	registry := new(testutil.MockRegistry)
	loader := new(testutil.MockLoader)
	renderer := new(testutil.MockRenderer)

	predictUC := usecase.NewPredictUseCase(registry, loader)
	documentUC := usecase.NewDocumentUseCase(renderer, nil)

	h := New(predictUC, documentUC)
	r := gin.New()
	h.RegisterRoutes(r)

	return registry, loader, renderer, r
}

func postJSON(r *gin.Engine, path string, body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPredict(t *testing.T) {
	registry, loader, _, r := setupRouter()

	model := new(testutil.MockRegressor)
	handle := domain.ArtifactHandle{CityCode: "13101", Path: "/models/real_estate_model_13101.onnx"}
	registry.On("Resolve", mock.Anything, "13101").Return(handle, nil)
	loader.On("Load", mock.Anything, handle).Return(model, nil)
	model.On("Predict", []float64{50.0, 80.0, 10}).Return(35123456.789, nil)
	model.On("Close").Return(nil)

	w := postJSON(r, "/predict", []byte(`{"city_code":"13101","features":[50.0,80.0,10]}`))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "13101", resp["city_code"])
	assert.Equal(t, 35123456.79, resp["predicted_price"])
}

func TestPredict_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no city_code", `{"features":[50.0,80.0,10]}`},
		{"no features", `{"city_code":"13101"}`},
		{"empty features", `{"city_code":"13101","features":[]}`},
		{"empty body", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, _, _, r := setupRouter()

			w := postJSON(r, "/predict", []byte(tt.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]string
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "Missing city_code or features", resp["error"])
			registry.AssertNotCalled(t, "Resolve")
		})
	}
}

func TestPredict_ModelNotFound(t *testing.T) {
	registry, _, _, r := setupRouter()

	registry.On("Resolve", mock.Anything, "99999").
		Return(domain.ArtifactHandle{}, &domain.ModelNotFoundError{CityCode: "99999"})

	w := postJSON(r, "/predict", []byte(`{"city_code":"99999","features":[1,2,3]}`))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Model for city_code 99999 not found", resp["error"])
}

func TestPredict_InternalError(t *testing.T) {
	registry, loader, _, r := setupRouter()

	handle := domain.ArtifactHandle{CityCode: "13101", Path: "p"}
	registry.On("Resolve", mock.Anything, "13101").Return(handle, nil)
	loader.On("Load", mock.Anything, handle).Return(nil, errors.New("load model artifact: incompatible format"))

	w := postJSON(r, "/predict", []byte(`{"city_code":"13101","features":[1,2,3]}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "load model artifact: incompatible format", resp["error"])
}

func TestPredict_MalformedJSON(t *testing.T) {
	_, _, _, r := setupRouter()

	w := postJSON(r, "/predict", []byte(`{"city_code":`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
