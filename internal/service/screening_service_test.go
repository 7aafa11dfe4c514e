package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gleam_backend/internal/config"
	"gleam_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func screeningServiceFor(url string) *ScreeningService {
	return NewScreeningService(nil, config.PredictionConfig{BaseURL: url, TimeoutSeconds: 2})
}

func TestPredictServerErrorMessagePreferred(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "fitur glukosa wajib diisi"},
		})
	}))
	defer server.Close()

	svc := screeningServiceFor(server.URL)
	_, err := svc.Predict(context.Background(), 1, json.RawMessage(`{}`))

	var perr *PredictionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "fitur glukosa wajib diisi", perr.Message)
}

func TestPredictServerErrorTopLevelMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "model sedang dimuat"})
	}))
	defer server.Close()

	svc := screeningServiceFor(server.URL)
	_, err := svc.Predict(context.Background(), 1, json.RawMessage(`{}`))

	var perr *PredictionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "model sedang dimuat", perr.Message)
}

func TestPredictServerErrorGenericFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	svc := screeningServiceFor(server.URL)
	_, err := svc.Predict(context.Background(), 1, json.RawMessage(`{}`))

	var perr *PredictionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "prediction service request failed", perr.Message)
}

func TestPredictDecodeFailureOnUnexpectedShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "hello"},
		{"missing risk", `{"probability": 0.4}`},
		{"missing probability", `{"risk": "high"}`},
		{"probability above one", `{"risk": "high", "probability": 1.5}`},
		{"probability below zero", `{"risk": "low", "probability": -0.1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			svc := screeningServiceFor(server.URL)
			_, err := svc.Predict(context.Background(), 1, json.RawMessage(`{}`))
			assert.ErrorIs(t, err, util.ErrPredictionDecode)
		})
	}
}

func TestPredictForwardsFeaturesAndAuth(t *testing.T) {
	var gotPath, gotAuth, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		// Refuse before the service would try to persist anything.
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "ditolak"})
	}))
	defer server.Close()

	svc := NewScreeningService(nil, config.PredictionConfig{BaseURL: server.URL, APIKey: "sk-test", TimeoutSeconds: 2})
	_, err := svc.Predict(context.Background(), 1, json.RawMessage(`{"glucose":140}`))

	require.Error(t, err)
	assert.Equal(t, "/predict", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.JSONEq(t, `{"glucose":140}`, gotBody)
}
