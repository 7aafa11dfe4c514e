package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"gleam_backend/internal/config"
	"gleam_backend/internal/model"
	"gleam_backend/internal/repository"
	"gleam_backend/internal/util"
	"gleam_backend/pkg/monitoring"
)

// ScreeningService forwards diabetes-risk features to the external scoring
// service and keeps a record of every prediction per patient.
type ScreeningService struct {
	Repo   *repository.ScreeningRepository
	Cfg    config.PredictionConfig
	client *http.Client
}

func NewScreeningService(repo *repository.ScreeningRepository, cfg config.PredictionConfig) *ScreeningService {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &ScreeningService{
		Repo:   repo,
		Cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// PredictionError carries the message the scoring service sent back, so the
// portal can show it instead of a generic one.
type PredictionError struct {
	Message string
}

func (e *PredictionError) Error() string {
	return e.Message
}

type predictionResponse struct {
	Risk        string   `json:"risk"`
	Probability *float64 `json:"probability"`
	Error       *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Predict sends the feature payload to the prediction API, validates the
// response shape at the boundary, and persists the screening record.
func (s *ScreeningService) Predict(ctx context.Context, patientID uint, features json.RawMessage) (*model.ScreeningRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Cfg.BaseURL+"/predict", bytes.NewReader(features))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.Cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.Cfg.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		monitoring.PredictionCalls.WithLabelValues("network_error").Inc()
		return nil, fmt.Errorf("prediction service unreachable: %w", err)
	}
	defer resp.Body.Close()

	var decoded predictionResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&decoded)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		monitoring.PredictionCalls.WithLabelValues("server_error").Inc()
		// Prefer the server-supplied message, fall back to a generic one.
		if decodeErr == nil {
			if decoded.Error != nil && decoded.Error.Message != "" {
				return nil, &PredictionError{Message: decoded.Error.Message}
			}
			if decoded.Message != "" {
				return nil, &PredictionError{Message: decoded.Message}
			}
		}
		return nil, &PredictionError{Message: "prediction service request failed"}
	}

	// A 2xx with a shape we do not recognize is a decode failure, not a
	// silently defaulted record.
	if decodeErr != nil || decoded.Risk == "" || decoded.Probability == nil ||
		*decoded.Probability < 0 || *decoded.Probability > 1 {
		monitoring.PredictionCalls.WithLabelValues("decode_error").Inc()
		return nil, util.ErrPredictionDecode
	}
	monitoring.PredictionCalls.WithLabelValues("ok").Inc()

	record := &model.ScreeningRecord{
		PatientID:   patientID,
		Features:    features,
		RiskLabel:   decoded.Risk,
		Probability: *decoded.Probability,
	}
	if err := s.Repo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *ScreeningService) HistoryForPatient(patientID uint) ([]model.ScreeningRecord, error) {
	return s.Repo.ListByPatient(patientID)
}

func (s *ScreeningService) List(page, limit int, riskLabel string) ([]model.ScreeningRecord, int64, error) {
	return s.Repo.List(page, limit, riskLabel)
}

func (s *ScreeningService) Get(id string) (*model.ScreeningRecord, error) {
	rec, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, errors.New("screening record not found")
	}
	return rec, nil
}
