package service

import (
	"errors"

	"gleam_backend/internal/model"
	"gleam_backend/internal/repository"
)

type FeedbackService struct {
	Repo *repository.FeedbackRepository
}

func NewFeedbackService(repo *repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{Repo: repo}
}

type FeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
	Page    string `json:"page"`
}

// Create records one survey entry. userID is nil for anonymous visitors.
func (s *FeedbackService) Create(userID *uint, req FeedbackRequest) (*model.Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}

	f := &model.Feedback{
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
		Page:    req.Page,
	}
	if err := s.Repo.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

type FeedbackOverview struct {
	Items         []model.Feedback `json:"items"`
	Total         int64            `json:"total"`
	AverageRating float64          `json:"averageRating"`
}

func (s *FeedbackService) List(page, limit int) (*FeedbackOverview, error) {
	items, total, err := s.Repo.List(page, limit)
	if err != nil {
		return nil, err
	}
	avg, err := s.Repo.AverageRating()
	if err != nil {
		return nil, err
	}
	return &FeedbackOverview{Items: items, Total: total, AverageRating: avg}, nil
}
