package service

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"gleam_backend/internal/model"
	"gleam_backend/internal/repository"
	"gleam_backend/internal/util"
	"gleam_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContentService serves the educational material patients read between the
// pre and post tests. The published list is the hot read path, so it goes
// through a short-lived Redis cache.
type ContentService struct {
	Repo    *repository.MaterialRepository
	Storage *StorageService
	Redis   *redis.Client
}

func NewContentService(repo *repository.MaterialRepository, storage *StorageService, rdb *redis.Client) *ContentService {
	return &ContentService{
		Repo:    repo,
		Storage: storage,
		Redis:   rdb,
	}
}

const (
	materialCachePrefix = "materials:published:"
	materialCacheTTL    = 5 * time.Minute
)

type MaterialRequest struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category"`
	Body     string `json:"body"`
	FileURL  string `json:"fileUrl"`
}

func (s *ContentService) CreateMaterial(authorID uint, req MaterialRequest) (*model.Material, error) {
	m := &model.Material{
		Title:    req.Title,
		Category: req.Category,
		Body:     req.Body,
		FileURL:  req.FileURL,
		AuthorID: authorID,
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	s.invalidateCache(context.Background())
	return m, nil
}

func (s *ContentService) GetMaterial(id uint) (*model.Material, error) {
	return s.Repo.FindByID(id)
}

// ListPublished reads through the cache; a cache error degrades to the
// database, never to a failed request.
func (s *ContentService) ListPublished(ctx context.Context, category string) ([]model.Material, error) {
	key := materialCachePrefix + category

	if cached, err := s.Redis.Get(ctx, key).Result(); err == nil {
		var ms []model.Material
		if err := json.Unmarshal([]byte(cached), &ms); err == nil {
			return ms, nil
		}
	}

	ms, err := s.Repo.ListPublished(category)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(ms); err == nil {
		if err := s.Redis.Set(ctx, key, payload, materialCacheTTL).Err(); err != nil {
			logger.Log.Warn("material cache write failed", zap.Error(err))
		}
	}
	return ms, nil
}

func (s *ContentService) ListAll(page, limit int) ([]model.Material, int64, error) {
	return s.Repo.List(page, limit)
}

func (s *ContentService) UpdateMaterial(id uint, req MaterialRequest) (*model.Material, error) {
	m, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	m.Title = req.Title
	m.Category = req.Category
	m.Body = req.Body
	m.FileURL = req.FileURL
	if err := s.Repo.Update(m); err != nil {
		return nil, err
	}
	s.invalidateCache(context.Background())
	return m, nil
}

func (s *ContentService) SetPublished(id uint, published bool) (*model.Material, error) {
	m, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	m.IsPublished = published
	if err := s.Repo.Update(m); err != nil {
		return nil, err
	}
	s.invalidateCache(context.Background())
	return m, nil
}

func (s *ContentService) DeleteMaterial(id uint) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache(context.Background())
	return nil
}

var uploadImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// validUploadType accepts images and PDFs only; the declared content type and
// the file extension must agree.
func validUploadType(contentType, ext string) bool {
	switch {
	case strings.HasPrefix(contentType, util.MimeImage):
		return uploadImageExts[ext]
	case contentType == util.MimePDF:
		return ext == ".pdf"
	}
	return false
}

// UploadFile stores an attachment (image or PDF) and returns its URL.
func (s *ContentService) UploadFile(ctx context.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !validUploadType(file.Header.Get("Content-Type"), ext) {
		return "", util.ErrInvalidUploadType
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := "materials/" + time.Now().Format("20060102150405") + "_" + uuid.New().String()[:8] + ext

	return s.Storage.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
}

func (s *ContentService) invalidateCache(ctx context.Context) {
	iter := s.Redis.Scan(ctx, 0, materialCachePrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		s.Redis.Del(ctx, iter.Val())
	}
}
