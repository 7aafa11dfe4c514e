package service

import (
	"gleam_backend/internal/model"
	"gleam_backend/internal/repository"
	"gleam_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) GetUser(id uint) (*model.User, error) {
	return s.Repo.FindByID(id)
}

func (s *UserService) ListUsers(page, limit int, role, name string) ([]model.User, int64, error) {
	return s.Repo.List(page, limit, role, name)
}

type UpdateUserRequest struct {
	Name  string         `json:"name"`
	Phone string         `json:"phone"`
	Role  model.UserRole `json:"role"`
}

func (s *UserService) UpdateUser(id uint, req UpdateUserRequest) (*model.User, error) {
	user, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Role != "" {
		if !req.Role.Valid() {
			return nil, util.ErrPermissionDenied
		}
		user.Role = req.Role
	}

	if err := s.Repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(id uint) error {
	return s.Repo.Delete(id)
}

func (s *UserService) ResetPassword(id uint, newPassword string) error {
	user, err := s.Repo.FindByID(id)
	if err != nil {
		return util.ErrUserNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return s.Repo.Update(user)
}

func (s *UserService) SetDisabled(id uint, disabled bool) error {
	user, err := s.Repo.FindByID(id)
	if err != nil {
		return util.ErrUserNotFound
	}
	user.Disabled = disabled
	return s.Repo.Update(user)
}
