package service

import (
	"context"
	"errors"
	"time"

	"github.com/hanifwid/printmart/internal/core/domain"
	"github.com/hanifwid/printmart/internal/core/port"
	"github.com/hanifwid/printmart/internal/core/utils"
	"go.uber.org/zap"
)

type UserService struct {
	repo         port.Repository
	tokenService port.TokenService
	logger       *zap.Logger
}

func NewUserService(repo port.Repository, tokenService port.TokenService,
	logger *zap.Logger) (*UserService, error) {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		logger:       logger,
	}, nil
}

func (s *UserService) RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	exUser, err := s.repo.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if exUser != nil {
		return nil, domain.ErrConflictingData
	}

	if user.Role == "" {
		user.Role = domain.RoleCustomer
	}
	user.CreatedAt = time.Now()

	newUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error("Create user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newUser, nil
}

func (s *UserService) LoginUser(ctx context.Context, email string, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uint64) (*domain.User, error) {
	user, err := s.repo.ReadUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Read user", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error) {
	current, err := s.repo.ReadUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Read user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	// Role and credentials are not editable through the profile form.
	user.Role = current.Role
	user.Email = current.Email
	user.Password = current.Password

	updated, err := s.repo.UpdateUser(ctx, user)
	if err != nil {
		s.logger.Error("Update user", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return updated, nil
}
