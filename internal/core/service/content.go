package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hanifwid/printmart/internal/core/domain"
	"github.com/hanifwid/printmart/internal/core/port"
	"go.uber.org/zap"
)

type ContentService struct {
	repo   port.Repository
	images port.ImageStore
	logger *zap.Logger
}

func NewContentService(repo port.Repository, images port.ImageStore,
	logger *zap.Logger) (*ContentService, error) {
	return &ContentService{
		repo:   repo,
		images: images,
		logger: logger,
	}, nil
}

func (s *ContentService) CreateBanner(ctx context.Context, title string,
	image *port.ImageUpload) (*domain.Banner, error) {
	if image == nil {
		return nil, domain.ErrBadRequest
	}

	hosted, err := s.images.Upload(ctx, image.Name, image.Reader)
	if err != nil {
		s.logger.Error("Upload banner image", zap.Error(err))
		return nil, domain.ErrInternal
	}

	banner := &domain.Banner{
		ID:          uuid.NewString(),
		Title:       title,
		ImageURL:    hosted.URL,
		ImageHandle: hosted.DeleteHandle,
		CreatedAt:   time.Now(),
	}

	created, err := s.repo.CreateBanner(ctx, banner)
	if err != nil {
		handle := hosted.DeleteHandle
		bestEffort(s.logger, "delete orphaned image", func() error {
			return s.images.Delete(ctx, handle)
		})
		s.logger.Error("Create banner", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return created, nil
}

func (s *ContentService) ListBanners(ctx context.Context) ([]*domain.Banner, error) {
	list, err := s.repo.ListBanners(ctx)
	if err != nil {
		s.logger.Error("List banners", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *ContentService) DeleteBanner(ctx context.Context, id string) error {
	banner, err := s.repo.ReadBanner(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return err
		}
		s.logger.Error("Read banner", zap.Error(err))
		return domain.ErrInternal
	}

	if err := s.repo.DeleteBanner(ctx, id); err != nil {
		s.logger.Error("Delete banner", zap.Error(err))
		return domain.ErrInternal
	}

	if banner.ImageHandle != "" {
		handle := banner.ImageHandle
		bestEffort(s.logger, "delete banner image", func() error {
			return s.images.Delete(ctx, handle)
		})
	}
	return nil
}

func (s *ContentService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.repo.ReadSettings(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Read settings", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return settings, nil
}

func (s *ContentService) UpdateSettings(ctx context.Context,
	settings *domain.Settings) (*domain.Settings, error) {
	settings.UpdatedAt = time.Now()
	updated, err := s.repo.UpdateSettings(ctx, settings)
	if err != nil {
		s.logger.Error("Update settings", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return updated, nil
}
