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

type CatalogService struct {
	repo   port.Repository
	images port.ImageStore
	logger *zap.Logger
}

func NewCatalogService(repo port.Repository, images port.ImageStore,
	logger *zap.Logger) (*CatalogService, error) {
	return &CatalogService{
		repo:   repo,
		images: images,
		logger: logger,
	}, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *domain.Product,
	image *port.ImageUpload) (*domain.Product, error) {
	product.ID = uuid.NewString()
	product.CreatedAt = time.Now()

	if image != nil {
		hosted, err := s.images.Upload(ctx, image.Name, image.Reader)
		if err != nil {
			s.logger.Error("Upload product image", zap.Error(err))
			return nil, domain.ErrInternal
		}
		product.ImageURL = hosted.URL
		product.ImageHandle = hosted.DeleteHandle
	}

	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		// The orphaned upload is reclaimed so the media host does not
		// accumulate images without a product row.
		if product.ImageHandle != "" {
			handle := product.ImageHandle
			bestEffort(s.logger, "delete orphaned image", func() error {
				return s.images.Delete(ctx, handle)
			})
		}
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, err
		}
		s.logger.Error("Create product", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return created, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, product *domain.Product,
	image *port.ImageUpload) (*domain.Product, error) {
	current, err := s.repo.ReadProduct(ctx, product.ID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Read product", zap.Error(err))
		return nil, domain.ErrInternal
	}

	product.ImageURL = current.ImageURL
	product.ImageHandle = current.ImageHandle

	if image != nil {
		hosted, err := s.images.Upload(ctx, image.Name, image.Reader)
		if err != nil {
			s.logger.Error("Upload product image", zap.Error(err))
			return nil, domain.ErrInternal
		}
		product.ImageURL = hosted.URL
		product.ImageHandle = hosted.DeleteHandle

		if current.ImageHandle != "" {
			handle := current.ImageHandle
			bestEffort(s.logger, "delete replaced image", func() error {
				return s.images.Delete(ctx, handle)
			})
		}
	}

	updated, err := s.repo.UpdateProduct(ctx, product)
	if err != nil {
		s.logger.Error("Update product", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return updated, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.repo.ReadProduct(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return err
		}
		s.logger.Error("Read product", zap.Error(err))
		return domain.ErrInternal
	}

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		s.logger.Error("Delete product", zap.Error(err))
		return domain.ErrInternal
	}

	if product.ImageHandle != "" {
		handle := product.ImageHandle
		bestEffort(s.logger, "delete product image", func() error {
			return s.images.Delete(ctx, handle)
		})
	}
	return nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.ReadProduct(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Read product", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context,
	filter port.ProductFilter) (*port.ProductPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 12
	}

	products, total, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		s.logger.Error("List products", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return &port.ProductPage{
		Products: products,
		Total:    total,
		Pages:    (total + filter.Limit - 1) / filter.Limit,
	}, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context,
	category *domain.Category) (*domain.Category, error) {
	created, err := s.repo.CreateCategory(ctx, category)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, err
		}
		s.logger.Error("Create category", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return created, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	list, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("List categories", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}
