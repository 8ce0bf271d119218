package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hanifwid/printmart/internal/core/domain"
	"github.com/hanifwid/printmart/internal/core/port"
	"github.com/hanifwid/printmart/internal/core/port/mock"
	"github.com/hanifwid/printmart/internal/core/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCatalogService_CreateProductWithImage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	repo := mock.NewMockRepository(mockCtrl)
	images := mock.NewMockImageStore(mockCtrl)

	upload := &port.ImageUpload{Name: "brochure.png", Reader: strings.NewReader("png")}
	hosted := &port.HostedImage{URL: "https://img.example.com/a.png", DeleteHandle: "h-1"}

	images.EXPECT().Upload(gomock.Any(), upload.Name, upload.Reader).Return(hosted, nil)
	repo.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Product) (*domain.Product, error) {
			assert.NotEmpty(t, p.ID)
			assert.Equal(t, hosted.URL, p.ImageURL)
			assert.Equal(t, hosted.DeleteHandle, p.ImageHandle)
			return p, nil
		})

	s, err := service.NewCatalogService(repo, images, logger)
	assert.NoError(t, err)

	created, err := s.CreateProduct(context.Background(),
		&domain.Product{Name: "Brochure", Price: mustDecimal(t, 150000)}, upload)

	assert.NoError(t, err)
	assert.Equal(t, hosted.URL, created.ImageURL)
}

func TestCatalogService_CreateProductReclaimsOrphanedImage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	repo := mock.NewMockRepository(mockCtrl)
	images := mock.NewMockImageStore(mockCtrl)

	upload := &port.ImageUpload{Name: "brochure.png", Reader: strings.NewReader("png")}
	hosted := &port.HostedImage{URL: "https://img.example.com/a.png", DeleteHandle: "h-1"}

	gomock.InOrder(
		images.EXPECT().Upload(gomock.Any(), upload.Name, upload.Reader).Return(hosted, nil),
		repo.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConflictingData),
		images.EXPECT().Delete(gomock.Any(), hosted.DeleteHandle).Return(nil),
	)

	s, err := service.NewCatalogService(repo, images, logger)
	assert.NoError(t, err)

	created, err := s.CreateProduct(context.Background(),
		&domain.Product{Name: "Brochure", Price: mustDecimal(t, 150000)}, upload)

	assert.Nil(t, created)
	assert.ErrorIs(t, err, domain.ErrConflictingData)
}

func TestCatalogService_UpdateProductReplacesImage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	repo := mock.NewMockRepository(mockCtrl)
	images := mock.NewMockImageStore(mockCtrl)

	current := &domain.Product{
		ID:          "prod-1",
		Name:        "Brochure",
		Price:       mustDecimal(t, 150000),
		ImageURL:    "https://img.example.com/old.png",
		ImageHandle: "h-old",
	}
	upload := &port.ImageUpload{Name: "new.png", Reader: strings.NewReader("png")}
	hosted := &port.HostedImage{URL: "https://img.example.com/new.png", DeleteHandle: "h-new"}

	repo.EXPECT().ReadProduct(gomock.Any(), current.ID).Return(current, nil)
	images.EXPECT().Upload(gomock.Any(), upload.Name, upload.Reader).Return(hosted, nil)
	images.EXPECT().Delete(gomock.Any(), "h-old").Return(nil)
	repo.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Product) (*domain.Product, error) {
			assert.Equal(t, hosted.URL, p.ImageURL)
			assert.Equal(t, hosted.DeleteHandle, p.ImageHandle)
			return p, nil
		})

	s, err := service.NewCatalogService(repo, images, logger)
	assert.NoError(t, err)

	updated, err := s.UpdateProduct(context.Background(),
		&domain.Product{ID: current.ID, Name: "Brochure A5", Price: mustDecimal(t, 175000)}, upload)

	assert.NoError(t, err)
	assert.Equal(t, hosted.URL, updated.ImageURL)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	tests := []struct {
		name     string
		mock     func(repo *mock.MockRepository, images *mock.MockImageStore)
		expError error
	}{
		{
			name: "deletes row then image",
			mock: func(repo *mock.MockRepository, images *mock.MockImageStore) {
				gomock.InOrder(
					repo.EXPECT().ReadProduct(gomock.Any(), "prod-1").
						Return(&domain.Product{ID: "prod-1", ImageHandle: "h-1"}, nil),
					repo.EXPECT().DeleteProduct(gomock.Any(), "prod-1").Return(nil),
					images.EXPECT().Delete(gomock.Any(), "h-1").Return(nil),
				)
			},
		},
		{
			name: "image delete failure is swallowed",
			mock: func(repo *mock.MockRepository, images *mock.MockImageStore) {
				repo.EXPECT().ReadProduct(gomock.Any(), "prod-1").
					Return(&domain.Product{ID: "prod-1", ImageHandle: "h-1"}, nil)
				repo.EXPECT().DeleteProduct(gomock.Any(), "prod-1").Return(nil)
				images.EXPECT().Delete(gomock.Any(), "h-1").Return(domain.ErrInternal)
			},
		},
		{
			name: "unknown product",
			mock: func(repo *mock.MockRepository, images *mock.MockImageStore) {
				repo.EXPECT().ReadProduct(gomock.Any(), "prod-1").Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrDataNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			images := mock.NewMockImageStore(mockCtrl)
			test.mock(repo, images)

			s, err := service.NewCatalogService(repo, images, logger)
			assert.NoError(t, err)

			err = s.DeleteProduct(context.Background(), "prod-1")

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCatalogService_ListProductsDefaults(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	repo := mock.NewMockRepository(mockCtrl)
	images := mock.NewMockImageStore(mockCtrl)
	repo.EXPECT().
		ListProducts(gomock.Any(), port.ProductFilter{Page: 1, Limit: 12}).
		Return(make([]*domain.Product, 12), 25, nil)

	s, err := service.NewCatalogService(repo, images, logger)
	assert.NoError(t, err)

	page, err := s.ListProducts(context.Background(), port.ProductFilter{})

	assert.NoError(t, err)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 3, page.Pages)
}
