package port

import (
	"context"
	"io"

	"github.com/hanifwid/printmart/internal/core/domain"
)

// OrderPage is one page of an admin order search.
type OrderPage struct {
	Orders []*domain.Order
	Total  int
	Pages  int
}

// ProductPage is one page of a catalog listing.
type ProductPage struct {
	Products []*domain.Product
	Total    int
	Pages    int
}

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type OrderService interface {
	PlaceOrder(ctx context.Context, userID uint64, items []domain.LineItem) (*domain.Order, error)
	GetUserOrders(ctx context.Context, userID uint64, statuses ...domain.OrderStatus) ([]*domain.Order, error)
	GetOrders(ctx context.Context, filter OrderFilter) (*OrderPage, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

type NotificationService interface {
	Notify(ctx context.Context, recipientID uint64, title, message string,
		ntype domain.NotificationType, link string) (*domain.Notification, error)
	List(ctx context.Context, recipientID uint64, limit int) ([]*domain.Notification, error)
	UnreadCount(ctx context.Context, recipientID uint64) (int64, error)
	MarkRead(ctx context.Context, recipientID uint64, id string) error
	MarkAllRead(ctx context.Context, recipientID uint64) error
}

// ImageUpload carries an inbound image file towards the media host.
type ImageUpload struct {
	Name   string
	Reader io.Reader
}

type CatalogService interface {
	CreateProduct(ctx context.Context, product *domain.Product, image *ImageUpload) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product, image *ImageUpload) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) (*ProductPage, error)
	CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}

type ContentService interface {
	CreateBanner(ctx context.Context, title string, image *ImageUpload) (*domain.Banner, error)
	ListBanners(ctx context.Context) ([]*domain.Banner, error)
	DeleteBanner(ctx context.Context, id string) error
	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, settings *domain.Settings) (*domain.Settings, error)
}

type UserService interface {
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, email, password string) (string, error)
	GetProfile(ctx context.Context, userID uint64) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error)
}
