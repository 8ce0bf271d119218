package port

import (
	"context"

	"github.com/hanifwid/printmart/internal/core/domain"
)

type OrderFilter struct {
	// Search matches against order id, purchaser name and purchaser email.
	Search string
	Status domain.OrderStatus
	Page   int
	Limit  int
}

type ProductFilter struct {
	Search     string
	CategoryID uint64
	Page       int
	Limit      int
}

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ReadUser(ctx context.Context, id uint64) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	ListUsersByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error)

	// Catalog
	CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ReadProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]*domain.Product, int, error)

	// Order
	CreateOrderWithItems(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64, statuses []domain.OrderStatus) ([]*domain.Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]*domain.Order, int, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error

	// Notification
	CreateNotification(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListNotifications(ctx context.Context, recipientID uint64, limit int) ([]*domain.Notification, error)
	CountUnreadNotifications(ctx context.Context, recipientID uint64) (int64, error)
	MarkNotificationRead(ctx context.Context, recipientID uint64, id string) error
	MarkAllNotificationsRead(ctx context.Context, recipientID uint64) error

	// Content
	CreateBanner(ctx context.Context, banner *domain.Banner) (*domain.Banner, error)
	ReadBanner(ctx context.Context, id string) (*domain.Banner, error)
	ListBanners(ctx context.Context) ([]*domain.Banner, error)
	DeleteBanner(ctx context.Context, id string) error
	ReadSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, settings *domain.Settings) (*domain.Settings, error)
}
