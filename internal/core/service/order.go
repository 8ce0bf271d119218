package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/hanifwid/printmart/internal/core/domain"
	"github.com/hanifwid/printmart/internal/core/port"
	"github.com/hanifwid/printmart/internal/core/utils"
	"go.uber.org/zap"
)

type OrderService struct {
	repo     port.Repository
	notifier port.NotificationService
	logger   *zap.Logger
}

func NewOrderService(repo port.Repository, notifier port.NotificationService,
	logger *zap.Logger) (*OrderService, error) {
	return &OrderService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}, nil
}

// PlaceOrder converts a submitted cart into a durable order. Duplicate
// product references are merged, the unit price of every product is
// snapshotted at call time, and the order with its items is written as one
// atomic unit. Admins are notified after the order is persisted; their
// notification failures never fail the order.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uint64,
	items []domain.LineItem) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, domain.ErrOrderEmpty
	}

	// Merge duplicate product lines, keeping first-seen order.
	merged := make(map[string]int64, len(items))
	productIDs := make([]string, 0, len(items))
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, domain.ErrOrderBadQuantity
		}
		if _, seen := merged[it.ProductID]; !seen {
			productIDs = append(productIDs, it.ProductID)
		}
		merged[it.ProductID] += it.Quantity
	}

	purchaser, err := s.repo.ReadUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Read purchaser", zap.Error(err))
		return nil, domain.ErrInternal
	}

	total := decimal.Zero
	orderItems := make([]*domain.OrderItem, 0, len(productIDs))
	for _, productID := range productIDs {
		product, err := s.repo.ReadProduct(ctx, productID)
		if err != nil {
			if errors.Is(err, domain.ErrDataNotFound) {
				return nil, fmt.Errorf("product %q: %w", productID, domain.ErrProductNotFound)
			}
			s.logger.Error("Read product", zap.String("product", productID), zap.Error(err))
			return nil, domain.ErrInternal
		}

		quantity := merged[productID]
		qty, err := decimal.New(quantity, 0)
		if err != nil {
			return nil, fmt.Errorf("math error:%w", err)
		}
		line, err := product.Price.Mul(qty)
		if err != nil {
			return nil, fmt.Errorf("math error:%w", err)
		}
		total, err = total.Add(line)
		if err != nil {
			return nil, fmt.Errorf("math error:%w", err)
		}

		orderItems = append(orderItems, &domain.OrderItem{
			ProductID: productID,
			Quantity:  quantity,
			Price:     product.Price,
			Product:   product,
		})
	}

	order := &domain.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Status:    domain.OrderStatusPending,
		Total:     total,
		CreatedAt: time.Now(),
		User:      purchaser,
		Items:     orderItems,
	}
	for _, item := range order.Items {
		item.OrderID = order.ID
	}

	created, err := s.repo.CreateOrderWithItems(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	s.notifyAdmins(ctx, created, purchaser)

	return created, nil
}

func (s *OrderService) notifyAdmins(ctx context.Context, order *domain.Order, purchaser *domain.User) {
	admins, err := s.repo.ListUsersByRole(ctx, domain.RoleAdmin)
	if err != nil {
		s.logger.Warn("List admins for order notification", zap.Error(err))
		return
	}

	title := "New order received"
	message := fmt.Sprintf("Order #%s placed by %s, total %s",
		order.ShortID(), purchaser.Name, utils.FormatRupiah(order.Total))
	link := "/admin/orders/" + order.ID

	for _, admin := range admins {
		recipientID := admin.ID
		bestEffort(s.logger, "notify admin", func() error {
			_, err := s.notifier.Notify(ctx, recipientID, title, message,
				domain.NotificationTypeInfo, link)
			return err
		})
	}
}

func (s *OrderService) GetUserOrders(ctx context.Context, userID uint64,
	statuses ...domain.OrderStatus) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByUser(ctx, userID, statuses)
	if err != nil {
		s.logger.Error("List orders for user", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *OrderService) GetOrders(ctx context.Context, filter port.OrderFilter) (*port.OrderPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.ErrOrderUnknownStatus
	}

	orders, total, err := s.repo.ListOrders(ctx, filter)
	if err != nil {
		s.logger.Error("List orders", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return &port.OrderPage{
		Orders: orders,
		Total:  total,
		Pages:  (total + filter.Limit - 1) / filter.Limit,
	}, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Read order", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return order, nil
}

// UpdateOrderStatus moves an order along the lifecycle state machine.
// Repeating the current status is a no-op; anything outside the transition
// table is rejected.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string,
	status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.ErrOrderUnknownStatus
	}

	order, err := s.repo.ReadOrder(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Read order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if order.Status == status {
		return order, nil
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, domain.ErrOrderInvalidTransition
	}

	if err := s.repo.UpdateOrderStatus(ctx, id, status); err != nil {
		s.logger.Error("Update order status", zap.Error(err))
		return nil, domain.ErrInternal
	}
	order.Status = status

	return order, nil
}
