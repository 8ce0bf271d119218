package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/hanifwid/printmart/internal/core/domain"
	"github.com/hanifwid/printmart/internal/core/port"
	"github.com/hanifwid/printmart/internal/core/port/mock"
	"github.com/hanifwid/printmart/internal/core/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type prepareOrderMocks func(repo *mock.MockRepository, notifier *mock.MockNotificationService)

func mustDecimal(t *testing.T, value int64) decimal.Decimal {
	t.Helper()
	d, err := decimal.New(value, 0)
	assert.NoError(t, err)
	return d
}

func TestOrderService_PlaceOrderAggregatesDuplicates(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	purchaser := &domain.User{ID: 7, Name: "Budi", Email: "budi@example.com", Role: domain.RoleCustomer}
	brochure := &domain.Product{ID: "prod-brochure", Name: "Brochure", Price: mustDecimal(t, 150000)}
	poster := &domain.Product{ID: "prod-poster", Name: "Poster", Price: mustDecimal(t, 250000)}

	repo := mock.NewMockRepository(mockCtrl)
	notifier := mock.NewMockNotificationService(mockCtrl)

	repo.EXPECT().ReadUser(gomock.Any(), purchaser.ID).Return(purchaser, nil)
	repo.EXPECT().ReadProduct(gomock.Any(), brochure.ID).Return(brochure, nil)
	repo.EXPECT().ReadProduct(gomock.Any(), poster.ID).Return(poster, nil)
	repo.EXPECT().CreateOrderWithItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
			return o, nil
		})
	repo.EXPECT().ListUsersByRole(gomock.Any(), domain.RoleAdmin).Return([]*domain.User{}, nil)

	s, err := service.NewOrderService(repo, notifier, logger)
	assert.NoError(t, err)

	order, err := s.PlaceOrder(context.Background(), purchaser.ID, []domain.LineItem{
		{ProductID: brochure.ID, Quantity: 2},
		{ProductID: brochure.ID, Quantity: 3},
		{ProductID: poster.ID, Quantity: 1},
	})

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, "1000000", order.Total.String())
	assert.Len(t, order.Items, 2)
	assert.Equal(t, brochure.ID, order.Items[0].ProductID)
	assert.Equal(t, int64(5), order.Items[0].Quantity)
	assert.Equal(t, "150000", order.Items[0].Price.String())
	assert.Equal(t, poster.ID, order.Items[1].ProductID)
	assert.Equal(t, int64(1), order.Items[1].Quantity)
	assert.Equal(t, "250000", order.Items[1].Price.String())
	for _, item := range order.Items {
		assert.Equal(t, order.ID, item.OrderID)
	}
}

func TestOrderService_PlaceOrderRejections(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	purchaser := &domain.User{ID: 7, Name: "Budi", Role: domain.RoleCustomer}
	brochure := &domain.Product{ID: "prod-brochure", Name: "Brochure", Price: mustDecimal(t, 150000)}

	tests := []struct {
		name     string
		items    []domain.LineItem
		mock     prepareOrderMocks
		expError error
	}{
		{
			name:     "empty cart",
			items:    []domain.LineItem{},
			mock:     func(repo *mock.MockRepository, notifier *mock.MockNotificationService) {},
			expError: domain.ErrOrderEmpty,
		},
		{
			name:     "zero quantity",
			items:    []domain.LineItem{{ProductID: brochure.ID, Quantity: 0}},
			mock:     func(repo *mock.MockRepository, notifier *mock.MockNotificationService) {},
			expError: domain.ErrOrderBadQuantity,
		},
		{
			name: "ghost product keeps order unwritten",
			items: []domain.LineItem{
				{ProductID: brochure.ID, Quantity: 1},
				{ProductID: "prod-ghost", Quantity: 1},
			},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotificationService) {
				repo.EXPECT().ReadUser(gomock.Any(), purchaser.ID).Return(purchaser, nil)
				repo.EXPECT().ReadProduct(gomock.Any(), brochure.ID).Return(brochure, nil)
				repo.EXPECT().ReadProduct(gomock.Any(), "prod-ghost").Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrProductNotFound,
		},
		{
			name:  "unknown purchaser",
			items: []domain.LineItem{{ProductID: brochure.ID, Quantity: 1}},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotificationService) {
				repo.EXPECT().ReadUser(gomock.Any(), purchaser.ID).Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrDataNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			notifier := mock.NewMockNotificationService(mockCtrl)
			test.mock(repo, notifier)

			s, err := service.NewOrderService(repo, notifier, logger)
			assert.NoError(t, err)

			order, err := s.PlaceOrder(context.Background(), purchaser.ID, test.items)

			assert.Nil(t, order)
			assert.ErrorIs(t, err, test.expError)
		})
	}
}

func TestOrderService_PlaceOrderNotifiesEveryAdmin(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	purchaser := &domain.User{ID: 7, Name: "Budi", Role: domain.RoleCustomer}
	brochure := &domain.Product{ID: "prod-brochure", Name: "Brochure", Price: mustDecimal(t, 150000)}
	admins := []*domain.User{
		{ID: 1, Name: "Owner", Role: domain.RoleAdmin},
		{ID: 2, Name: "Manager", Role: domain.RoleAdmin},
	}

	repo := mock.NewMockRepository(mockCtrl)
	notifier := mock.NewMockNotificationService(mockCtrl)

	repo.EXPECT().ReadUser(gomock.Any(), purchaser.ID).Return(purchaser, nil)
	repo.EXPECT().ReadProduct(gomock.Any(), brochure.ID).Return(brochure, nil)
	repo.EXPECT().CreateOrderWithItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
			return o, nil
		})
	repo.EXPECT().ListUsersByRole(gomock.Any(), domain.RoleAdmin).Return(admins, nil)

	// The first admin's notification fails. The order must still succeed and
	// the second admin must still be notified.
	notifier.EXPECT().
		Notify(gomock.Any(), uint64(1), "New order received", gomock.Any(), domain.NotificationTypeInfo, gomock.Any()).
		Return(nil, domain.ErrInternal)
	notifier.EXPECT().
		Notify(gomock.Any(), uint64(2), "New order received", gomock.Any(), domain.NotificationTypeInfo, gomock.Any()).
		Return(&domain.Notification{}, nil)

	s, err := service.NewOrderService(repo, notifier, logger)
	assert.NoError(t, err)

	order, err := s.PlaceOrder(context.Background(), purchaser.ID,
		[]domain.LineItem{{ProductID: brochure.ID, Quantity: 2}})

	assert.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	const orderID = "8b6c9a1e-order"

	tests := []struct {
		name      string
		status    domain.OrderStatus
		mock      prepareOrderMocks
		expStatus domain.OrderStatus
		expError  error
	}{
		{
			name:   "pending to paid",
			status: domain.OrderStatusPaid,
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotificationService) {
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).
					Return(&domain.Order{ID: orderID, Status: domain.OrderStatusPending}, nil)
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), orderID, domain.OrderStatusPaid).Return(nil)
			},
			expStatus: domain.OrderStatusPaid,
		},
		{
			name:   "shipped to completed",
			status: domain.OrderStatusCompleted,
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotificationService) {
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).
					Return(&domain.Order{ID: orderID, Status: domain.OrderStatusShipped}, nil)
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), orderID, domain.OrderStatusCompleted).Return(nil)
			},
			expStatus: domain.OrderStatusCompleted,
		},
		{
			name:   "same status is a no-op",
			status: domain.OrderStatusPaid,
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotificationService) {
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).
					Return(&domain.Order{ID: orderID, Status: domain.OrderStatusPaid}, nil)
			},
			expStatus: domain.OrderStatusPaid,
		},
		{
			name:   "pending cannot ship",
			status: domain.OrderStatusShipped,
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotificationService) {
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).
					Return(&domain.Order{ID: orderID, Status: domain.OrderStatusPending}, nil)
			},
			expError: domain.ErrOrderInvalidTransition,
		},
		{
			name:   "completed is terminal",
			status: domain.OrderStatusCancelled,
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotificationService) {
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).
					Return(&domain.Order{ID: orderID, Status: domain.OrderStatusCompleted}, nil)
			},
			expError: domain.ErrOrderInvalidTransition,
		},
		{
			name:     "unknown status",
			status:   domain.OrderStatus("LOST"),
			mock:     func(repo *mock.MockRepository, notifier *mock.MockNotificationService) {},
			expError: domain.ErrOrderUnknownStatus,
		},
		{
			name:   "order not found",
			status: domain.OrderStatusPaid,
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotificationService) {
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrDataNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			notifier := mock.NewMockNotificationService(mockCtrl)
			test.mock(repo, notifier)

			s, err := service.NewOrderService(repo, notifier, logger)
			assert.NoError(t, err)

			order, err := s.UpdateOrderStatus(context.Background(), orderID, test.status)

			if test.expError != nil {
				assert.Nil(t, order)
				assert.ErrorIs(t, err, test.expError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expStatus, order.Status)
		})
	}
}

func TestOrderService_GetOrdersPagination(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	tests := []struct {
		name     string
		filter   port.OrderFilter
		mock     prepareOrderMocks
		expTotal int
		expPages int
		expError error
	}{
		{
			name:   "paid orders second page",
			filter: port.OrderFilter{Status: domain.OrderStatusPaid, Page: 2, Limit: 10},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotificationService) {
				repo.EXPECT().
					ListOrders(gomock.Any(), port.OrderFilter{Status: domain.OrderStatusPaid, Page: 2, Limit: 10}).
					Return(make([]*domain.Order, 10), 23, nil)
			},
			expTotal: 23,
			expPages: 3,
		},
		{
			name:   "defaults applied",
			filter: port.OrderFilter{},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotificationService) {
				repo.EXPECT().
					ListOrders(gomock.Any(), port.OrderFilter{Page: 1, Limit: 10}).
					Return([]*domain.Order{}, 0, nil)
			},
			expTotal: 0,
			expPages: 0,
		},
		{
			name:     "unknown status filter",
			filter:   port.OrderFilter{Status: domain.OrderStatus("LOST")},
			mock:     func(repo *mock.MockRepository, notifier *mock.MockNotificationService) {},
			expError: domain.ErrOrderUnknownStatus,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			notifier := mock.NewMockNotificationService(mockCtrl)
			test.mock(repo, notifier)

			s, err := service.NewOrderService(repo, notifier, logger)
			assert.NoError(t, err)

			page, err := s.GetOrders(context.Background(), test.filter)

			if test.expError != nil {
				assert.Nil(t, page)
				assert.ErrorIs(t, err, test.expError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expTotal, page.Total)
			assert.Equal(t, test.expPages, page.Pages)
		})
	}
}

func TestOrderService_GetUserOrders(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	orders := []*domain.Order{
		{ID: "a", UserID: 7, Status: domain.OrderStatusPaid},
		{ID: "b", UserID: 7, Status: domain.OrderStatusShipped},
	}

	repo := mock.NewMockRepository(mockCtrl)
	notifier := mock.NewMockNotificationService(mockCtrl)
	repo.EXPECT().
		ListOrdersByUser(gomock.Any(), uint64(7),
			[]domain.OrderStatus{domain.OrderStatusPaid, domain.OrderStatusShipped}).
		Return(orders, nil)

	s, err := service.NewOrderService(repo, notifier, logger)
	assert.NoError(t, err)

	result, err := s.GetUserOrders(context.Background(), 7,
		domain.OrderStatusPaid, domain.OrderStatusShipped)

	assert.NoError(t, err)
	assert.Equal(t, orders, result)
}
