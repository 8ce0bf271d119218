package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/hanifwid/printmart/internal/adapter/config"
	adapterhttp "github.com/hanifwid/printmart/internal/adapter/handler/http"
	"github.com/hanifwid/printmart/internal/core/domain"
	"github.com/hanifwid/printmart/internal/core/port"
	"github.com/hanifwid/printmart/internal/core/port/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type routerMocks struct {
	token        *mock.MockTokenService
	user         *mock.MockUserService
	catalog      *mock.MockCatalogService
	order        *mock.MockOrderService
	notification *mock.MockNotificationService
	content      *mock.MockContentService
}

func newTestRouter(t *testing.T, mockCtrl *gomock.Controller) (*adapterhttp.Router, *routerMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, _ := zap.NewProduction()

	m := &routerMocks{
		token:        mock.NewMockTokenService(mockCtrl),
		user:         mock.NewMockUserService(mockCtrl),
		catalog:      mock.NewMockCatalogService(mockCtrl),
		order:        mock.NewMockOrderService(mockCtrl),
		notification: mock.NewMockNotificationService(mockCtrl),
		content:      mock.NewMockContentService(mockCtrl),
	}

	userHandler, err := adapterhttp.NewUserHandler(m.user, logger)
	assert.NoError(t, err)
	productHandler, err := adapterhttp.NewProductHandler(m.catalog, logger)
	assert.NoError(t, err)
	orderHandler, err := adapterhttp.NewOrderHandler(m.order, logger)
	assert.NoError(t, err)
	notificationHandler, err := adapterhttp.NewNotificationHandler(m.notification, logger)
	assert.NoError(t, err)
	contentHandler, err := adapterhttp.NewContentHandler(m.content, logger)
	assert.NoError(t, err)

	router, err := adapterhttp.NewRouter(&config.HTTP{}, m.token,
		userHandler, productHandler, orderHandler, notificationHandler, contentHandler,
		logger)
	assert.NoError(t, err)

	return router, m
}

func serve(router *adapterhttp.Router, method, target, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// The prometheus collectors register globally, so the router is built once
// and shared across the subtests.
func TestRouter_RequestBinding(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	router, m := newTestRouter(t, mockCtrl)

	m.token.EXPECT().VerifyToken("admin-token").
		Return(&port.TokenPayload{UserID: 1, Role: domain.RoleAdmin}, nil).AnyTimes()
	m.token.EXPECT().VerifyToken("customer-token").
		Return(&port.TokenPayload{UserID: 7, Role: domain.RoleCustomer}, nil).AnyTimes()

	t.Run("place order binds items", func(t *testing.T) {
		total, _ := decimal.New(300000, 0)
		m.order.EXPECT().
			PlaceOrder(gomock.Any(), uint64(7), []domain.LineItem{{ProductID: "prod-1", Quantity: 2}}).
			Return(&domain.Order{ID: "o-1", Status: domain.OrderStatusPending, Total: total}, nil)

		body := []byte(`{"items":[{"product_id":"prod-1","quantity":2}]}`)
		rec := serve(router, http.MethodPost, "/api/orders", "customer-token", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp struct {
			ID     string `json:"id"`
			Status string `json:"status"`
			Total  string `json:"total"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "o-1", resp.ID)
		assert.Equal(t, "PENDING", resp.Status)
		assert.Equal(t, "300000", resp.Total)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		rec := serve(router, http.MethodPost, "/api/orders", "customer-token", []byte(`{"items":`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("register rereads the body for the login token", func(t *testing.T) {
		m.user.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
			Return(&domain.User{ID: 9, Email: "budi@example.com"}, nil)
		m.user.EXPECT().LoginUser(gomock.Any(), "budi@example.com", "secret-pass").
			Return("token-9", nil)

		body := []byte(`{"name":"Budi","email":"budi@example.com","password":"secret-pass"}`)
		rec := serve(router, http.MethodPost, "/api/user/register", "", body)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Token string `json:"token"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "token-9", resp.Token)
	})

	t.Run("status update binds and uppercases", func(t *testing.T) {
		total, _ := decimal.New(300000, 0)
		m.order.EXPECT().
			UpdateOrderStatus(gomock.Any(), "o-1", domain.OrderStatusPaid).
			Return(&domain.Order{ID: "o-1", Status: domain.OrderStatusPaid, Total: total}, nil)

		rec := serve(router, http.MethodPatch, "/api/admin/orders/o-1/status",
			"admin-token", []byte(`{"status":"paid"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("customer blocked from admin routes", func(t *testing.T) {
		rec := serve(router, http.MethodPatch, "/api/admin/orders/o-1/status",
			"customer-token", []byte(`{"status":"paid"}`))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing token rejected", func(t *testing.T) {
		rec := serve(router, http.MethodPost, "/api/orders", "", []byte(`{"items":[]}`))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
