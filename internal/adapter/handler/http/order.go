package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanifwid/printmart/internal/core/domain"
	"github.com/hanifwid/printmart/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.OrderService
}

func NewOrderHandler(service port.OrderService, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type placeOrderRequest struct {
	Items []domain.LineItem `json:"items" binding:"required"`
}

type orderItemResp struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Quantity    int64  `json:"quantity"`
	Price       string `json:"price"`
}

type orderResp struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	Total     string          `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	Purchaser string          `json:"purchaser,omitempty"`
	Items     []orderItemResp `json:"items"`
}

func newOrderResp(o *domain.Order) orderResp {
	r := orderResp{
		ID:        o.ID,
		Status:    string(o.Status),
		Total:     o.Total.String(),
		CreatedAt: o.CreatedAt,
		Items:     make([]orderItemResp, 0, len(o.Items)),
	}
	if o.User != nil {
		r.Purchaser = o.User.Name
	}
	for _, item := range o.Items {
		ir := orderItemResp{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price.String(),
		}
		if item.Product != nil {
			ir.ProductName = item.Product.Name
		}
		r.Items = append(r.Items, ir)
	}
	return r
}

func (oh *OrderHandler) PlaceOrder(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	req := placeOrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.PlaceOrder(ctx, userID, req.Items)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResp(order), http.StatusCreated)
}

func (oh *OrderHandler) ListMyOrders(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	var statuses []domain.OrderStatus
	if raw := ctx.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			status := domain.OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
			if !status.Valid() {
				oh.handleError(ctx, domain.ErrOrderUnknownStatus)
				return
			}
			statuses = append(statuses, status)
		}
	}

	list, err := oh.service.GetUserOrders(ctx, userID, statuses...)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResp, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResp(o))
	}

	oh.handleSuccess(ctx, result)
}

type orderPageResp struct {
	Orders []orderResp `json:"orders"`
	Total  int         `json:"total"`
	Pages  int         `json:"pages"`
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	filter := port.OrderFilter{
		Search: ctx.Query("search"),
		Status: domain.OrderStatus(strings.ToUpper(ctx.Query("status"))),
		Page:   page,
		Limit:  limit,
	}

	result, err := oh.service.GetOrders(ctx, filter)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	resp := orderPageResp{
		Orders: make([]orderResp, 0, len(result.Orders)),
		Total:  result.Total,
		Pages:  result.Pages,
	}
	for _, o := range result.Orders {
		resp.Orders = append(resp.Orders, newOrderResp(o))
	}

	oh.handleSuccess(ctx, resp)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	order, err := oh.service.GetOrder(ctx, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (oh *OrderHandler) UpdateOrderStatus(ctx *gin.Context) {
	req := updateStatusRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	status := domain.OrderStatus(strings.ToUpper(req.Status))
	order, err := oh.service.UpdateOrderStatus(ctx, ctx.Param("id"), status)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}
