package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hanifwid/printmart/internal/core/port"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	Handler
	service port.NotificationService
}

func NewNotificationHandler(service port.NotificationService, logger *zap.Logger) (*NotificationHandler, error) {
	return &NotificationHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func (nh *NotificationHandler) List(ctx *gin.Context) {
	recipientID := getAuthPayload(ctx).UserID
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	list, err := nh.service.List(ctx, recipientID, limit)
	if err != nil {
		nh.handleError(ctx, err)
		return
	}

	nh.handleSuccess(ctx, list)
}

func (nh *NotificationHandler) UnreadCount(ctx *gin.Context) {
	recipientID := getAuthPayload(ctx).UserID

	count, err := nh.service.UnreadCount(ctx, recipientID)
	if err != nil {
		nh.handleError(ctx, err)
		return
	}

	nh.handleSuccess(ctx, struct {
		Count int64 `json:"count"`
	}{Count: count})
}

func (nh *NotificationHandler) MarkRead(ctx *gin.Context) {
	recipientID := getAuthPayload(ctx).UserID

	err := nh.service.MarkRead(ctx, recipientID, ctx.Param("id"))
	if err != nil {
		nh.handleError(ctx, err)
		return
	}

	nh.handleSuccessWithStatus(ctx, nil, 204)
}

func (nh *NotificationHandler) MarkAllRead(ctx *gin.Context) {
	recipientID := getAuthPayload(ctx).UserID

	err := nh.service.MarkAllRead(ctx, recipientID)
	if err != nil {
		nh.handleError(ctx, err)
		return
	}

	nh.handleSuccessWithStatus(ctx, nil, 204)
}
