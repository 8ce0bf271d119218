package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanifwid/printmart/internal/core/domain"
	"github.com/hanifwid/printmart/internal/core/port"
	"go.uber.org/zap"
)

type ContentHandler struct {
	Handler
	service port.ContentService
}

func NewContentHandler(service port.ContentService, logger *zap.Logger) (*ContentHandler, error) {
	return &ContentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func (ch *ContentHandler) ListBanners(ctx *gin.Context) {
	list, err := ch.service.ListBanners(ctx)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, list)
}

func (ch *ContentHandler) CreateBanner(ctx *gin.Context) {
	title := ctx.PostForm("title")

	fh, err := ctx.FormFile("image")
	if err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}
	f, err := fh.Open()
	if err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	banner, err := ch.service.CreateBanner(ctx, title, &port.ImageUpload{
		Name:   fh.Filename,
		Reader: f,
	})
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, banner, http.StatusCreated)
}

func (ch *ContentHandler) DeleteBanner(ctx *gin.Context) {
	if err := ch.service.DeleteBanner(ctx, ctx.Param("id")); err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (ch *ContentHandler) GetSettings(ctx *gin.Context) {
	settings, err := ch.service.GetSettings(ctx)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, settings)
}

type settingsRequest struct {
	ShopName string `json:"shop_name"`
	Tagline  string `json:"tagline"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func (ch *ContentHandler) UpdateSettings(ctx *gin.Context) {
	req := settingsRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	updated, err := ch.service.UpdateSettings(ctx, &domain.Settings{
		ShopName: req.ShopName,
		Tagline:  req.Tagline,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, updated)
}
