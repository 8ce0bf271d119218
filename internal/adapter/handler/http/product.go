package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/hanifwid/printmart/internal/core/domain"
	"github.com/hanifwid/printmart/internal/core/port"
	"go.uber.org/zap"
)

type ProductHandler struct {
	Handler
	service port.CatalogService
}

func NewProductHandler(service port.CatalogService, logger *zap.Logger) (*ProductHandler, error) {
	return &ProductHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type productResp struct {
	ID          string    `json:"id"`
	CategoryID  uint64    `json:"category_id,omitempty"`
	Category    string    `json:"category,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func newProductResp(p *domain.Product) productResp {
	r := productResp{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}
	if p.Category != nil {
		r.Category = p.Category.Name
	}
	return r
}

func (ph *ProductHandler) ListProducts(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "12"))
	categoryID, _ := strconv.ParseUint(ctx.Query("category"), 10, 64)

	result, err := ph.service.ListProducts(ctx, port.ProductFilter{
		Search:     ctx.Query("search"),
		CategoryID: categoryID,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	products := make([]productResp, 0, len(result.Products))
	for _, p := range result.Products {
		products = append(products, newProductResp(p))
	}

	ph.handleSuccess(ctx, struct {
		Products []productResp `json:"products"`
		Total    int           `json:"total"`
		Pages    int           `json:"pages"`
	}{Products: products, Total: result.Total, Pages: result.Pages})
}

func (ph *ProductHandler) GetProduct(ctx *gin.Context) {
	product, err := ph.service.GetProduct(ctx, ctx.Param("id"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newProductResp(product))
}

// productForm reads the multipart product fields shared by create and update.
func (ph *ProductHandler) productForm(ctx *gin.Context) (*domain.Product, *port.ImageUpload, error) {
	price, err := decimal.Parse(ctx.PostForm("price"))
	if err != nil {
		return nil, nil, domain.ErrBadRequest
	}
	categoryID, _ := strconv.ParseUint(ctx.PostForm("category_id"), 10, 64)

	product := &domain.Product{
		CategoryID:  categoryID,
		Name:        ctx.PostForm("name"),
		Description: ctx.PostForm("description"),
		Price:       price,
	}
	if product.Name == "" {
		return nil, nil, domain.ErrBadRequest
	}

	var image *port.ImageUpload
	if fh, err := ctx.FormFile("image"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, nil, domain.ErrBadRequest
		}
		image = &port.ImageUpload{Name: fh.Filename, Reader: f}
	}

	return product, image, nil
}

func (ph *ProductHandler) CreateProduct(ctx *gin.Context) {
	product, image, err := ph.productForm(ctx)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	created, err := ph.service.CreateProduct(ctx, product, image)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, newProductResp(created), http.StatusCreated)
}

func (ph *ProductHandler) UpdateProduct(ctx *gin.Context) {
	product, image, err := ph.productForm(ctx)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}
	product.ID = ctx.Param("id")

	updated, err := ph.service.UpdateProduct(ctx, product, image)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newProductResp(updated))
}

func (ph *ProductHandler) DeleteProduct(ctx *gin.Context) {
	if err := ph.service.DeleteProduct(ctx, ctx.Param("id")); err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (ph *ProductHandler) CreateCategory(ctx *gin.Context) {
	req := categoryRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	created, err := ph.service.CreateCategory(ctx, &domain.Category{Name: req.Name})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, created, http.StatusCreated)
}

func (ph *ProductHandler) ListCategories(ctx *gin.Context) {
	list, err := ph.service.ListCategories(ctx)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, list)
}
