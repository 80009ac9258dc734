package handler

import (
	"errors"
	"net/http"

	"app/internal/domain/model"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// Usecaseの型付きエラーをHTTPステータスに変換する。
// メッセージ文面はここ（表示側）の責任。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quantity"})
	case errors.Is(err, usecase.ErrInsufficientStock):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "insufficient stock"})
	}
	if ve, ok := usecase.AsValidationError(err); ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Error()})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /products のAPI
type ProductHandler struct {
	uc *usecase.InventoryUsecase
}

// DI
func NewProductHandler(uc *usecase.InventoryUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 商品のルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.POST("/products", h.create)
	e.GET("/products/:id", h.detail)
	e.PUT("/products/:id", h.update)
	e.DELETE("/products/:id", h.delete)
	e.POST("/products/:id/stock", h.adjustStock)
}

type createProductRequest struct {
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Barcode       string     `json:"barcode"`
	Unit          model.Unit `json:"unit"`
	CostPrice     int64      `json:"cost_price"`
	SellPrice     int64      `json:"sell_price"`
	Stock         int64      `json:"stock"`
	LowStockLimit *int64     `json:"low_stock_limit"`
}

type updateProductRequest struct {
	Name          *string     `json:"name"`
	Category      *string     `json:"category"`
	Barcode       *string     `json:"barcode"`
	Unit          *model.Unit `json:"unit"`
	CostPrice     *int64      `json:"cost_price"`
	SellPrice     *int64      `json:"sell_price"`
	Stock         *int64      `json:"stock"`
	LowStockLimit *int64      `json:"low_stock_limit"`
}

type adjustStockRequest struct {
	Delta  int64  `json:"delta"`
	Reason string `json:"reason"`
}

func (h *ProductHandler) list(c echo.Context) error {
	items, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) detail(c echo.Context) error {
	p, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:          req.Name,
		Category:      req.Category,
		Barcode:       req.Barcode,
		Unit:          req.Unit,
		CostPrice:     req.CostPrice,
		SellPrice:     req.SellPrice,
		Stock:         req.Stock,
		LowStockLimit: req.LowStockLimit,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), usecase.UpdateProductInput{
		Name:          req.Name,
		Category:      req.Category,
		Barcode:       req.Barcode,
		Unit:          req.Unit,
		CostPrice:     req.CostPrice,
		SellPrice:     req.SellPrice,
		Stock:         req.Stock,
		LowStockLimit: req.LowStockLimit,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) delete(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHandler) adjustStock(c echo.Context) error {
	var req adjustStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.AdjustStock(c.Request().Context(), c.Param("id"), req.Delta, req.Reason)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}
