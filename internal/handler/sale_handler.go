package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /sales のAPI
type SaleHandler struct {
	inventory *usecase.InventoryUsecase
	reports   *usecase.ReportUsecase
}

// DI
func NewSaleHandler(inventory *usecase.InventoryUsecase, reports *usecase.ReportUsecase) *SaleHandler {
	return &SaleHandler{inventory: inventory, reports: reports}
}

// 販売のルートを登録
func (h *SaleHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/sales", h.list)
	e.POST("/sales", h.record)
}

type recordSaleRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

func (h *SaleHandler) list(c echo.Context) error {
	sales, err := h.reports.ListSales(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, sales)
}

func (h *SaleHandler) record(c echo.Context) error {
	var req recordSaleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	sale, err := h.inventory.RecordSale(c.Request().Context(), req.ProductID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, sale)
}
