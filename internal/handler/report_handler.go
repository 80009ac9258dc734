package handler

import (
	"net/http"
	"time"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /reports のAPI
type ReportHandler struct {
	uc *usecase.ReportUsecase
}

// DI
func NewReportHandler(uc *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// レポートのルートを登録
func (h *ReportHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/reports/summary", h.summary)
	e.GET("/reports/low-stock", h.lowStock)
}

func (h *ReportHandler) summary(c echo.Context) error {
	// 窓の境界はリクエスト時刻から1回だけ決める
	out, err := h.uc.Summary(c.Request().Context(), time.Now())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) lowStock(c echo.Context) error {
	out, err := h.uc.LowStock(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
