package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, productH *handler.ProductHandler, saleH *handler.SaleHandler, reportH *handler.ReportHandler) {
	productH.RegisterRoutes(e)
	saleH.RegisterRoutes(e)
	reportH.RegisterRoutes(e)
}
