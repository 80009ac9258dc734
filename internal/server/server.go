package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func Start(addr string, productH *handler.ProductHandler, saleH *handler.SaleHandler, reportH *handler.ReportHandler) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	RegisterRoutes(e, productH, saleH, reportH)

	return e.Start(addr)
}
