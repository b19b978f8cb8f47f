package http

import (
	"net/http"

	"forwarding/internal/adapters/in/http/openapi"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// Instrumentation is implemented by the metrics adapter.
type Instrumentation interface {
	Middleware() echo.MiddlewareFunc
}

// Register mounts the API, health, metrics and documentation routes on e.
func Register(
	e *echo.Echo,
	server *Server,
	instrumentation Instrumentation,
	gatherer prometheus.Gatherer,
	logger *zap.Logger,
) error {
	doc, err := openapi.GetSwagger()
	if err != nil {
		return err
	}
	requestValidator, err := openapi.RequestValidator(doc)
	if err != nil {
		return err
	}

	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(instrumentation.Middleware())
	e.Use(requestValidator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	openapi.RegisterHandlers(e, server)
	return nil
}
