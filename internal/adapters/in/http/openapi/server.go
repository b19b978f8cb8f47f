package openapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	CustomerHeader = "X-Customer-ID"
	HostHeader     = "X-Host-ID"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /api/v1/customers)
	CreateCustomer(ctx echo.Context) error
	// (GET /api/v1/customers/me/orders)
	ListCustomerOrders(ctx echo.Context, params ListCustomerOrdersParams) error
	// (POST /api/v1/hosts)
	CreateHost(ctx echo.Context) error
	// (PUT /api/v1/hosts/{hostId}/availability)
	SetHostAvailability(ctx echo.Context, hostId openapi_types.UUID, params SetHostAvailabilityParams) error
	// (POST /api/v1/orders/draft)
	DraftOrder(ctx echo.Context, params DraftOrderParams) error
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID, params GetOrderParams) error
	// (DELETE /api/v1/orders/{orderId})
	DeleteOrder(ctx echo.Context, orderId openapi_types.UUID, params DeleteOrderParams) error
	// (POST /api/v1/orders/{orderId}/edit)
	EditOrder(ctx echo.Context, orderId openapi_types.UUID, params EditOrderParams) error
	// (POST /api/v1/orders/{orderId}/confirm)
	ConfirmOrder(ctx echo.Context, orderId openapi_types.UUID, params ConfirmOrderParams) error
	// (POST /api/v1/orders/{orderId}/items/{itemId}/receive)
	ReceiveItem(ctx echo.Context, orderId, itemId openapi_types.UUID, params ReceiveItemParams) error
	// (POST /api/v1/orders/{orderId}/items/{itemId}/photos)
	AddItemPhotos(ctx echo.Context, orderId, itemId openapi_types.UUID, params AddItemPhotosParams) error
	// (POST /api/v1/orders/{orderId}/shipment)
	SubmitShipmentInfo(ctx echo.Context, orderId openapi_types.UUID, params SubmitShipmentInfoParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPath(ctx echo.Context, name string, dest *openapi_types.UUID) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

// bindHeader reports whether the header was present.
func bindHeader(ctx echo.Context, name string, dest *openapi_types.UUID, required bool) (bool, error) {
	values, found := ctx.Request().Header[http.CanonicalHeaderKey(name)]
	if !found {
		if required {
			return false, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Header parameter %s is required, but not found", name))
		}
		return false, nil
	}
	if len(values) != 1 {
		return false, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for %s, got %d", name, len(values)))
	}

	err := runtime.BindStyledParameterWithOptions("simple", name, values[0], dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: required})
	if err != nil {
		return false, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return true, nil
}

func (w *ServerInterfaceWrapper) CreateCustomer(ctx echo.Context) error {
	return w.Handler.CreateCustomer(ctx)
}

func (w *ServerInterfaceWrapper) ListCustomerOrders(ctx echo.Context) error {
	var params ListCustomerOrdersParams
	if _, err := bindHeader(ctx, CustomerHeader, &params.XCustomerID, true); err != nil {
		return err
	}
	return w.Handler.ListCustomerOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateHost(ctx echo.Context) error {
	return w.Handler.CreateHost(ctx)
}

func (w *ServerInterfaceWrapper) SetHostAvailability(ctx echo.Context) error {
	var hostId openapi_types.UUID
	if err := bindPath(ctx, "hostId", &hostId); err != nil {
		return err
	}
	var params SetHostAvailabilityParams
	if _, err := bindHeader(ctx, HostHeader, &params.XHostID, true); err != nil {
		return err
	}
	return w.Handler.SetHostAvailability(ctx, hostId, params)
}

func (w *ServerInterfaceWrapper) DraftOrder(ctx echo.Context) error {
	var params DraftOrderParams
	if _, err := bindHeader(ctx, CustomerHeader, &params.XCustomerID, true); err != nil {
		return err
	}
	return w.Handler.DraftOrder(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var orderId openapi_types.UUID
	if err := bindPath(ctx, "orderId", &orderId); err != nil {
		return err
	}

	var params GetOrderParams
	var customerID, hostID openapi_types.UUID
	found, err := bindHeader(ctx, CustomerHeader, &customerID, false)
	if err != nil {
		return err
	}
	if found {
		params.XCustomerID = &customerID
	}
	found, err = bindHeader(ctx, HostHeader, &hostID, false)
	if err != nil {
		return err
	}
	if found {
		params.XHostID = &hostID
	}

	return w.Handler.GetOrder(ctx, orderId, params)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	var orderId openapi_types.UUID
	if err := bindPath(ctx, "orderId", &orderId); err != nil {
		return err
	}
	var params DeleteOrderParams
	if _, err := bindHeader(ctx, CustomerHeader, &params.XCustomerID, true); err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, orderId, params)
}

func (w *ServerInterfaceWrapper) EditOrder(ctx echo.Context) error {
	var orderId openapi_types.UUID
	if err := bindPath(ctx, "orderId", &orderId); err != nil {
		return err
	}
	var params EditOrderParams
	if _, err := bindHeader(ctx, CustomerHeader, &params.XCustomerID, true); err != nil {
		return err
	}
	return w.Handler.EditOrder(ctx, orderId, params)
}

func (w *ServerInterfaceWrapper) ConfirmOrder(ctx echo.Context) error {
	var orderId openapi_types.UUID
	if err := bindPath(ctx, "orderId", &orderId); err != nil {
		return err
	}
	var params ConfirmOrderParams
	if _, err := bindHeader(ctx, CustomerHeader, &params.XCustomerID, true); err != nil {
		return err
	}
	return w.Handler.ConfirmOrder(ctx, orderId, params)
}

func (w *ServerInterfaceWrapper) ReceiveItem(ctx echo.Context) error {
	var orderId, itemId openapi_types.UUID
	if err := bindPath(ctx, "orderId", &orderId); err != nil {
		return err
	}
	if err := bindPath(ctx, "itemId", &itemId); err != nil {
		return err
	}
	var params ReceiveItemParams
	if _, err := bindHeader(ctx, HostHeader, &params.XHostID, true); err != nil {
		return err
	}
	return w.Handler.ReceiveItem(ctx, orderId, itemId, params)
}

func (w *ServerInterfaceWrapper) AddItemPhotos(ctx echo.Context) error {
	var orderId, itemId openapi_types.UUID
	if err := bindPath(ctx, "orderId", &orderId); err != nil {
		return err
	}
	if err := bindPath(ctx, "itemId", &itemId); err != nil {
		return err
	}
	var params AddItemPhotosParams
	if _, err := bindHeader(ctx, HostHeader, &params.XHostID, true); err != nil {
		return err
	}
	return w.Handler.AddItemPhotos(ctx, orderId, itemId, params)
}

func (w *ServerInterfaceWrapper) SubmitShipmentInfo(ctx echo.Context) error {
	var orderId openapi_types.UUID
	if err := bindPath(ctx, "orderId", &orderId); err != nil {
		return err
	}
	var params SubmitShipmentInfoParams
	if _, err := bindHeader(ctx, HostHeader, &params.XHostID, true); err != nil {
		return err
	}
	return w.Handler.SubmitShipmentInfo(ctx, orderId, params)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/api/v1/customers", wrapper.CreateCustomer)
	router.GET(baseURL+"/api/v1/customers/me/orders", wrapper.ListCustomerOrders)
	router.POST(baseURL+"/api/v1/hosts", wrapper.CreateHost)
	router.PUT(baseURL+"/api/v1/hosts/:hostId/availability", wrapper.SetHostAvailability)
	router.POST(baseURL+"/api/v1/orders/draft", wrapper.DraftOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.DELETE(baseURL+"/api/v1/orders/:orderId", wrapper.DeleteOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/edit", wrapper.EditOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/confirm", wrapper.ConfirmOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/items/:itemId/receive", wrapper.ReceiveItem)
	router.POST(baseURL+"/api/v1/orders/:orderId/items/:itemId/photos", wrapper.AddItemPhotos)
	router.POST(baseURL+"/api/v1/orders/:orderId/shipment", wrapper.SubmitShipmentInfo)
}
