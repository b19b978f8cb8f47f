package http

import (
	"context"
	"net/http"

	"forwarding/internal/adapters/in/http/openapi"
	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"
)

type OrderReader interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
}

type CustomerOrdersReader interface {
	Handle(ctx context.Context, query queries.ListCustomerOrdersQuery) ([]queries.OrderView, error)
}

// Handlers groups the use cases the HTTP server dispatches to.
type Handlers struct {
	CreateCustomer      commands.CreateCustomerCommandHandler
	CreateHost          commands.CreateHostCommandHandler
	SetHostAvailability commands.SetHostAvailabilityCommandHandler
	DraftOrder          commands.DraftOrderCommandHandler
	EditOrder           commands.EditOrderCommandHandler
	DeleteOrder         commands.DeleteOrderCommandHandler
	ConfirmOrder        commands.ConfirmOrderCommandHandler
	ReceiveItem         commands.ReceiveItemCommandHandler
	AddItemPhoto        commands.AddItemPhotoCommandHandler
	SubmitShipmentInfo  commands.SubmitShipmentInfoCommandHandler

	GetOrder           OrderReader
	ListCustomerOrders CustomerOrdersReader
}

// Server implements openapi.ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	logger   *zap.Logger
}

var _ openapi.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With(zap.String("component", "http_server")),
	}
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body openapi.CreateCustomerRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCustomerCommand(body.Country)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, openapi.Created{Id: cmd.CustomerID().Bytes()})
}

// ListCustomerOrders handles GET /api/v1/customers/me/orders.
func (s *Server) ListCustomerOrders(ctx echo.Context, params openapi.ListCustomerOrdersParams) error {
	query, err := queries.NewListCustomerOrdersQuery(toKernel(params.XCustomerID))
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.handlers.ListCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]openapi.Order, 0, len(views))
	for _, view := range views {
		response = append(response, toOrderResponse(view))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateHost handles POST /api/v1/hosts.
func (s *Server) CreateHost(ctx echo.Context) error {
	var body openapi.CreateHostRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateHostCommand(body.Country, *body.Available)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.CreateHost.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, openapi.Created{Id: cmd.HostID().Bytes()})
}

// SetHostAvailability handles PUT /api/v1/hosts/{hostId}/availability. A host may
// only change its own availability.
func (s *Server) SetHostAvailability(
	ctx echo.Context,
	hostID openapi_types.UUID,
	params openapi.SetHostAvailabilityParams,
) error {
	if params.XHostID != hostID {
		return echo.NewHTTPError(http.StatusForbidden, "hosts can only change their own availability")
	}

	var body openapi.AvailabilityRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewSetHostAvailabilityCommand(toKernel(hostID), *body.Available)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.SetHostAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DraftOrder handles POST /api/v1/orders/draft.
func (s *Server) DraftOrder(ctx echo.Context, params openapi.DraftOrderParams) error {
	var body openapi.DraftOrderRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewDraftOrderCommand(
		toKernel(params.XCustomerID),
		body.OriginCountry,
		body.DestinationCountry,
		toDraftItems(body.Items),
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.DraftOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, openapi.Created{Id: cmd.OrderID().Bytes()})
}

// GetOrder handles GET /api/v1/orders/{orderId}. The order is visible to its
// customer and to its assigned host.
func (s *Server) GetOrder(ctx echo.Context, orderID openapi_types.UUID, params openapi.GetOrderParams) error {
	var viewer openapi_types.UUID
	switch {
	case params.XCustomerID != nil:
		viewer = *params.XCustomerID
	case params.XHostID != nil:
		viewer = *params.XHostID
	default:
		return echo.NewHTTPError(http.StatusUnauthorized,
			"one of "+openapi.CustomerHeader+" or "+openapi.HostHeader+" is required")
	}

	query, err := queries.NewGetOrderQuery(toKernel(orderID), toKernel(viewer))
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(view))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderID openapi_types.UUID, params openapi.DeleteOrderParams) error {
	cmd, err := commands.NewDeleteOrderCommand(toKernel(params.XCustomerID), toKernel(orderID))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// EditOrder handles POST /api/v1/orders/{orderId}/edit. The edited order gets a new id.
func (s *Server) EditOrder(ctx echo.Context, orderID openapi_types.UUID, params openapi.EditOrderParams) error {
	var body openapi.DraftOrderRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewEditOrderCommand(
		toKernel(params.XCustomerID),
		toKernel(orderID),
		body.OriginCountry,
		body.DestinationCountry,
		toDraftItems(body.Items),
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.EditOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, openapi.Created{Id: cmd.Draft().OrderID().Bytes()})
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context, orderID openapi_types.UUID, params openapi.ConfirmOrderParams) error {
	cmd, err := commands.NewConfirmOrderCommand(toKernel(params.XCustomerID), toKernel(orderID))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.ConfirmOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReceiveItem handles POST /api/v1/orders/{orderId}/items/{itemId}/receive.
func (s *Server) ReceiveItem(
	ctx echo.Context,
	orderID, itemID openapi_types.UUID,
	params openapi.ReceiveItemParams,
) error {
	cmd, err := commands.NewReceiveItemCommand(toKernel(params.XHostID), toKernel(orderID), toKernel(itemID))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.ReceiveItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddItemPhotos handles POST /api/v1/orders/{orderId}/items/{itemId}/photos.
func (s *Server) AddItemPhotos(
	ctx echo.Context,
	orderID, itemID openapi_types.UUID,
	params openapi.AddItemPhotosParams,
) error {
	var body openapi.PhotosRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewAddItemPhotoCommand(
		toKernel(params.XHostID), toKernel(orderID), toKernel(itemID), body.Photos,
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.AddItemPhoto.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitShipmentInfo handles POST /api/v1/orders/{orderId}/shipment.
func (s *Server) SubmitShipmentInfo(
	ctx echo.Context,
	orderID openapi_types.UUID,
	params openapi.SubmitShipmentInfoParams,
) error {
	var body openapi.ShipmentRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewSubmitShipmentInfoCommand(toKernel(params.XHostID), toKernel(orderID), body.TrackingNumber)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.SubmitShipmentInfo.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func bindBody(ctx echo.Context, dest any) error {
	if err := ctx.Bind(dest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return ctx.Validate(dest)
}

func toKernel(id openapi_types.UUID) kernel.UUID {
	// The nil UUID maps to the zero value, which command constructors reject.
	u, _ := kernel.UUIDFromBytes(id[:])
	return u
}

func toDraftItems(items []openapi.ItemInput) []commands.DraftItem {
	out := make([]commands.DraftItem, 0, len(items))
	for _, item := range items {
		out = append(out, commands.DraftItem{
			Title:     item.Title,
			StoreName: item.StoreName,
			Weight:    item.Weight,
		})
	}
	return out
}
