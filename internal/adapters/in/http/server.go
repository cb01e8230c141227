// Package http exposes the marketplace use cases over a REST API.
// Authentication is out of scope: callers identify themselves with the
// X-User-ID header, and producers additionally with X-Producer-ID.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"ricemarket/internal/core/application/usecases/commands"
	"ricemarket/internal/core/application/usecases/queries"
	"ricemarket/internal/core/domain/model/account"
	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/order"
	"ricemarket/internal/core/domain/model/product"
	"ricemarket/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler        commands.PlaceOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	markNotificationsRead    commands.MarkNotificationsReadCommandHandler
	deleteNotification       commands.DeleteNotificationCommandHandler

	getProductsHandler      queries.GetProductsQueryHandler
	getOrdersHandler        queries.GetOrdersQueryHandler
	getNotificationsHandler queries.GetNotificationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	markNotificationsRead commands.MarkNotificationsReadCommandHandler,
	deleteNotification commands.DeleteNotificationCommandHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		markNotificationsRead:    markNotificationsRead,
		deleteNotification:       deleteNotification,
		getProductsHandler:       getProductsHandler,
		getOrdersHandler:         getOrdersHandler,
		getNotificationsHandler:  getNotificationsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/products", s.GetProducts)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)

	api.GET("/notifications", s.GetNotifications)
	api.POST("/notifications/read", s.MarkNotificationsRead)
	api.DELETE("/notifications/:id", s.DeleteNotification)
}

// Error is the JSON body returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLineRequest is a single line of a new order.
type OrderLineRequest struct {
	ProductID  string          `json:"product_id"`
	QuantityKg decimal.Decimal `json:"quantity_kg"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	DeliveryAddress string             `json:"delivery_address"`
	Lines           []OrderLineRequest `json:"lines"`
}

// PlaceOrderResponse reports the identifier of a newly placed order.
type PlaceOrderResponse struct {
	OrderID string `json:"order_id"`
}

// ChangeOrderStatusRequest is the body of POST /api/v1/orders/:id/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// MarkNotificationsReadRequest is the body of POST /api/v1/notifications/read.
// An empty list marks every notification of the caller as read.
type MarkNotificationsReadRequest struct {
	NotificationIDs []string `json:"notification_ids"`
}

// GetProducts handles GET /api/v1/products.
// Optional query parameters: producer_id narrows to one producer, lat and lon
// filter by delivery zone. Malformed coordinates are ignored rather than
// rejected so the unfiltered listing stays reachable.
func (s *Server) GetProducts(ctx echo.Context) error {
	var producerID *kernel.UUID
	if raw := ctx.QueryParam("producer_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid producer_id")
		}
		producerID = &id
	}

	var near *kernel.GeoPoint
	lat, latErr := strconv.ParseFloat(ctx.QueryParam("lat"), 64)
	lon, lonErr := strconv.ParseFloat(ctx.QueryParam("lon"), 64)
	if latErr == nil && lonErr == nil {
		if point, err := kernel.NewGeoPoint(lat, lon); err == nil {
			near = &point
		}
	}

	query, err := queries.NewGetProductsQuery(producerID, near)
	if err != nil {
		return badRequest(ctx, "Invalid product query")
	}

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve products")
	}

	return ctx.JSON(http.StatusOK, products)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	consumerID, err := userID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]commands.OrderLine, 0, len(request.Lines))
	for _, lineRequest := range request.Lines {
		productID, err := kernel.UUIDFromString(lineRequest.ProductID)
		if err != nil {
			return badRequest(ctx, "Invalid product_id: "+lineRequest.ProductID)
		}

		line, err := commands.NewOrderLine(productID, lineRequest.QuantityKg)
		if err != nil {
			return badRequest(ctx, "Invalid order line: "+err.Error())
		}

		lines = append(lines, line)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, consumerID, lines, request.DeliveryAddress)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return orderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{OrderID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - lists the caller's orders.
// Consumers see the orders they placed, producers the orders addressed to them.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, err := callerActor(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetOrdersQuery(actor)
	if err != nil {
		return badRequest(ctx, "Invalid order query")
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, orders)
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	actor, err := callerActor(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request ChangeOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	next, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+request.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, actor, next)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return orderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetNotifications handles GET /api/v1/notifications.
// The unread query parameter restricts the listing to unread notifications.
func (s *Server) GetNotifications(ctx echo.Context) error {
	recipientID, err := userID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	unreadOnly := ctx.QueryParam("unread") == "true"

	query, err := queries.NewGetNotificationsQuery(recipientID, unreadOnly)
	if err != nil {
		return badRequest(ctx, "Invalid notification query")
	}

	notifications, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve notifications")
	}

	return ctx.JSON(http.StatusOK, notifications)
}

// MarkNotificationsRead handles POST /api/v1/notifications/read.
func (s *Server) MarkNotificationsRead(ctx echo.Context) error {
	recipientID, err := userID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var request MarkNotificationsReadRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ids := make([]kernel.UUID, 0, len(request.NotificationIDs))
	for _, raw := range request.NotificationIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid notification id: "+raw)
		}
		ids = append(ids, id)
	}

	cmd, err := commands.NewMarkNotificationsReadCommand(recipientID, ids)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err := s.markNotificationsRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return orderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteNotification handles DELETE /api/v1/notifications/:id.
func (s *Server) DeleteNotification(ctx echo.Context) error {
	recipientID, err := userID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	notificationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid notification id")
	}

	cmd, err := commands.NewDeleteNotificationCommand(recipientID, notificationID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err := s.deleteNotification.Handle(ctx.Request().Context(), cmd); err != nil {
		return orderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// userID reads the caller's user identity from the X-User-ID header.
func userID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get("X-User-ID"))
}

// callerActor builds the acting identity from the identity headers.
// A present X-Producer-ID header makes the caller act as that producer.
func callerActor(ctx echo.Context) (account.Actor, error) {
	id, err := userID(ctx)
	if err != nil {
		return account.Actor{}, err
	}

	if raw := ctx.Request().Header.Get("X-Producer-ID"); raw != "" {
		producerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return account.Actor{}, err
		}
		return account.NewProducerActor(id, producerID)
	}

	return account.NewConsumerActor(id)
}

// orderError maps use case failures onto HTTP status codes.
func orderError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrPermissionDenied):
		return respond(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, order.ErrInvalidStatusTransition),
		errors.Is(err, product.ErrInsufficientStock):
		return respond(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, commands.ErrProductIsNotAvailable),
		errors.Is(err, commands.ErrMixedProducersInOrder):
		return respond(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		return internalError(ctx, "Request failed")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return respond(ctx, http.StatusBadRequest, message)
}

func unauthorized(ctx echo.Context) error {
	return respond(ctx, http.StatusUnauthorized, "Missing or invalid X-User-ID header")
}

func internalError(ctx echo.Context, message string) error {
	return respond(ctx, http.StatusInternalServerError, message)
}

func respond(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
