// Package http exposes the sales order use cases over a REST API.
// Handlers translate between JSON payloads and application commands/queries;
// all business rules stay behind the application layer.
package http

import (
	"errors"
	"net/http"

	"salesorder/internal/core/application/usecases/commands"
	"salesorder/internal/core/application/usecases/queries"
	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Error is the JSON body returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewCustomer is the request body for customer registration.
type NewCustomer struct {
	Name string `json:"name"`
}

// Customer is a customer read model rendered as JSON.
type Customer struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	LastOrderTotal *string `json:"lastOrderTotal,omitempty"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	CustomerID string `json:"customerId"`
	Currency   string `json:"currency"`
}

// NewOrderItem is the request body for appending a line item to an order.
// The unit price is a decimal string denominated in the order's currency.
type NewOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

// Created reports the identifier of a newly created resource.
type Created struct {
	ID string `json:"id"`
}

// Order is an open order read model rendered as JSON.
type Order struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	Status     string `json:"status"`
	Total      string `json:"total"`
	OrderedAt  string `json:"orderedAt"`
}

// OrderTotal is a single order's total rendered as JSON.
type OrderTotal struct {
	ID    string `json:"id"`
	Total string `json:"total"`
}

// Server handles HTTP requests for the sales order service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler commands.CreateCustomerCommandHandler
	createOrderHandler    commands.CreateOrderCommandHandler
	addOrderItemHandler   commands.AddOrderItemCommandHandler
	confirmOrderHandler   commands.ConfirmOrderCommandHandler
	shipOrderHandler      commands.ShipOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler

	// Query handlers
	getAllCustomersHandler queries.GetAllCustomersQueryHandler
	getOpenOrdersHandler   queries.GetOpenOrdersQueryHandler
	getOrderTotalHandler   queries.GetOrderTotalQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrderItemHandler commands.AddOrderItemCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getAllCustomersHandler queries.GetAllCustomersQueryHandler,
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler,
	getOrderTotalHandler queries.GetOrderTotalQueryHandler,
) *Server {
	return &Server{
		createCustomerHandler:  createCustomerHandler,
		createOrderHandler:     createOrderHandler,
		addOrderItemHandler:    addOrderItemHandler,
		confirmOrderHandler:    confirmOrderHandler,
		shipOrderHandler:       shipOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		getAllCustomersHandler: getAllCustomersHandler,
		getOpenOrdersHandler:   getOpenOrdersHandler,
		getOrderTotalHandler:   getOrderTotalHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.GetCustomers)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/open", s.GetOpenOrders)
	api.POST("/orders/:orderID/items", s.AddOrderItem)
	api.POST("/orders/:orderID/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderID/ship", s.ShipOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.GET("/orders/:orderID/total", s.GetOrderTotal)
}

// CreateCustomer handles POST /api/v1/customers - registers a new customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var newCustomer NewCustomer
	if err := ctx.Bind(&newCustomer); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(customerID, newCustomer.Name)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer data: " + err.Error(),
		})
	}

	if handleErr := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to create customer",
		})
	}

	return ctx.JSON(http.StatusCreated, Created{ID: customerID.String()})
}

// GetCustomers handles GET /api/v1/customers - retrieves all customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query := queries.NewGetAllCustomersQuery()

	customers, err := s.getAllCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve customers",
		})
	}

	response := make([]Customer, len(customers))
	for i, c := range customers {
		response[i] = Customer{
			ID:   c.ID.String(),
			Name: c.Name,
		}
		if c.LastOrderTotal != nil {
			total := c.LastOrderTotal.String()
			response[i].LastOrderTotal = &total
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, newOrder.CustomerID, newOrder.Currency)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// AddOrderItem handles POST /api/v1/orders/:orderID/items - appends a line item.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var newItem NewOrderItem
	if err = ctx.Bind(&newItem); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	unitPrice, err := decimal.NewFromString(newItem.UnitPrice)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid unit price: " + err.Error(),
		})
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderItemCommand(orderID, itemID, newItem.ProductID, newItem.Quantity, unitPrice)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item data: " + err.Error(),
		})
	}

	if handleErr := s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to add item")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: itemID.String()})
}

// ConfirmOrder handles POST /api/v1/orders/:orderID/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	if handleErr := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to confirm order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/orders/:orderID/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewShipOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	if handleErr := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to ship order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to cancel order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOpenOrders handles GET /api/v1/orders/open - retrieves all non-terminal orders.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	query := queries.NewGetOpenOrdersQuery()

	orders, err := s.getOpenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:         o.ID.String(),
			CustomerID: o.CustomerID.String(),
			Status:     o.Status,
			Total:      o.Total.String(),
			OrderedAt:  o.OrderedAt.Format(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderTotal handles GET /api/v1/orders/:orderID/total.
func (s *Server) GetOrderTotal(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderTotalQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	total, err := s.getOrderTotalHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: err.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order total",
		})
	}

	return ctx.JSON(http.StatusOK, OrderTotal{
		ID:    total.OrderID.String(),
		Total: total.Total.String(),
	})
}

// commandError maps application errors to HTTP responses: missing aggregates
// become 404, everything else (invalid transitions included) becomes 409.
func (s *Server) commandError(ctx echo.Context, err error, message string) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusConflict, Error{
		Code:    http.StatusConflict,
		Message: message + ": " + err.Error(),
	})
}
