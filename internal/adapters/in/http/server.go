// Package http exposes the dispatch engine over a JSON REST API.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"dispatch/internal/core/application/engine"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const defaultArchiveLimit = 100

// Server handles HTTP requests. It coordinates between HTTP handlers and
// application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	decideHandler           commands.DecideCommandHandler
	completeOrderHandler    commands.CompleteOrderCommandHandler
	registerWorkerHandler   commands.RegisterWorkerCommandHandler
	deregisterWorkerHandler commands.DeregisterWorkerCommandHandler
	setAvailabilityHandler  commands.SetAvailabilityCommandHandler

	// Query handlers
	getActiveOrdersHandler   queries.GetActiveOrdersQueryHandler
	getPoolStatusHandler     queries.GetPoolStatusQueryHandler
	getArchivedOrdersHandler queries.GetArchivedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	decideHandler commands.DecideCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	registerWorkerHandler commands.RegisterWorkerCommandHandler,
	deregisterWorkerHandler commands.DeregisterWorkerCommandHandler,
	setAvailabilityHandler commands.SetAvailabilityCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getPoolStatusHandler queries.GetPoolStatusQueryHandler,
	getArchivedOrdersHandler queries.GetArchivedOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		decideHandler:            decideHandler,
		completeOrderHandler:     completeOrderHandler,
		registerWorkerHandler:    registerWorkerHandler,
		deregisterWorkerHandler:  deregisterWorkerHandler,
		setAvailabilityHandler:   setAvailabilityHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
		getPoolStatusHandler:     getPoolStatusHandler,
		getArchivedOrdersHandler: getArchivedOrdersHandler,
	}
}

// RegisterRoutes mounts the API on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/decision", s.Decide)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/archive", s.GetArchivedOrders)

	api.POST("/workers", s.RegisterWorker)
	api.DELETE("/workers/:id", s.DeregisterWorker)
	api.PUT("/workers/:id/availability", s.SetAvailability)
	api.GET("/workers", s.GetWorkers)

	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/v1/orders - places a new order and starts
// the assignment cascade.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	paymentMode, err := order.ParsePaymentMode(req.PaymentMode)
	if err != nil {
		return badRequest(ctx, "Invalid payment mode: "+err.Error())
	}

	amount, err := kernel.NewAmount(req.ItemPrice, req.Tax)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(
		customerID, req.CustomerName, req.Address, req.ImageRef, amount,
		paymentMode, req.UPIHandle, req.PaymentProofRef,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, engine.ErrNoWorkerAvailable) {
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "No worker is available to take the order",
			})
		}
		return internalError(ctx, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID: orderID,
		Total:   amount.Total(),
	})
}

// Decide handles POST /api/v1/orders/:id/decision - applies a worker's
// accept or reject for one assignment offer.
func (s *Server) Decide(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req DecisionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	decision, err := ports.ParseDecision(req.Decision)
	if err != nil {
		return badRequest(ctx, "Invalid decision: "+err.Error())
	}

	cmd, err := commands.NewDecideCommand(orderID, req.Cursor, worker.ID(req.WorkerID), decision)
	if err != nil {
		return badRequest(ctx, "Invalid decision data: "+err.Error())
	}

	if err = s.decideHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, "Order not found")
		case errors.Is(err, engine.ErrStaleDecision):
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "Decision is stale: the offer was already superseded",
			})
		default:
			return internalError(ctx, "Failed to apply decision")
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete - marks an accepted
// order fulfilled.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req CompleteOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, req.Detail)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, "Order not found")
		case errors.Is(err, errs.ErrValueIsInvalid):
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "Order is not in a completable state",
			})
		default:
			return internalError(ctx, "Failed to complete order")
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all live
// orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetArchivedOrders handles GET /api/v1/orders/archive - retrieves finished
// orders, newest first.
func (s *Server) GetArchivedOrders(ctx echo.Context) error {
	limit := defaultArchiveLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid limit")
		}
		limit = parsed
	}

	query, err := queries.NewGetArchivedOrdersQuery(limit)
	if err != nil {
		return badRequest(ctx, "Invalid limit: "+err.Error())
	}

	orders, err := s.getArchivedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve archived orders")
	}

	return ctx.JSON(http.StatusOK, orders)
}

// RegisterWorker handles POST /api/v1/workers - adds a regular worker to
// the pool.
func (s *Server) RegisterWorker(ctx echo.Context) error {
	var req RegisterWorkerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterWorkerCommand(worker.ID(req.WorkerID))
	if err != nil {
		return badRequest(ctx, "Invalid worker id: "+err.Error())
	}

	if err = s.registerWorkerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to register worker")
	}

	return ctx.NoContent(http.StatusCreated)
}

// DeregisterWorker handles DELETE /api/v1/workers/:id - removes a worker
// from the pool.
func (s *Server) DeregisterWorker(ctx echo.Context) error {
	cmd, err := commands.NewDeregisterWorkerCommand(worker.ID(ctx.Param("id")))
	if err != nil {
		return badRequest(ctx, "Invalid worker id: "+err.Error())
	}

	if err = s.deregisterWorkerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, "Worker not found")
		case errors.Is(err, ports.ErrProtectedWorker):
			return ctx.JSON(http.StatusForbidden, Error{
				Code:    http.StatusForbidden,
				Message: "Worker is protected and cannot be removed",
			})
		default:
			return internalError(ctx, "Failed to deregister worker")
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetAvailability handles PUT /api/v1/workers/:id/availability - flips a
// worker online or offline.
func (s *Server) SetAvailability(ctx echo.Context) error {
	var req SetAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	availability, err := worker.ParseAvailability(req.Availability)
	if err != nil {
		return badRequest(ctx, "Invalid availability: "+err.Error())
	}

	cmd, err := commands.NewSetAvailabilityCommand(worker.ID(ctx.Param("id")), availability)
	if err != nil {
		return badRequest(ctx, "Invalid availability data: "+err.Error())
	}

	if err = s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Worker not found")
		}
		return internalError(ctx, "Failed to update availability")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetWorkers handles GET /api/v1/workers - retrieves the pool status.
func (s *Server) GetWorkers(ctx echo.Context) error {
	query := queries.NewGetPoolStatusQuery()

	workers, err := s.getPoolStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve workers")
	}

	return ctx.JSON(http.StatusOK, workers)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

func orderIDParam(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: message})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: message})
}
