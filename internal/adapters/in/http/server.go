// Package http exposes the workflow engine over a JSON API.
// It translates requests into commands and queries and maps domain errors
// onto HTTP status codes; no workflow rules live here.
package http

import (
	"errors"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	submitOrderStageHandler      commands.SubmitOrderStageCommandHandler
	submitProcessingStageHandler commands.SubmitProcessingStageCommandHandler
	submitDeliveryStageHandler   commands.SubmitDeliveryStageCommandHandler
	recordWeightHandler          commands.RecordWeightCommandHandler
	submitPaymentProofHandler    commands.SubmitPaymentProofCommandHandler
	confirmPaymentHandler        commands.ConfirmPaymentCommandHandler

	// Query handlers
	getOrderStateHandler    queries.GetOrderStateQueryHandler
	getOrderTimelineHandler queries.GetOrderTimelineQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	submitOrderStageHandler commands.SubmitOrderStageCommandHandler,
	submitProcessingStageHandler commands.SubmitProcessingStageCommandHandler,
	submitDeliveryStageHandler commands.SubmitDeliveryStageCommandHandler,
	recordWeightHandler commands.RecordWeightCommandHandler,
	submitPaymentProofHandler commands.SubmitPaymentProofCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	getOrderStateHandler queries.GetOrderStateQueryHandler,
	getOrderTimelineHandler queries.GetOrderTimelineQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		submitOrderStageHandler:      submitOrderStageHandler,
		submitProcessingStageHandler: submitProcessingStageHandler,
		submitDeliveryStageHandler:   submitDeliveryStageHandler,
		recordWeightHandler:          recordWeightHandler,
		submitPaymentProofHandler:    submitPaymentProofHandler,
		confirmPaymentHandler:        confirmPaymentHandler,
		getOrderStateHandler:         getOrderStateHandler,
		getOrderTimelineHandler:      getOrderTimelineHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrderState)
	api.GET("/orders/:id/timeline", s.GetOrderTimeline)
	api.POST("/orders/:id/status", s.SubmitOrderStage)
	api.POST("/orders/:id/processing", s.SubmitProcessingStage)
	api.POST("/orders/:id/delivery", s.SubmitDeliveryStage)
	api.POST("/orders/:id/weight", s.RecordWeight)
	api.POST("/orders/:id/payments/:track/proof", s.SubmitPaymentProof)
	api.POST("/orders/:id/payments/:track/confirm", s.ConfirmPayment)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - registers a new laundry order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}
	shopID, err := kernel.UUIDFromString(request.ShopID)
	if err != nil {
		return badRequest(ctx, "Invalid shop id: "+err.Error())
	}
	serviceID, err := kernel.UUIDFromString(request.ServiceID)
	if err != nil {
		return badRequest(ctx, "Invalid service id: "+err.Error())
	}
	deliveryModeID, err := kernel.UUIDFromString(request.DeliveryModeID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery mode id: "+err.Error())
	}
	method, err := payment.MethodFromString(request.PaymentMethod)
	if err != nil {
		return badRequest(ctx, "Invalid payment method: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, shopID, serviceID, deliveryModeID,
		request.AddOns, method,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// SubmitOrderStage handles POST /api/v1/orders/:id/status - records a staff
// selected order-status transition, including the Cancelled and Rejected exits.
func (s *Server) SubmitOrderStage(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var request SubmitStageRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StageFromString(request.Target)
	if err != nil {
		return badRequest(ctx, "Invalid target stage: "+err.Error())
	}

	actor, err := parseActor(request.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}

	cmd, err := commands.NewSubmitOrderStageCommand(orderID, target, actor, request.Reason, request.Note)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if handleErr := s.submitOrderStageHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitProcessingStage handles POST /api/v1/orders/:id/processing - records a
// processing-track transition.
func (s *Server) SubmitProcessingStage(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var request SubmitStageRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StageFromString(request.Target)
	if err != nil {
		return badRequest(ctx, "Invalid target stage: "+err.Error())
	}

	actor, err := parseActor(request.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}

	cmd, err := commands.NewSubmitProcessingStageCommand(orderID, target, actor)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if handleErr := s.submitProcessingStageHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitDeliveryStage handles POST /api/v1/orders/:id/delivery - records one
// step of the incoming or outgoing logistics flow.
func (s *Server) SubmitDeliveryStage(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var request SubmitDeliveryStageRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	direction, err := order.DirectionFromString(request.Direction)
	if err != nil {
		return badRequest(ctx, "Invalid direction: "+err.Error())
	}

	target, err := order.StageFromString(request.Target)
	if err != nil {
		return badRequest(ctx, "Invalid target stage: "+err.Error())
	}

	actor, err := parseActor(request.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}

	cmd, err := commands.NewSubmitDeliveryStageCommand(orderID, direction, target, actor, request.ProofURL)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if handleErr := s.submitDeliveryStageHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordWeight handles POST /api/v1/orders/:id/weight - stores the measured
// weight and arms the invoice payment track.
func (s *Server) RecordWeight(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var request RecordWeightRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor, err := parseActor(request.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}

	cmd, err := commands.NewRecordWeightCommand(orderID, request.Grams, actor)
	if err != nil {
		return badRequest(ctx, "Invalid weight data: "+err.Error())
	}

	if handleErr := s.recordWeightHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitPaymentProof handles POST /api/v1/orders/:id/payments/:track/proof -
// records a customer's payment submission on one payment track.
func (s *Server) SubmitPaymentProof(ctx echo.Context) error {
	orderID, track, err := parsePaymentTarget(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var request PaymentActionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor, err := parseActor(request.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}

	cmd, err := commands.NewSubmitPaymentProofCommand(orderID, track, actor, request.ProofURL)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if handleErr := s.submitPaymentProofHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPayment handles POST /api/v1/orders/:id/payments/:track/confirm -
// records a staff confirmation on one payment track.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	orderID, track, err := parsePaymentTarget(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var request PaymentActionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor, err := parseActor(request.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID, track, actor, request.ProofURL)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if handleErr := s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderState handles GET /api/v1/orders/:id - retrieves the per-track
// snapshot of one order.
func (s *Server) GetOrderState(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderStateQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	state, err := s.getOrderStateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderStateResponse(state))
}

// GetOrderTimeline handles GET /api/v1/orders/:id/timeline - retrieves the
// customer-facing progress view.
func (s *Server) GetOrderTimeline(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderTimelineQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	entries, err := s.getOrderTimelineHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTimelineResponse(entries))
}

func parseActor(request ActorRequest) (order.Actor, error) {
	actorID, err := kernel.UUIDFromString(request.ID)
	if err != nil {
		return order.Actor{}, err
	}
	return order.NewActor(actorID, order.Role(request.Role))
}

func parsePaymentTarget(ctx echo.Context) (kernel.UUID, order.Track, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, order.TrackUnknown, err
	}

	track, err := order.TrackFromString(ctx.Param("track"))
	if err != nil {
		return kernel.UUID{}, order.TrackUnknown, err
	}
	if !track.IsPayment() {
		return kernel.UUID{}, order.TrackUnknown, errs.NewValueIsInvalidError("track is not a payment track")
	}

	return orderID, track, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps a use-case error onto an HTTP status. Validation problems
// are client errors, workflow-rule violations are conflicts, and a missing
// proof gets its own status so clients can prompt for an attachment.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrProofIsRequired):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, order.ErrStageAlreadyCompleted),
		errors.Is(err, order.ErrInvalidSkip),
		errors.Is(err, order.ErrOrderIsFinal),
		errors.Is(err, order.ErrStageNotInPath),
		errors.Is(err, order.ErrNotAwaitingWeighing):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrPersistence):
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
