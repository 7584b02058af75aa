package http

import (
	"net/http"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/application/usecases/commands"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/application/usecases/queries"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the dispatch platform over HTTP. It binds and shape-checks
// requests, translates them into commands and queries, and maps use-case
// errors onto the status codes clients key off.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	acceptOrderHandler        commands.AcceptOrderCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	rateOrderHandler          commands.RateOrderCommandHandler
	requestCouriersHandler    commands.RequestCouriersCommandHandler
	reviewOrderPricingHandler commands.ReviewOrderPricingCommandHandler
	completePaymentHandler    commands.CompletePaymentCommandHandler

	// Query handlers
	getAvailableOrdersHandler      queries.GetAvailableOrdersQueryHandler
	getCompanyBalanceHandler       queries.GetCompanyBalanceQueryHandler
	getDailyReconciliationsHandler queries.GetDailyReconciliationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	rateOrderHandler commands.RateOrderCommandHandler,
	requestCouriersHandler commands.RequestCouriersCommandHandler,
	reviewOrderPricingHandler commands.ReviewOrderPricingCommandHandler,
	completePaymentHandler commands.CompletePaymentCommandHandler,
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	getCompanyBalanceHandler queries.GetCompanyBalanceQueryHandler,
	getDailyReconciliationsHandler queries.GetDailyReconciliationsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:             createOrderHandler,
		acceptOrderHandler:             acceptOrderHandler,
		updateOrderStatusHandler:       updateOrderStatusHandler,
		cancelOrderHandler:             cancelOrderHandler,
		rateOrderHandler:               rateOrderHandler,
		requestCouriersHandler:         requestCouriersHandler,
		reviewOrderPricingHandler:      reviewOrderPricingHandler,
		completePaymentHandler:         completePaymentHandler,
		getAvailableOrdersHandler:      getAvailableOrdersHandler,
		getCompanyBalanceHandler:       getCompanyBalanceHandler,
		getDailyReconciliationsHandler: getDailyReconciliationsHandler,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/available", s.GetAvailableOrders)
	v1.POST("/orders/:id/accept", s.AcceptOrder)
	v1.POST("/orders/:id/status", s.UpdateOrderStatus)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
	v1.POST("/orders/:id/rating", s.RateOrder)
	v1.POST("/orders/:id/dispatch", s.RequestCouriers)
	v1.POST("/orders/:id/pricing-review", s.ReviewOrderPricing)
	v1.POST("/payments", s.CompletePayment)
	v1.GET("/companies/:id/balance", s.GetCompanyBalance)
	v1.GET("/companies/:id/reconciliations", s.GetDailyReconciliations)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	companyID, err := parseUUID("companyId", req.CompanyID)
	if err != nil {
		return writeError(ctx, err)
	}

	details, err := detailsFromRequest(req)
	if err != nil {
		return writeError(ctx, err)
	}

	dispatch := true
	if req.DispatchToCouriers != nil {
		dispatch = *req.DispatchToCouriers
	}

	cmd, err := commands.NewCreateOrderCommand(
		companyID, details,
		req.ExternalDistanceKm, req.ExternalTimeMin,
		dispatch, req.RequiresApproval,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// AcceptOrder handles POST /api/v1/orders/:id/accept. Losing the race for
// the order yields 409 ORDER_ALREADY_TAKEN.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := parseUUID("orderId", ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req acceptOrderRequest
	if err = bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	courierID, err := parseUUID("courierId", req.CourierID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	accepted, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(accepted))
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status. Only the
// assigned courier may move the order, and only to IN_PROGRESS or DELIVERED.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := parseUUID("orderId", ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateOrderStatusRequest
	if err = bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	courierID, err := parseUUID("courierId", req.CourierID)
	if err != nil {
		return writeError(ctx, err)
	}

	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, courierID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := parseUUID("orderId", ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req cancelOrderRequest
	if err = bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason, req.InitiatedByCompany)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RateOrder handles POST /api/v1/orders/:id/rating.
func (s *Server) RateOrder(ctx echo.Context) error {
	orderID, err := parseUUID("orderId", ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req rateOrderRequest
	if err = bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	companyID, err := parseUUID("companyId", req.CompanyID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRateOrderCommand(orderID, companyID, req.Rating, req.Feedback)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.rateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestCouriers handles POST /api/v1/orders/:id/dispatch.
func (s *Server) RequestCouriers(ctx echo.Context) error {
	orderID, err := parseUUID("orderId", ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRequestCouriersCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.requestCouriersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReviewOrderPricing handles POST /api/v1/orders/:id/pricing-review.
func (s *Server) ReviewOrderPricing(ctx echo.Context) error {
	orderID, err := parseUUID("orderId", ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req reviewOrderPricingRequest
	if err = bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReviewOrderPricingCommand(orderID, req.Approve, req.Dispatch)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.reviewOrderPricingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompletePayment handles POST /api/v1/payments.
func (s *Server) CompletePayment(ctx echo.Context) error {
	var req completePaymentRequest
	if err := bind(ctx, &req); err != nil {
		return writeError(ctx, err)
	}

	companyID, err := parseUUID("companyId", req.CompanyID)
	if err != nil {
		return writeError(ctx, err)
	}

	var paidAt time.Time
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	cmd, err := commands.NewCompletePaymentCommand(companyID, req.Amount, paidAt)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.completePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableOrders handles GET /api/v1/orders/available.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	query := queries.NewGetAvailableOrdersQuery()

	rows, err := s.getAvailableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAvailableOrderResponses(rows))
}

// GetCompanyBalance handles GET /api/v1/companies/:id/balance.
func (s *Server) GetCompanyBalance(ctx echo.Context) error {
	companyID, err := parseUUID("companyId", ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCompanyBalanceQuery(companyID)
	if err != nil {
		return writeError(ctx, err)
	}

	row, err := s.getCompanyBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBalanceResponse(row))
}

// GetDailyReconciliations handles GET /api/v1/companies/:id/reconciliations.
func (s *Server) GetDailyReconciliations(ctx echo.Context) error {
	companyID, err := parseUUID("companyId", ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDailyReconciliationsQuery(companyID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getDailyReconciliationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReconciliationResponses(rows))
}

// bind decodes and shape-checks a request body in one step.
func bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return ctx.Validate(req)
}

// parseUUID turns a path or body identifier into a kernel UUID, surfacing
// malformed input as a validation error rather than an internal one.
func parseUUID(paramName, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

func detailsFromRequest(req createOrderRequest) (order.Details, error) {
	pickup, err := kernel.NewGeoPoint(req.PickupLat, req.PickupLng)
	if err != nil {
		return order.Details{}, err
	}
	delivery, err := kernel.NewGeoPoint(req.DeliveryLat, req.DeliveryLng)
	if err != nil {
		return order.Details{}, err
	}

	packageType, err := order.ParsePackageType(req.PackageType)
	if err != nil {
		return order.Details{}, err
	}
	packageSize, err := order.ParsePackageSize(req.PackageSize)
	if err != nil {
		return order.Details{}, err
	}
	deliveryType, err := order.ParseDeliveryType(req.DeliveryType)
	if err != nil {
		return order.Details{}, err
	}
	urgency, err := order.ParseUrgency(req.Urgency)
	if err != nil {
		return order.Details{}, err
	}

	return order.Details{
		RecipientName:   req.RecipientName,
		RecipientPhone:  req.RecipientPhone,
		PickupPoint:     pickup,
		DeliveryPoint:   delivery,
		PickupAddress:   req.PickupAddress,
		DeliveryAddress: req.DeliveryAddress,
		AddressDetail:   req.AddressDetail,
		PackageType:     packageType,
		PackageSize:     packageSize,
		DeliveryType:    deliveryType,
		Urgency:         urgency,
		Source:          req.Source,
	}, nil
}
