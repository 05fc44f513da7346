package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	transitionOrderHandler      commands.TransitionOrderCommandHandler
	assignHandler               commands.AssignDeliveryPersonCommandHandler
	reassignHandler             commands.ReassignDeliveryPersonCommandHandler
	createDeliveryPersonHandler commands.CreateDeliveryPersonCommandHandler
	setActivityHandler          commands.SetDeliveryPersonActivityCommandHandler

	// Query handlers
	getOrdersHandler            queries.GetOrdersQueryHandler
	getPersonStatsHandler       queries.GetDeliveryPersonStatsQueryHandler
	getOverallStatsHandler      queries.GetOverallStatsQueryHandler
	getActiveAssignmentsHandler queries.GetActiveAssignmentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	assignHandler commands.AssignDeliveryPersonCommandHandler,
	reassignHandler commands.ReassignDeliveryPersonCommandHandler,
	createDeliveryPersonHandler commands.CreateDeliveryPersonCommandHandler,
	setActivityHandler commands.SetDeliveryPersonActivityCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getPersonStatsHandler queries.GetDeliveryPersonStatsQueryHandler,
	getOverallStatsHandler queries.GetOverallStatsQueryHandler,
	getActiveAssignmentsHandler queries.GetActiveAssignmentsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		transitionOrderHandler:      transitionOrderHandler,
		assignHandler:               assignHandler,
		reassignHandler:             reassignHandler,
		createDeliveryPersonHandler: createDeliveryPersonHandler,
		setActivityHandler:          setActivityHandler,
		getOrdersHandler:            getOrdersHandler,
		getPersonStatsHandler:       getPersonStatsHandler,
		getOverallStatsHandler:      getOverallStatsHandler,
		getActiveAssignmentsHandler: getActiveAssignmentsHandler,
	}
}

// RegisterRoutes attaches every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders/:id/transition", s.TransitionOrder)
	api.POST("/orders/:id/assign", s.AssignDeliveryPerson)
	api.POST("/orders/:id/reassign", s.ReassignDeliveryPerson)

	api.POST("/delivery-persons", s.CreateDeliveryPerson)
	api.PATCH("/delivery-persons/:id/activity", s.SetDeliveryPersonActivity)
	api.GET("/delivery-persons/:id/stats", s.GetDeliveryPersonStats)

	api.GET("/stats", s.GetOverallStats)
	api.GET("/assignments/active", s.GetActiveAssignments)
}

// CreateOrder handles POST /api/v1/orders - registers a newly placed order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, order.Item{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		req.OrderNumber,
		req.CustomerName,
		order.Address{Street: req.Address.Street, City: req.Address.City, ZipCode: req.Address.ZipCode},
		req.TotalAmount,
		items,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - lists orders with optional status
// and deliveryPersonId filters.
func (s *Server) GetOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		value := order.Status(raw)
		status = &value
	}

	var personID *kernel.UUID
	if raw := ctx.QueryParam("deliveryPersonId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid deliveryPersonId")
		}
		personID = &id
	}

	query, err := queries.NewGetOrdersQuery(status, personID)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, orderResponseFrom(row))
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransitionOrder handles POST /api/v1/orders/:id/transition - moves an order
// through its lifecycle on behalf of an actor.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var actorID *kernel.UUID
	if req.ActorID != "" {
		id, idErr := kernel.UUIDFromString(req.ActorID)
		if idErr != nil {
			return badRequest(ctx, "Invalid actorId")
		}
		actorID = &id
	}

	cmd, err := commands.NewTransitionOrderCommand(
		orderID,
		order.Status(req.TargetStatus),
		order.Role(req.ActorRole),
		actorID,
		order.Annotations{
			DeliveryNotes:         req.DeliveryNotes,
			EstimatedDeliveryTime: req.EstimatedDeliveryTime,
		},
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDeliveryPerson handles POST /api/v1/orders/:id/assign - hands a
// confirmed order to a delivery person.
func (s *Server) AssignDeliveryPerson(ctx echo.Context) error {
	orderID, personID, err := s.bindAssignment(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignDeliveryPersonCommand(orderID, personID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.assignHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReassignDeliveryPerson handles POST /api/v1/orders/:id/reassign - replaces
// the delivery person on an in-flight order.
func (s *Server) ReassignDeliveryPerson(ctx echo.Context) error {
	orderID, personID, err := s.bindAssignment(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewReassignDeliveryPersonCommand(orderID, personID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.reassignHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDeliveryPerson handles POST /api/v1/delivery-persons - registers a
// delivery person.
func (s *Server) CreateDeliveryPerson(ctx echo.Context) error {
	var req CreateDeliveryPersonRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	personID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryPersonCommand(personID, req.Name, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createDeliveryPersonHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateDeliveryPersonResponse{ID: personID.String()})
}

// SetDeliveryPersonActivity handles PATCH /api/v1/delivery-persons/:id/activity.
func (s *Server) SetDeliveryPersonActivity(ctx echo.Context) error {
	personID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery person id")
	}

	var req ActivityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetDeliveryPersonActivityCommand(personID, req.IsActive)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.setActivityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryPersonStats handles GET /api/v1/delivery-persons/:id/stats.
func (s *Server) GetDeliveryPersonStats(ctx echo.Context) error {
	personID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery person id")
	}

	query, err := queries.NewGetDeliveryPersonStatsQuery(personID)
	if err != nil {
		return respondError(ctx, err)
	}

	stats, err := s.getPersonStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statsResponseFrom(stats))
}

// GetOverallStats handles GET /api/v1/stats - the administrator dashboard.
func (s *Server) GetOverallStats(ctx echo.Context) error {
	stats, err := s.getOverallStatsHandler.Handle(
		ctx.Request().Context(), queries.NewGetOverallStatsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := OverallStatsResponse{
		TotalAssigned:              stats.TotalAssigned,
		TotalDelivered:             stats.TotalDelivered,
		TotalCompleted:             stats.TotalCompleted,
		DeliveryRate:               stats.DeliveryRate,
		AverageDeliveryTimeSeconds: int64(stats.AverageDeliveryTime.Seconds()),
		Persons:                    make([]StatsResponse, 0, len(stats.Persons)),
	}
	for _, row := range stats.Persons {
		response.Persons = append(response.Persons, statsResponseFrom(row))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveAssignments handles GET /api/v1/assignments/active.
func (s *Server) GetActiveAssignments(ctx echo.Context) error {
	rows, err := s.getActiveAssignmentsHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveAssignmentsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AssignmentResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, AssignmentResponse{
			OrderID:          row.OrderID.String(),
			OrderNumber:      row.OrderNumber,
			Status:           row.Status.String(),
			DeliveryPersonID: row.DeliveryPersonID.String(),
			AssignedAt:       row.AssignedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// bindAssignment extracts the order id from the path and the delivery person
// id from the body, shared by assign and reassign.
func (s *Server) bindAssignment(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, badRequest(ctx, "Invalid order id")
	}

	var req AssignRequest
	if err = ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, badRequest(ctx, "Invalid request body")
	}

	personID, err := kernel.UUIDFromString(req.DeliveryPersonID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, badRequest(ctx, "Invalid deliveryPersonId")
	}

	return orderID, personID, nil
}
