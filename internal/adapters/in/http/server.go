// Package http exposes the application's use cases over a REST API built
// on Echo. Handlers translate between the JSON contracts and the command
// and query objects; all business rules stay in the core.
package http

import (
	"errors"
	"net/http"

	"grabee/internal/core/application/usecases/commands"
	"grabee/internal/core/application/usecases/queries"
	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/core/domain/model/order"
	"grabee/internal/core/domain/model/vendors"
	"grabee/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	updateDeliveryDetailsHandler commands.UpdateDeliveryDetailsCommandHandler
	advanceOrderStatusHandler    commands.AdvanceOrderStatusCommandHandler
	completeDeliveryHandler      commands.CompleteDeliveryCommandHandler
	saveCustomerProfileHandler   commands.SaveCustomerProfileCommandHandler
	registerVendorHandler        commands.RegisterVendorCommandHandler
	reviewVendorHandler          commands.ReviewVendorCommandHandler
	addMenuItemHandler           commands.AddMenuItemCommandHandler

	// Query handlers
	getActiveOrdersHandler  queries.GetActiveOrdersQueryHandler
	getRewardBalanceHandler queries.GetRewardBalanceQueryHandler
	getVendorMenuHandler    queries.GetVendorMenuQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateDeliveryDetailsHandler commands.UpdateDeliveryDetailsCommandHandler,
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	saveCustomerProfileHandler commands.SaveCustomerProfileCommandHandler,
	registerVendorHandler commands.RegisterVendorCommandHandler,
	reviewVendorHandler commands.ReviewVendorCommandHandler,
	addMenuItemHandler commands.AddMenuItemCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getRewardBalanceHandler queries.GetRewardBalanceQueryHandler,
	getVendorMenuHandler queries.GetVendorMenuQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		updateDeliveryDetailsHandler: updateDeliveryDetailsHandler,
		advanceOrderStatusHandler:    advanceOrderStatusHandler,
		completeDeliveryHandler:      completeDeliveryHandler,
		saveCustomerProfileHandler:   saveCustomerProfileHandler,
		registerVendorHandler:        registerVendorHandler,
		reviewVendorHandler:          reviewVendorHandler,
		addMenuItemHandler:           addMenuItemHandler,
		getActiveOrdersHandler:       getActiveOrdersHandler,
		getRewardBalanceHandler:      getRewardBalanceHandler,
		getVendorMenuHandler:         getVendorMenuHandler,
	}
}

// RegisterRoutes attaches every API route to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/active", s.GetActiveOrders)
	v1.PUT("/orders/:id/details", s.UpdateDeliveryDetails)
	v1.POST("/orders/:id/accept", s.AcceptOrder)
	v1.POST("/orders/:id/pickup", s.PickUpOrder)
	v1.POST("/orders/:id/complete", s.CompleteDelivery)
	v1.PUT("/customers/:id", s.SaveCustomerProfile)
	v1.GET("/customers/:id/rewards", s.GetRewardBalance)
	v1.POST("/vendors", s.RegisterVendor)
	v1.POST("/vendors/:id/review", s.ReviewVendor)
	v1.POST("/vendors/:id/menu", s.AddMenuItem)
	v1.GET("/vendors/:id/menu", s.GetVendorMenu)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - registers a checkout as a new
// Pending order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(newOrder.CustomerId[:])
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID,
		newOrder.CustomerName, newOrder.DeliveryAddress, newOrder.Items,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: orderID.Bytes()})
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves every order
// that has not reached Delivered.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveOrdersQuery(),
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			Id:              o.ID.Bytes(),
			CustomerId:      o.CustomerID.Bytes(),
			CustomerName:    o.CustomerName,
			DeliveryAddress: o.DeliveryAddress,
			Items:           o.Items,
			Status:          o.Status.String(),
			CreatedAt:       o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateDeliveryDetails handles PUT /api/v1/orders/:id/details - changes the
// recipient name and address of a still-pending order.
func (s *Server) UpdateDeliveryDetails(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var details DeliveryDetails
	if err = ctx.Bind(&details); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryDetailsCommand(
		orderID, details.CustomerName, details.DeliveryAddress,
	)
	if err != nil {
		return badRequest(ctx, "Invalid delivery details: "+err.Error())
	}

	if handleErr := s.updateDeliveryDetailsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptOrder handles POST /api/v1/orders/:id/accept - the vendor confirms
// a pending order.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	return s.advanceOrder(ctx, order.Accepted)
}

// PickUpOrder handles POST /api/v1/orders/:id/pickup - the rider collects
// an accepted order.
func (s *Server) PickUpOrder(ctx echo.Context) error {
	return s.advanceOrder(ctx, order.PickedUp)
}

func (s *Server) advanceOrder(ctx echo.Context, target order.Status) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, target)
	if err != nil {
		return badRequest(ctx, "Invalid transition: "+err.Error())
	}

	if handleErr := s.advanceOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/orders/:id/complete - marks the
// order Delivered and credits the customer's eco-points, atomically.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SaveCustomerProfile handles PUT /api/v1/customers/:id - creates or
// replaces a customer profile.
func (s *Server) SaveCustomerProfile(ctx echo.Context) error {
	customerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	var profile CustomerProfile
	if err = ctx.Bind(&profile); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSaveCustomerProfileCommand(
		customerID,
		profile.FullName, profile.PhoneNumber, profile.BirthDate, profile.Address,
	)
	if err != nil {
		return badRequest(ctx, "Invalid profile data: "+err.Error())
	}

	if handleErr := s.saveCustomerProfileHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRewardBalance handles GET /api/v1/customers/:id/rewards - retrieves
// the customer's eco-points balance.
func (s *Server) GetRewardBalance(ctx echo.Context) error {
	customerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewGetRewardBalanceQuery(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	balance, err := s.getRewardBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RewardBalance{
		CustomerId: balance.CustomerID.Bytes(),
		Points:     balance.Points,
	})
}

// RegisterVendor handles POST /api/v1/vendors - files a vendor application
// awaiting review.
func (s *Server) RegisterVendor(ctx echo.Context) error {
	var newVendor NewVendor
	if err := ctx.Bind(&newVendor); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vendorID := kernel.NewUUID()
	cmd, err := commands.NewRegisterVendorCommand(vendorID, newVendor.Name, newVendor.CertificationUrl)
	if err != nil {
		return badRequest(ctx, "Invalid vendor data: "+err.Error())
	}

	if handleErr := s.registerVendorHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: vendorID.Bytes()})
}

// ReviewVendor handles POST /api/v1/vendors/:id/review - approves or
// rejects a pending vendor application.
func (s *Server) ReviewVendor(ctx echo.Context) error {
	vendorID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id")
	}

	var review VendorReview
	if err = ctx.Bind(&review); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReviewVendorCommand(vendorID, review.Approve)
	if err != nil {
		return badRequest(ctx, "Invalid review data: "+err.Error())
	}

	if handleErr := s.reviewVendorHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddMenuItem handles POST /api/v1/vendors/:id/menu - lists a menu item for
// an approved vendor.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	vendorID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id")
	}

	var newItem NewMenuItem
	if err = ctx.Bind(&newItem); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddMenuItemCommand(
		itemID, vendorID,
		newItem.Name, newItem.Description, newItem.Price, newItem.Category,
		newItem.IsHalal, newItem.IsAvailable, newItem.ImageUrl,
	)
	if err != nil {
		return badRequest(ctx, "Invalid menu item data: "+err.Error())
	}

	if handleErr := s.addMenuItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: itemID.Bytes()})
}

// GetVendorMenu handles GET /api/v1/vendors/:id/menu - retrieves the
// vendor's listed items sorted by category then name.
func (s *Server) GetVendorMenu(ctx echo.Context) error {
	vendorID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id")
	}

	query, err := queries.NewGetVendorMenuQuery(vendorID)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id: "+err.Error())
	}

	items, err := s.getVendorMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = MenuItem{
			Id:          item.ID.Bytes(),
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Category:    item.Category,
			IsHalal:     item.IsHalal,
			IsAvailable: item.IsAvailable,
			ImageUrl:    item.ImageURL,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// respondError translates application and domain errors into the API's
// status codes. Unrecognized errors are reported as storage failures
// without leaking internals.
func (s *Server) respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrOrderAlreadyDelivered):
		return respond(ctx, http.StatusConflict, "Order has already been delivered")
	case errors.Is(err, commands.ErrOrderTransitionConflict):
		return respond(ctx, http.StatusConflict, "A concurrent update is in progress, retry the request")
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(ctx, http.StatusNotFound, "Resource not found")
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderAlreadyDispatched),
		errors.Is(err, vendors.ErrVendorAlreadyReviewed),
		errors.Is(err, commands.ErrVendorNotApproved):
		return respond(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respond(ctx, http.StatusBadRequest, err.Error())
	default:
		return respond(ctx, http.StatusInternalServerError, "Internal storage failure")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return respond(ctx, http.StatusBadRequest, message)
}

func respond(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}
