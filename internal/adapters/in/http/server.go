// Package http exposes the order and catalog operations over a JSON REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server holds the command and query handlers behind the REST routes.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	createMenuItemHandler    commands.CreateMenuItemCommandHandler
	updateMenuItemHandler    commands.UpdateMenuItemCommandHandler
	deleteMenuItemHandler    commands.DeleteMenuItemCommandHandler

	// Query handlers
	getAllOrdersHandler           queries.GetAllOrdersQueryHandler
	getOrderByIDHandler           queries.GetOrderByIDQueryHandler
	getOrdersByStatusHandler      queries.GetOrdersByStatusQueryHandler
	getOrdersByCustomerHandler    queries.GetOrdersByCustomerQueryHandler
	getAllMenuItemsHandler        queries.GetAllMenuItemsQueryHandler
	getMenuItemByIDHandler        queries.GetMenuItemByIDQueryHandler
	getMenuItemsByCategoryHandler queries.GetMenuItemsByCategoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	createMenuItemHandler commands.CreateMenuItemCommandHandler,
	updateMenuItemHandler commands.UpdateMenuItemCommandHandler,
	deleteMenuItemHandler commands.DeleteMenuItemCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler,
	getAllMenuItemsHandler queries.GetAllMenuItemsQueryHandler,
	getMenuItemByIDHandler queries.GetMenuItemByIDQueryHandler,
	getMenuItemsByCategoryHandler queries.GetMenuItemsByCategoryQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:            createOrderHandler,
		updateOrderStatusHandler:      updateOrderStatusHandler,
		createMenuItemHandler:         createMenuItemHandler,
		updateMenuItemHandler:         updateMenuItemHandler,
		deleteMenuItemHandler:         deleteMenuItemHandler,
		getAllOrdersHandler:           getAllOrdersHandler,
		getOrderByIDHandler:           getOrderByIDHandler,
		getOrdersByStatusHandler:      getOrdersByStatusHandler,
		getOrdersByCustomerHandler:    getOrdersByCustomerHandler,
		getAllMenuItemsHandler:        getAllMenuItemsHandler,
		getMenuItemByIDHandler:        getMenuItemByIDHandler,
		getMenuItemsByCategoryHandler: getMenuItemsByCategoryHandler,
	}
}

// RegisterRoutes attaches all order and catalog routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetAllOrders)
	api.GET("/orders/:id", s.GetOrderByID)
	api.GET("/orders/status/:status", s.GetOrdersByStatus)
	api.GET("/orders/customer/:name", s.GetOrdersByCustomer)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)

	api.POST("/menu", s.CreateMenuItem)
	api.GET("/menu", s.GetAllMenuItems)
	api.GET("/menu/:id", s.GetMenuItemByID)
	api.GET("/menu/category/:category", s.GetMenuItemsByCategory)
	api.PUT("/menu/:id", s.UpdateMenuItem)
	api.DELETE("/menu/:id", s.DeleteMenuItem)
}

// CreateOrder handles POST /api/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]commands.OrderLineRequest, 0, len(req.Lines))
	for _, line := range req.Lines {
		menuItemID, err := kernel.UUIDFromString(line.MenuItemID)
		if err != nil {
			return badRequest(ctx, "Invalid menu item id: "+line.MenuItemID)
		}

		lineReq, err := commands.NewOrderLineRequest(menuItemID, line.Quantity)
		if err != nil {
			return badRequest(ctx, "Invalid order line: "+err.Error())
		}

		lines = append(lines, lineReq)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), req.CustomerName, req.Status, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// GetAllOrders handles GET /api/orders - lists every order.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderFromReadModel(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /api/orders/:id - fetches one order.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	o, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(o))
}

// GetOrdersByStatus handles GET /api/orders/status/:status.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	query, err := queries.NewGetOrdersByStatusQuery(ctx.Param("status"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderFromReadModel(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersByCustomer handles GET /api/orders/customer/:name.
func (s *Server) GetOrdersByCustomer(ctx echo.Context) error {
	query, err := queries.NewGetOrdersByCustomerQuery(ctx.Param("name"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getOrdersByCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderFromReadModel(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /api/orders/:id/status - replaces the status label.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to update order status")
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// CreateMenuItem handles POST /api/menu - registers a catalog item.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var req MenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateMenuItemCommand(
		kernel.NewUUID(), req.Name, req.Description, req.Price, req.Category, req.ImageURL)
	if err != nil {
		return badRequest(ctx, "Invalid menu item data: "+err.Error())
	}

	created, err := s.createMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to create menu item")
	}

	return ctx.JSON(http.StatusCreated, menuItemFromDomain(created))
}

// GetAllMenuItems handles GET /api/menu - lists the catalog.
func (s *Server) GetAllMenuItems(ctx echo.Context) error {
	items, err := s.getAllMenuItemsHandler.Handle(ctx.Request().Context(), queries.NewGetAllMenuItemsQuery())
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve menu")
	}

	response := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, menuItemFromReadModel(item))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMenuItemByID handles GET /api/menu/:id - fetches one catalog item.
func (s *Server) GetMenuItemByID(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu item id: "+ctx.Param("id"))
	}

	query, err := queries.NewGetMenuItemByIDQuery(itemID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	item, err := s.getMenuItemByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve menu item")
	}

	return ctx.JSON(http.StatusOK, menuItemFromReadModel(item))
}

// GetMenuItemsByCategory handles GET /api/menu/category/:category.
func (s *Server) GetMenuItemsByCategory(ctx echo.Context) error {
	query, err := queries.NewGetMenuItemsByCategoryQuery(ctx.Param("category"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	items, err := s.getMenuItemsByCategoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve menu items")
	}

	response := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, menuItemFromReadModel(item))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateMenuItem handles PUT /api/menu/:id - replaces a catalog item's details.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu item id: "+ctx.Param("id"))
	}

	var req MenuItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateMenuItemCommand(
		itemID, req.Name, req.Description, req.Price, req.Category, req.ImageURL)
	if err != nil {
		return badRequest(ctx, "Invalid menu item data: "+err.Error())
	}

	updated, err := s.updateMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to update menu item")
	}

	return ctx.JSON(http.StatusOK, menuItemFromDomain(updated))
}

// DeleteMenuItem handles DELETE /api/menu/:id - removes a catalog item.
func (s *Server) DeleteMenuItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu item id: "+ctx.Param("id"))
	}

	cmd, err := commands.NewDeleteMenuItemCommand(itemID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to delete menu item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors to HTTP status codes. Missing objects
// become 404, validation failures 400, everything else 500.
func writeError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}
