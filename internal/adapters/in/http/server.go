// Package http provides the inbound HTTP adapter. It translates REST
// requests into commands and queries and the core's error taxonomy into
// HTTP status codes.
package http

import (
	"net/http"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createProductHandler         commands.CreateProductCommandHandler
	changeProductPriceHandler    commands.ChangeProductPriceCommandHandler
	createMenuGroupHandler       commands.CreateMenuGroupCommandHandler
	createMenuHandler            commands.CreateMenuCommandHandler
	changeMenuPriceHandler       commands.ChangeMenuPriceCommandHandler
	displayMenuHandler           commands.DisplayMenuCommandHandler
	hideMenuHandler              commands.HideMenuCommandHandler
	createOrderTableHandler      commands.CreateOrderTableCommandHandler
	sitOrderTableHandler         commands.SitOrderTableCommandHandler
	clearOrderTableHandler       commands.ClearOrderTableCommandHandler
	changeNumberOfGuestsHandler  commands.ChangeNumberOfGuestsCommandHandler
	createOrderHandler           commands.CreateOrderCommandHandler
	acceptOrderHandler           commands.AcceptOrderCommandHandler
	serveOrderHandler            commands.ServeOrderCommandHandler
	startOrderDeliveryHandler    commands.StartOrderDeliveryCommandHandler
	completeOrderDeliveryHandler commands.CompleteOrderDeliveryCommandHandler
	completeOrderHandler         commands.CompleteOrderCommandHandler

	// Query handlers
	getProductsHandler    queries.GetProductsQueryHandler
	getMenuGroupsHandler  queries.GetMenuGroupsQueryHandler
	getMenusHandler       queries.GetMenusQueryHandler
	getOrderTablesHandler queries.GetOrderTablesQueryHandler
	getOrdersHandler      queries.GetOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createProductHandler commands.CreateProductCommandHandler,
	changeProductPriceHandler commands.ChangeProductPriceCommandHandler,
	createMenuGroupHandler commands.CreateMenuGroupCommandHandler,
	createMenuHandler commands.CreateMenuCommandHandler,
	changeMenuPriceHandler commands.ChangeMenuPriceCommandHandler,
	displayMenuHandler commands.DisplayMenuCommandHandler,
	hideMenuHandler commands.HideMenuCommandHandler,
	createOrderTableHandler commands.CreateOrderTableCommandHandler,
	sitOrderTableHandler commands.SitOrderTableCommandHandler,
	clearOrderTableHandler commands.ClearOrderTableCommandHandler,
	changeNumberOfGuestsHandler commands.ChangeNumberOfGuestsCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	serveOrderHandler commands.ServeOrderCommandHandler,
	startOrderDeliveryHandler commands.StartOrderDeliveryCommandHandler,
	completeOrderDeliveryHandler commands.CompleteOrderDeliveryCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getMenuGroupsHandler queries.GetMenuGroupsQueryHandler,
	getMenusHandler queries.GetMenusQueryHandler,
	getOrderTablesHandler queries.GetOrderTablesQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
) *Server {
	return &Server{
		createProductHandler:         createProductHandler,
		changeProductPriceHandler:    changeProductPriceHandler,
		createMenuGroupHandler:       createMenuGroupHandler,
		createMenuHandler:            createMenuHandler,
		changeMenuPriceHandler:       changeMenuPriceHandler,
		displayMenuHandler:           displayMenuHandler,
		hideMenuHandler:              hideMenuHandler,
		createOrderTableHandler:      createOrderTableHandler,
		sitOrderTableHandler:         sitOrderTableHandler,
		clearOrderTableHandler:       clearOrderTableHandler,
		changeNumberOfGuestsHandler:  changeNumberOfGuestsHandler,
		createOrderHandler:           createOrderHandler,
		acceptOrderHandler:           acceptOrderHandler,
		serveOrderHandler:            serveOrderHandler,
		startOrderDeliveryHandler:    startOrderDeliveryHandler,
		completeOrderDeliveryHandler: completeOrderDeliveryHandler,
		completeOrderHandler:         completeOrderHandler,
		getProductsHandler:           getProductsHandler,
		getMenuGroupsHandler:         getMenuGroupsHandler,
		getMenusHandler:              getMenusHandler,
		getOrderTablesHandler:        getOrderTablesHandler,
		getOrdersHandler:             getOrdersHandler,
	}
}

// RegisterRoutes wires all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/products", s.CreateProduct)
	api.PUT("/products/:productId/price", s.ChangeProductPrice)
	api.GET("/products", s.GetProducts)

	api.POST("/menu-groups", s.CreateMenuGroup)
	api.GET("/menu-groups", s.GetMenuGroups)

	api.POST("/menus", s.CreateMenu)
	api.PUT("/menus/:menuId/price", s.ChangeMenuPrice)
	api.PUT("/menus/:menuId/display", s.DisplayMenu)
	api.PUT("/menus/:menuId/hide", s.HideMenu)
	api.GET("/menus", s.GetMenus)

	api.POST("/order-tables", s.CreateOrderTable)
	api.PUT("/order-tables/:orderTableId/sit", s.SitOrderTable)
	api.PUT("/order-tables/:orderTableId/clear", s.ClearOrderTable)
	api.PUT("/order-tables/:orderTableId/number-of-guests", s.ChangeNumberOfGuests)
	api.GET("/order-tables", s.GetOrderTables)

	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:orderId/accept", s.AcceptOrder)
	api.PUT("/orders/:orderId/serve", s.ServeOrder)
	api.PUT("/orders/:orderId/start-delivery", s.StartOrderDelivery)
	api.PUT("/orders/:orderId/complete-delivery", s.CompleteOrderDelivery)
	api.PUT("/orders/:orderId/complete", s.CompleteOrder)
	api.GET("/orders", s.GetOrders)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req ProductRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if req.Price == nil {
		return errorJSON(ctx, errs.NewValueIsRequiredError("price"))
	}

	cmd, err := commands.NewCreateProductCommand(req.Name, *req.Price)
	if err != nil {
		return errorJSON(ctx, err)
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productToResponse(created))
}

// ChangeProductPrice handles PUT /api/v1/products/:productId/price.
// Repricing a product also hides any menu whose displayed price exceeds the
// recalculated total of its products.
func (s *Server) ChangeProductPrice(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req PriceRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if req.Price == nil {
		return errorJSON(ctx, errs.NewValueIsRequiredError("price"))
	}

	cmd, err := commands.NewChangeProductPriceCommand(productID, *req.Price)
	if err != nil {
		return errorJSON(ctx, err)
	}

	repriced, err := s.changeProductPriceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productToResponse(repriced))
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), queries.NewGetProductsQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, ProductResponse{
			ID:    p.ID.Bytes(),
			Name:  p.Name,
			Price: p.Price,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuGroup handles POST /api/v1/menu-groups.
func (s *Server) CreateMenuGroup(ctx echo.Context) error {
	var req MenuGroupRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateMenuGroupCommand(req.Name)
	if err != nil {
		return errorJSON(ctx, err)
	}

	created, err := s.createMenuGroupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, menuGroupToResponse(created))
}

// GetMenuGroups handles GET /api/v1/menu-groups.
func (s *Server) GetMenuGroups(ctx echo.Context) error {
	groups, err := s.getMenuGroupsHandler.Handle(ctx.Request().Context(), queries.NewGetMenuGroupsQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]MenuGroupResponse, 0, len(groups))
	for _, g := range groups {
		response = append(response, MenuGroupResponse{
			ID:   g.ID.Bytes(),
			Name: g.Name,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMenu handles POST /api/v1/menus.
func (s *Server) CreateMenu(ctx echo.Context) error {
	var req MenuRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	menuGroupID, err := kernel.UUIDFromBytes(req.MenuGroupID[:])
	if err != nil {
		return errorJSON(ctx, err)
	}

	menuProducts := make([]menu.MenuProduct, 0, len(req.MenuProducts))
	for _, mp := range req.MenuProducts {
		productID, idErr := kernel.UUIDFromBytes(mp.ProductID[:])
		if idErr != nil {
			return errorJSON(ctx, idErr)
		}

		menuProduct, mpErr := menu.NewMenuProduct(productID, mp.Quantity)
		if mpErr != nil {
			return errorJSON(ctx, mpErr)
		}
		menuProducts = append(menuProducts, menuProduct)
	}

	if req.Price == nil {
		return errorJSON(ctx, errs.NewValueIsRequiredError("price"))
	}

	cmd, err := commands.NewCreateMenuCommand(req.Name, *req.Price, menuGroupID, req.Displayed, menuProducts)
	if err != nil {
		return errorJSON(ctx, err)
	}

	created, err := s.createMenuHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, menuToResponse(created))
}

// ChangeMenuPrice handles PUT /api/v1/menus/:menuId/price.
func (s *Server) ChangeMenuPrice(ctx echo.Context) error {
	menuID, err := kernel.UUIDFromString(ctx.Param("menuId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req PriceRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if req.Price == nil {
		return errorJSON(ctx, errs.NewValueIsRequiredError("price"))
	}

	cmd, err := commands.NewChangeMenuPriceCommand(menuID, *req.Price)
	if err != nil {
		return errorJSON(ctx, err)
	}

	repriced, err := s.changeMenuPriceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, menuToResponse(repriced))
}

// DisplayMenu handles PUT /api/v1/menus/:menuId/display.
func (s *Server) DisplayMenu(ctx echo.Context) error {
	menuID, err := kernel.UUIDFromString(ctx.Param("menuId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewDisplayMenuCommand(menuID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	displayed, err := s.displayMenuHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, menuToResponse(displayed))
}

// HideMenu handles PUT /api/v1/menus/:menuId/hide.
func (s *Server) HideMenu(ctx echo.Context) error {
	menuID, err := kernel.UUIDFromString(ctx.Param("menuId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewHideMenuCommand(menuID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	hidden, err := s.hideMenuHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, menuToResponse(hidden))
}

// GetMenus handles GET /api/v1/menus.
func (s *Server) GetMenus(ctx echo.Context) error {
	menus, err := s.getMenusHandler.Handle(ctx.Request().Context(), queries.NewGetMenusQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]MenuResponse, 0, len(menus))
	for _, m := range menus {
		response = append(response, menuQueryToResponse(m))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrderTable handles POST /api/v1/order-tables.
func (s *Server) CreateOrderTable(ctx echo.Context) error {
	var req OrderTableRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderTableCommand(req.Name)
	if err != nil {
		return errorJSON(ctx, err)
	}

	created, err := s.createOrderTableHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, tableToResponse(created))
}

// SitOrderTable handles PUT /api/v1/order-tables/:orderTableId/sit.
func (s *Server) SitOrderTable(ctx echo.Context) error {
	tableID, err := kernel.UUIDFromString(ctx.Param("orderTableId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewSitOrderTableCommand(tableID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	seated, err := s.sitOrderTableHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tableToResponse(seated))
}

// ClearOrderTable handles PUT /api/v1/order-tables/:orderTableId/clear.
func (s *Server) ClearOrderTable(ctx echo.Context) error {
	tableID, err := kernel.UUIDFromString(ctx.Param("orderTableId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewClearOrderTableCommand(tableID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cleared, err := s.clearOrderTableHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tableToResponse(cleared))
}

// ChangeNumberOfGuests handles PUT /api/v1/order-tables/:orderTableId/number-of-guests.
func (s *Server) ChangeNumberOfGuests(ctx echo.Context) error {
	tableID, err := kernel.UUIDFromString(ctx.Param("orderTableId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req GuestsRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewChangeNumberOfGuestsCommand(tableID, req.NumberOfGuests)
	if err != nil {
		return errorJSON(ctx, err)
	}

	changed, err := s.changeNumberOfGuestsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tableToResponse(changed))
}

// GetOrderTables handles GET /api/v1/order-tables.
func (s *Server) GetOrderTables(ctx echo.Context) error {
	tables, err := s.getOrderTablesHandler.Handle(ctx.Request().Context(), queries.NewGetOrderTablesQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]OrderTableResponse, 0, len(tables))
	for _, t := range tables {
		response = append(response, OrderTableResponse{
			ID:             t.ID.Bytes(),
			Name:           t.Name,
			NumberOfGuests: t.NumberOfGuests,
			Occupied:       t.Occupied,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req OrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderType, err := order.TypeFromString(req.Type)
	if err != nil {
		return errorJSON(ctx, err)
	}

	lineItems := make([]order.LineItem, 0, len(req.LineItems))
	for _, itemReq := range req.LineItems {
		menuID, idErr := kernel.UUIDFromBytes(itemReq.MenuID[:])
		if idErr != nil {
			return errorJSON(ctx, idErr)
		}

		if itemReq.Price == nil {
			return errorJSON(ctx, errs.NewValueIsRequiredError("price"))
		}

		price, priceErr := kernel.NewMoney(*itemReq.Price)
		if priceErr != nil {
			return errorJSON(ctx, priceErr)
		}

		item, itemErr := order.NewLineItem(menuID, itemReq.Quantity, price)
		if itemErr != nil {
			return errorJSON(ctx, itemErr)
		}
		lineItems = append(lineItems, item)
	}

	var tableID *kernel.UUID
	if req.OrderTableID != nil {
		tID, idErr := kernel.UUIDFromBytes((*req.OrderTableID)[:])
		if idErr != nil {
			return errorJSON(ctx, idErr)
		}
		tableID = &tID
	}

	cmd, err := commands.NewCreateOrderCommand(orderType, lineItems, req.DeliveryAddress, tableID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// AcceptOrder handles PUT /api/v1/orders/:orderId/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	accepted, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(accepted))
}

// ServeOrder handles PUT /api/v1/orders/:orderId/serve.
func (s *Server) ServeOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewServeOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	served, err := s.serveOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(served))
}

// StartOrderDelivery handles PUT /api/v1/orders/:orderId/start-delivery.
func (s *Server) StartOrderDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewStartOrderDeliveryCommand(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	delivering, err := s.startOrderDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(delivering))
}

// CompleteOrderDelivery handles PUT /api/v1/orders/:orderId/complete-delivery.
func (s *Server) CompleteOrderDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderDeliveryCommand(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	delivered, err := s.completeOrderDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(delivered))
}

// CompleteOrder handles PUT /api/v1/orders/:orderId/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	completed, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(completed))
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderQueryToResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}
