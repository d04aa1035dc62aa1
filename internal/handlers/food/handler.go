package food

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/food/model"
	"frontdesk/internal/domains/food/model/dto"
	"frontdesk/internal/domains/food/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Food
	otel    otel.Otel
}

func New(service service.Food, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/menu", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMenuItem)
		routerGroup.Get("/", handler.GetMenuItems)
		routerGroup.Patch("/{id}", handler.UpdateMenuItem)
		routerGroup.Delete("/{id}", handler.DeleteMenuItem)
	})

	router.Route("/orders", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateOrder)
		routerGroup.Get("/", handler.GetOrders)
		routerGroup.Patch("/{id}/status", handler.UpdateOrderStatus)
	})
}

// CreateMenuItem adds an item to the food menu.
// @Summary Create a menu item
// @Description Add a new item to the food menu.
// @Tags Food
// @Accept json
// @Produce json
// @Param request body dto.CreateMenuItemRequest true "Menu item details"
// @Success 201 {object} response.Data[dto.MenuItemResponse] "Menu item created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu [post]
// @Security BearerAuth
func (handler *Handler) CreateMenuItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMenuItem")
	defer scope.End()

	req := dto.CreateMenuItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	item, err := handler.service.CreateMenuItem(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create menu item")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Menu item created successfully")

	response.WithJSON(writer, http.StatusCreated, item)
}

// GetMenuItems retrieves menu items based on query parameters.
// @Summary Get all menu items
// @Description Retrieve all menu items with optional filtering and pagination.
// @Tags Food
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category query string false "Filter by category"
// @Param available query string false "Filter by availability"
// @Success 200 {object} response.Data[dto.GetMenuItemsResponse] "List of menu items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu [get]
// @Security BearerAuth
func (handler *Handler) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuItems")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Only add filters if the values are non-empty
	if category := r.URL.Query().Get(model.FieldCategory); category != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.MenuTableName,
		})
	}

	if available := r.URL.Query().Get(model.FieldAvailable); available != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAvailable,
			Operator: gDto.FilterOperatorEq,
			Value:    available,
			Table:    model.MenuTableName,
		})
	}

	items, err := handler.service.GetAllMenuItems(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu items")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu items retrieved successfully")

	response.WithJSON(w, http.StatusOK, items)
}

// UpdateMenuItem updates a menu item by its ID.
// @Summary Update a menu item
// @Description Update the details or availability of a menu item.
// @Tags Food
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param request body dto.UpdateMenuItemRequest true "Menu item details"
// @Success 200 {object} response.Message "Menu item updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMenuItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMenuItemRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateMenuItem(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update menu item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu item updated successfully")

	response.WithMessage(w, http.StatusOK, "Menu item updated successfully")
}

// DeleteMenuItem deletes a menu item by its ID.
// @Summary Delete a menu item
// @Description Remove a menu item from the menu.
// @Tags Food
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} response.Message "Menu item deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMenuItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteMenuItem(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete menu item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu item deleted successfully")

	response.WithMessage(w, http.StatusOK, "Menu item deleted successfully")
}

// CreateOrder places a food order for a guest or room.
// @Summary Create a food order
// @Description Place a food order for an available menu item. Amounts are priced at order time.
// @Tags Food
// @Accept json
// @Produce json
// @Param request body dto.CreateFoodOrderRequest true "Order details"
// @Success 201 {object} response.Data[dto.FoodOrderResponse] "Food order created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders [post]
// @Security BearerAuth
func (handler *Handler) CreateOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrder")
	defer scope.End()

	req := dto.CreateFoodOrderRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	order, err := handler.service.CreateOrder(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create food order")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Food order created successfully")

	response.WithJSON(writer, http.StatusCreated, order)
}

// GetOrders retrieves food orders based on query parameters.
// @Summary Get all food orders
// @Description Retrieve all food orders with optional filtering and pagination.
// @Tags Food
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_number query string false "Filter by room number"
// @Param status query string false "Filter by status"
// @Param customer_name query string false "Filter by customer name"
// @Success 200 {object} response.Data[dto.GetFoodOrdersResponse] "List of food orders"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders [get]
// @Security BearerAuth
func (handler *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filters := []any{}

	// Only add filters if the values are non-empty
	if roomNumber := r.URL.Query().Get(model.FieldRoomNumber); roomNumber != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldRoomNumber,
			Operator: gDto.FilterOperatorEq,
			Value:    roomNumber,
			Table:    model.OrderTableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.OrderTableName,
		})
	}

	if customerName := r.URL.Query().Get(model.FieldCustomerName); customerName != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldCustomerName,
			Operator: gDto.FilterOperatorLike,
			Value:    constant.Asterix + customerName + constant.Asterix,
			Table:    model.OrderTableName,
		})
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}

	orders, err := handler.service.GetAllOrders(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get food orders")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Food orders retrieved successfully")

	response.WithJSON(w, http.StatusOK, orders)
}

// UpdateOrderStatus moves a food order through its lifecycle.
// @Summary Update food order status
// @Description Advance a food order's status. Invoiced orders can no longer change.
// @Tags Food
// @Accept json
// @Produce json
// @Param id path string true "Food order ID"
// @Param request body dto.UpdateFoodOrderStatusRequest true "Order status"
// @Success 200 {object} response.Message "Food order status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOrderStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateFoodOrderStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateOrderStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update food order status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Food order status updated successfully")

	response.WithMessage(w, http.StatusOK, "Food order status updated successfully")
}
