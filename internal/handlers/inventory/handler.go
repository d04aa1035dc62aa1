package inventory

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/inventory/model"
	"frontdesk/internal/domains/inventory/model/dto"
	"frontdesk/internal/domains/inventory/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Inventory
	otel    otel.Otel
}

func New(service service.Inventory, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inventory", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateItem)
		routerGroup.Get("/", handler.GetItems)
		routerGroup.Patch("/{id}", handler.UpdateItem)
		routerGroup.Patch("/{id}/stock", handler.AdjustStock)
	})
}

// CreateItem registers a new inventory item.
// @Summary Create an inventory item
// @Description Register a new stock item with its unit and reorder level.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.CreateInventoryItemRequest true "Item details"
// @Success 201 {object} response.Data[dto.InventoryItemResponse] "Item created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory [post]
// @Security BearerAuth
func (handler *Handler) CreateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	req := dto.CreateInventoryItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	item, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create inventory item")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Inventory item created successfully")

	response.WithJSON(writer, http.StatusCreated, item)
}

// GetItems retrieves inventory items based on query parameters.
// @Summary Get all inventory items
// @Description Retrieve all inventory items with optional filtering and pagination.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Data[dto.GetInventoryItemsResponse] "List of inventory items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory [get]
// @Security BearerAuth
func (handler *Handler) GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filters := []any{}

	// Only add filters if the values are non-empty
	if category := r.URL.Query().Get(model.FieldCategory); category != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	if name := r.URL.Query().Get(model.FieldName); name != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    constant.Asterix + name + constant.Asterix,
			Table:    model.TableName,
		})
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}

	items, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inventory items")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory items retrieved successfully")

	response.WithJSON(w, http.StatusOK, items)
}

// UpdateItem updates an inventory item by its ID.
// @Summary Update an inventory item
// @Description Update the details of an inventory item.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body dto.UpdateInventoryItemRequest true "Item details"
// @Success 200 {object} response.Message "Item updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateInventoryItemRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update inventory item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory item updated successfully")

	response.WithMessage(w, http.StatusOK, "Item updated successfully")
}

// AdjustStock applies a signed stock delta to an inventory item.
// @Summary Adjust inventory stock
// @Description Apply a positive or negative stock delta. Quantity never drops below zero.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body dto.AdjustStockRequest true "Stock delta"
// @Success 200 {object} response.Data[dto.InventoryItemResponse] "Stock adjusted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/{id}/stock [patch]
// @Security BearerAuth
func (handler *Handler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdjustStock")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AdjustStockRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	item, err := handler.service.AdjustStock(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to adjust inventory stock")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory stock adjusted successfully")

	response.WithJSON(w, http.StatusOK, item)
}
