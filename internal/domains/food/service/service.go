package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/otel"
	auditService "frontdesk/internal/domains/audit/service"
	"frontdesk/internal/domains/food/model"
	"frontdesk/internal/domains/food/model/dto"
	"frontdesk/internal/domains/food/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
)

const (
	cacheGetAllMenu  = "food:menu:get_all"
	cacheCountMenu   = "food:menu:count"
	cacheGetAllOrder = "food:order:get_all"
	cacheCountOrder  = "food:order:count"
)

// orderTransitions lists the allowed next statuses of a food order. An order
// carrying an invoice number is frozen regardless.
var orderTransitions = map[string][]string{
	model.OrderStatusPending:   {model.OrderStatusPreparing, model.OrderStatusReady, model.OrderStatusCancelled},
	model.OrderStatusPreparing: {model.OrderStatusReady, model.OrderStatusCancelled},
	model.OrderStatusReady:     {model.OrderStatusServed, model.OrderStatusCancelled},
	model.OrderStatusServed:    {},
	model.OrderStatusCancelled: {},
}

type Food interface {
	CreateMenuItem(ctx context.Context, req dto.CreateMenuItemRequest) (dto.MenuItemResponse, error)
	GetAllMenuItems(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMenuItemsResponse, error)
	UpdateMenuItem(ctx context.Context, req dto.UpdateMenuItemRequest, id string) error
	DeleteMenuItem(ctx context.Context, id string) error
	CreateOrder(ctx context.Context, req dto.CreateFoodOrderRequest) (dto.FoodOrderResponse, error)
	GetAllOrders(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFoodOrdersResponse, error)
	UpdateOrderStatus(ctx context.Context, req dto.UpdateFoodOrderStatusRequest, id string) error
}

type serviceImpl struct {
	menuRepo  repository.Menu
	orderRepo repository.Order
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	audit     auditService.Audit
}

func New(menuRepo repository.Menu, orderRepo repository.Order, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, audit auditService.Audit) Food {
	return &serviceImpl{
		menuRepo:  menuRepo,
		orderRepo: orderRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		audit:     audit,
	}
}

func (s *serviceImpl) CreateMenuItem(ctx context.Context, req dto.CreateMenuItemRequest) (res dto.MenuItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateMenuItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	nameFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Value:    req.Name,
				Operator: gDto.FilterOperatorEq,
				Table:    model.MenuTableName,
			},
		},
	}

	exist, err := s.menuRepo.Exist(ctx, nameFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check menu item uniqueness")

		return res, fmt.Errorf("failed to check menu item uniqueness: %w", err)
	}

	if exist {
		return res, failure.Conflict("menu item already exists")
	}

	item := req.ToModel(user)
	if err = s.menuRepo.Insert(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to create menu item")

		return res, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.audit.Record(ctx, "create", model.MenuEntityName, item.ID, item)

	s.invalidateMenu(ctx)

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) GetAllMenuItems(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMenuItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllMenuItems")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMenu, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for menu items")

		return res, nil
	}

	total, err := s.menuRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count menu items")

		return res, fmt.Errorf("failed to count menu items: %w", err)
	}

	items, err := s.menuRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu items")

		return res, fmt.Errorf("failed to get menu items: %w", err)
	}

	res.FromModels(items, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save menu items to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateMenuItem(ctx context.Context, req dto.UpdateMenuItemRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateMenuItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateMenuItemRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.MenuTableName)

	exist, err := s.menuRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check menu item existence")

		return fmt.Errorf("failed to check menu item existence: %w", err)
	}

	if !exist {
		return failure.NotFound("menu item not found")
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.menuRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update menu item")

		return fmt.Errorf("failed to update menu item: %w", err)
	}

	s.audit.Record(ctx, "update", model.MenuEntityName, id, updatedFields)

	s.invalidateMenu(ctx)

	return nil
}

func (s *serviceImpl) DeleteMenuItem(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteMenuItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.MenuTableName)

	exist, err := s.menuRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check menu item existence")

		return fmt.Errorf("failed to check menu item existence: %w", err)
	}

	if !exist {
		return failure.NotFound("menu item not found")
	}

	if err = s.menuRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete menu item")

		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	s.audit.Record(ctx, "delete", model.MenuEntityName, id, nil)

	s.invalidateMenu(ctx)

	return nil
}

func (s *serviceImpl) CreateOrder(ctx context.Context, req dto.CreateFoodOrderRequest) (res dto.FoodOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateFoodOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	item, err := s.menuRepo.Get(ctx, shared.FilterByID(req.ItemID, model.FieldID, model.MenuTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu item for order")

		return res, fmt.Errorf("failed to get menu item for order: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("menu item not found")
	}

	if !item.Available {
		return res, failure.Conflict("menu item is not available")
	}

	order := req.ToModel(user, item)
	if err = s.orderRepo.Insert(ctx, order); err != nil {
		log.Error().Err(err).Msg("failed to create food order")

		return res, fmt.Errorf("failed to create food order: %w", err)
	}

	s.audit.Record(ctx, "create", model.OrderEntityName, order.ID, order)

	s.invalidateOrders(ctx)

	res.FromModel(order)

	return res, nil
}

func (s *serviceImpl) GetAllOrders(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFoodOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllFoodOrders")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllOrder, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for food orders")

		return res, nil
	}

	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count food orders")

		return res, fmt.Errorf("failed to count food orders: %w", err)
	}

	orders, err := s.orderRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get food orders")

		return res, fmt.Errorf("failed to get food orders: %w", err)
	}

	res.FromModels(orders, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save food orders to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateOrderStatus(ctx context.Context, req dto.UpdateFoodOrderStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateFoodOrderStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.OrderTableName)

	order, err := s.orderRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get food order")

		return fmt.Errorf("failed to get food order: %w", err)
	}

	if order.ID == constant.Empty {
		return failure.NotFound("food order not found")
	}

	if order.InvoiceNumber != nil {
		return failure.Conflict("food order already invoiced")
	}

	if !allowedTransition(order.Status, req.Status) {
		return failure.Conflict(fmt.Sprintf("cannot move food order from %s to %s", order.Status, req.Status))
	}

	updatedFields := shared.TransformFields(struct {
		Status string `db:"status"`
	}{Status: req.Status}, user)

	if err = s.orderRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update food order status")

		return fmt.Errorf("failed to update food order status: %w", err)
	}

	s.audit.Record(ctx, "status_change", model.OrderEntityName, id, map[string]string{
		"from": order.Status,
		"to":   req.Status,
	})

	s.invalidateOrders(ctx)

	return nil
}

func allowedTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

func (s *serviceImpl) invalidateMenu(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMenu)
		shared.InvalidateCaches(c, s.cache, cacheCountMenu)
	}()
}

func (s *serviceImpl) invalidateOrders(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllOrder)
		shared.InvalidateCaches(c, s.cache, cacheCountOrder)
	}()
}
