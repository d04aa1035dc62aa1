package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/otel"
	auditService "frontdesk/internal/domains/audit/service"
	"frontdesk/internal/domains/inventory/model"
	"frontdesk/internal/domains/inventory/model/dto"
	"frontdesk/internal/domains/inventory/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

const (
	cacheGetAllInventory = "inventory:get_all"
	cacheCountInventory  = "inventory:count"
)

type Inventory interface {
	Create(ctx context.Context, req dto.CreateInventoryItemRequest) (dto.InventoryItemResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInventoryItemsResponse, error)
	Update(ctx context.Context, req dto.UpdateInventoryItemRequest, id string) error
	AdjustStock(ctx context.Context, req dto.AdjustStockRequest, id string) (dto.InventoryItemResponse, error)
}

type serviceImpl struct {
	repo  repository.Inventory
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	audit auditService.Audit
}

func New(repo repository.Inventory, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, audit auditService.Audit) Inventory {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		audit: audit,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateInventoryItemRequest) (res dto.InventoryItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateInventoryItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	nameFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Value:    req.Name,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	exist, err := s.repo.Exist(ctx, nameFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check inventory item uniqueness")

		return res, fmt.Errorf("failed to check inventory item uniqueness: %w", err)
	}

	if exist {
		return res, failure.Conflict("inventory item already exists")
	}

	item := req.ToModel(user)
	if err = s.repo.Insert(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to create inventory item")

		return res, fmt.Errorf("failed to create inventory item: %w", err)
	}

	s.audit.Record(ctx, "create", model.EntityName, item.ID, item)

	s.invalidate(ctx)

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInventoryItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllInventoryItems")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllInventory, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inventory items")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inventory items")

		return res, fmt.Errorf("failed to count inventory items: %w", err)
	}

	items, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventory items")

		return res, fmt.Errorf("failed to get inventory items: %w", err)
	}

	res.FromModels(items, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inventory items to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateInventoryItemRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateInventoryItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateInventoryItemRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check inventory item existence")

		return fmt.Errorf("failed to check inventory item existence: %w", err)
	}

	if !exist {
		return failure.NotFound("inventory item not found")
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update inventory item")

		return fmt.Errorf("failed to update inventory item: %w", err)
	}

	s.audit.Record(ctx, "update", model.EntityName, id, updatedFields)

	s.invalidate(ctx)

	return nil
}

// AdjustStock applies a signed delta to the current quantity, flooring at
// zero so stock can never go negative.
func (s *serviceImpl) AdjustStock(ctx context.Context, req dto.AdjustStockRequest, id string) (res dto.InventoryItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdjustInventoryStock")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	item, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventory item")

		return res, fmt.Errorf("failed to get inventory item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("inventory item not found")
	}

	quantity := item.Quantity + req.Delta
	if quantity < 0 {
		quantity = 0
	}

	updatedFields := map[string]any{
		model.FieldQuantity:      quantity,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to adjust inventory stock")

		return res, fmt.Errorf("failed to adjust inventory stock: %w", err)
	}

	s.audit.Record(ctx, "stock_adjust", model.EntityName, id, map[string]int{
		"delta":    req.Delta,
		"quantity": quantity,
	})

	s.invalidate(ctx)

	item.Quantity = quantity
	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllInventory)
		shared.InvalidateCaches(c, s.cache, cacheCountInventory)
	}()
}
