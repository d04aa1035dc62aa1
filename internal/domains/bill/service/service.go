package service

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/otel"
	auditService "frontdesk/internal/domains/audit/service"
	"frontdesk/internal/domains/bill/model"
	"frontdesk/internal/domains/bill/model/dto"
	"frontdesk/internal/domains/bill/repository"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	foodRepository "frontdesk/internal/domains/food/repository"
	roomRepository "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
)

const (
	cacheGetBill    = "bill:get"
	cacheGetAllBill = "bill:get_all"
	cacheCountBill  = "bill:count"
)

type TxRunner interface {
	WithSerializableTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type Bill interface {
	Generate(ctx context.Context, bookingID string, req dto.GenerateBillRequest) (dto.BillResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBillsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BillResponse, error)
	UpdatePayment(ctx context.Context, req dto.UpdateBillPaymentRequest, id string) error
}

type serviceImpl struct {
	repo        repository.Bill
	itemRepo    repository.Item
	bookingRepo bookingRepository.Booking
	orderRepo   foodRepository.Order
	roomRepo    roomRepository.Room
	tx          TxRunner
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	audit       auditService.Audit
}

func New(repo repository.Bill, itemRepo repository.Item, bookingRepo bookingRepository.Booking, orderRepo foodRepository.Order, roomRepo roomRepository.Room, tx TxRunner, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, audit auditService.Audit) Bill {
	return &serviceImpl{
		repo:        repo,
		itemRepo:    itemRepo,
		bookingRepo: bookingRepo,
		orderRepo:   orderRepo,
		roomRepo:    roomRepo,
		tx:          tx,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		audit:       audit,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBillsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBill")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBill, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bills")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	bills, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bills")

		return res, fmt.Errorf("failed to get bills: %w", err)
	}

	res.FromModels(bills, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bills to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountBill")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBill, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bill count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bills")

		return 0, fmt.Errorf("failed to count bills: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bill count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBill")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBill, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bill")

		return res, nil
	}

	bill, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bill")

		return res, fmt.Errorf("failed to get bill: %w", err)
	}

	if bill.ID == constant.Empty {
		return res, failure.NotFound("bill not found")
	}

	itemFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBillID,
				Value:    bill.ID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ItemTableName,
			},
		},
	}

	items, err := s.itemRepo.GetAll(ctx, gDto.QueryParams{}, itemFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bill items")

		return res, fmt.Errorf("failed to get bill items: %w", err)
	}

	res.FromModel(bill, items)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bill to cache")
		}
	}()

	return res, nil
}

// UpdatePayment moves the bill's payment status; marking a bill Paid cascades
// to the linked booking so front-office and billing agree on settlement.
func (s *serviceImpl) UpdatePayment(ctx context.Context, req dto.UpdateBillPaymentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBillPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	bill, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bill")

		return fmt.Errorf("failed to get bill: %w", err)
	}

	if bill.ID == constant.Empty {
		return failure.NotFound("bill not found")
	}

	updatedFields := shared.TransformFields(struct {
		PaymentStatus string `db:"payment_status"`
	}{PaymentStatus: req.PaymentStatus}, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update bill payment status")

		return fmt.Errorf("failed to update bill payment status: %w", err)
	}

	if req.PaymentStatus == model.PaymentStatusPaid && bill.BookingID != constant.Empty {
		bookingFields := shared.TransformFields(struct {
			PaymentStatus string `db:"payment_status"`
		}{PaymentStatus: bookingModel.PaymentStatusPaid}, user)

		bookingFilter := shared.FilterByID(bill.BookingID, bookingModel.FieldID, bookingModel.TableName)
		if err = s.bookingRepo.Update(ctx, bookingFields, bookingFilter); err != nil {
			log.Error().Err(err).Msg("failed to cascade payment status to booking")

			return fmt.Errorf("failed to cascade payment status to booking: %w", err)
		}
	}

	s.audit.Record(ctx, "payment_update", model.EntityName, id, map[string]string{
		"from": bill.PaymentStatus,
		"to":   req.PaymentStatus,
	})

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBill, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete bill cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBill)
		shared.InvalidateCaches(c, s.cache, cacheCountBill)
	}()
}
