package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/otel"
	auditService "frontdesk/internal/domains/audit/service"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/pricing"
	"frontdesk/internal/domains/booking/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepository "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:get_all"
	cacheCountBooking  = "booking:count"
)

type TxRunner interface {
	WithSerializableTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
	Checkout(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepository.Room
	tx       TxRunner
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	audit    auditService.Audit
}

func New(repo repository.Booking, roomRepo roomRepository.Room, tx TxRunner, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, audit auditService.Audit) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		tx:       tx,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		audit:    audit,
	}
}

// Create validates the stay against the room and guest overlap invariants and
// persists the booking. Validation and insert run in one serializable
// transaction so two concurrent requests for the same room cannot both pass
// the check; the exclusion constraint on bookings is the backstop.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return res, err
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room for booking")

		return res, fmt.Errorf("failed to get room for booking: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found")
	}

	booking := req.ToModel(user, room.RoomNumber, checkIn, checkOut)

	quote := pricing.Calculate(room.Rate, checkIn, checkOut, req.GstPercent)
	booking.BaseAmount = quote.BaseAmount
	booking.GstRate = quote.GstRate
	booking.GstAmount = quote.GstAmount
	booking.TotalAmount = quote.TotalAmount

	err = s.tx.WithSerializableTransaction(ctx, func(tx *sqlx.Tx) error {
		roomConflict, err := s.repo.ExistTx(ctx, tx, overlapFilter(booking))
		if err != nil {
			log.Error().Err(err).Msg("failed to check room overlap")

			return fmt.Errorf("failed to check room overlap: %w", err)
		}

		if roomConflict {
			return failure.Conflict("room already booked for the requested dates")
		}

		guestConflict, err := s.repo.ExistTx(ctx, tx, guestOverlapFilter(booking))
		if err != nil {
			log.Error().Err(err).Msg("failed to check guest overlap")

			return fmt.Errorf("failed to check guest overlap: %w", err)
		}

		if guestConflict {
			return failure.Conflict("guest already has a booking for the requested dates")
		}

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			log.Error().Err(err).Msg("failed to create booking")

			return fmt.Errorf("failed to create booking: %w", err)
		}

		roomFields := shared.TransformFields(struct {
			Status string `db:"status"`
		}{Status: roomModel.StatusOccupied}, user)

		if err := s.roomRepo.UpdateTx(ctx, tx, roomFields, shared.FilterByID(room.ID, roomModel.FieldID, roomModel.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to occupy room")

			return fmt.Errorf("failed to occupy room: %w", err)
		}

		return nil
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
			return res, failure.Conflict("room already booked for the requested dates")
		}

		return res, err
	}

	s.audit.Record(ctx, "create", model.EntityName, booking.ID, booking)

	s.invalidate(ctx, booking.ID)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	bookings, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found")
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Cancel is terminal: the booking leaves circulation and the room goes back
// to Available.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, "cancel", map[string]string{
		model.FieldBookingStatus: model.StatusCancelled,
	}, roomModel.StatusAvailable)
}

// Checkout completes the stay: booking Completed, payment Paid, room handed
// to housekeeping as Cleaning.
func (s *serviceImpl) Checkout(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckoutBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, "checkout", map[string]string{
		model.FieldBookingStatus: model.StatusCompleted,
		model.FieldPaymentStatus: model.PaymentStatusPaid,
	}, roomModel.StatusCleaning)
}

func (s *serviceImpl) transition(ctx context.Context, id, action string, bookingFields map[string]string, roomStatus string) error {
	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found")
	}

	if booking.BookingStatus != model.StatusActive {
		return failure.Conflict(fmt.Sprintf("booking is already %s", booking.BookingStatus))
	}

	now := timezone.Now()
	updatedFields := map[string]any{
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}
	for field, value := range bookingFields {
		updatedFields[field] = value
	}

	err = s.tx.WithSerializableTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to update booking status")

			return fmt.Errorf("failed to update booking status: %w", err)
		}

		roomFields := shared.TransformFields(struct {
			Status string `db:"status"`
		}{Status: roomStatus}, user)

		roomFilter := shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName)
		if err := s.roomRepo.UpdateTx(ctx, tx, roomFields, roomFilter); err != nil {
			log.Error().Err(err).Msg("failed to update room status")

			return fmt.Errorf("failed to update room status: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(ctx, action, model.EntityName, id, bookingFields)

	s.invalidate(ctx, id)

	return nil
}

// overlapFilter matches non-Cancelled bookings on the same room whose
// half-open [check_in, check_out) interval intersects the candidate's.
// Touching stays, where one checkout equals another checkin, pass.
func overlapFilter(booking model.Booking) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: append([]any{
			gDto.Filter{
				Field:    model.FieldRoomNumber,
				Value:    booking.RoomNumber,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		}, intervalFilters(booking)...),
	}
}

// guestOverlapFilter applies the same interval test to any booking held by
// the same guest, matched by phone or aadhar.
func guestOverlapFilter(booking model.Booking) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: append([]any{
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						Field:    model.FieldPhoneNumber,
						Value:    booking.PhoneNumber,
						Operator: gDto.FilterOperatorEq,
						Table:    model.TableName,
					},
					gDto.Filter{
						Field:    model.FieldAadharNumber,
						Value:    booking.AadharNumber,
						Operator: gDto.FilterOperatorEq,
						Table:    model.TableName,
					},
				},
			},
		}, intervalFilters(booking)...),
	}
}

func intervalFilters(booking model.Booking) []any {
	return []any{
		gDto.Filter{
			Field:    model.FieldBookingStatus,
			Value:    model.StatusCancelled,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "new_check_out",
			Field:    model.FieldCheckIn,
			Value:    booking.CheckOut,
			Operator: gDto.FilterOperatorLess,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "new_check_in",
			Field:    model.FieldCheckOut,
			Value:    booking.CheckIn,
			Operator: gDto.FilterOperatorGreater,
			Table:    model.TableName,
		},
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
