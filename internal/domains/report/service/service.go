package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/otel"
	billRepository "frontdesk/internal/domains/bill/repository"
	"frontdesk/internal/domains/report/model/dto"
	roomRepository "frontdesk/internal/domains/room/repository"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

type Report interface {
	Occupancy(ctx context.Context) (dto.OccupancyResponse, error)
	Revenue(ctx context.Context, from, to string) (dto.RevenueResponse, error)
}

type serviceImpl struct {
	roomRepo roomRepository.Room
	billRepo billRepository.Bill
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(roomRepo roomRepository.Room, billRepo billRepository.Bill, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Report {
	return &serviceImpl{
		roomRepo: roomRepo,
		billRepo: billRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Occupancy(ctx context.Context) (res dto.OccupancyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OccupancyReport")
	defer scope.End()
	defer scope.TraceIfError(err)

	counts, err := s.roomRepo.CountByStatus(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to build occupancy report")

		return res, fmt.Errorf("failed to build occupancy report: %w", err)
	}

	res.FromCounts(counts)

	return res, nil
}

// Revenue aggregates settled bills between two date-only bounds, inclusive.
// The upper bound is extended to the end of its day.
func (s *serviceImpl) Revenue(ctx context.Context, from, to string) (res dto.RevenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RevenueReport")
	defer scope.End()
	defer scope.TraceIfError(err)

	fromDate, err := timezone.Parse(constant.DateOnlyFormat, from)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date range")
	}

	toDate, err := timezone.Parse(constant.DateOnlyFormat, to)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date range")
	}

	if toDate.Before(fromDate) {
		return res, failure.BadRequestFromString("invalid date range")
	}

	revenue, err := s.billRepo.RevenueBetween(ctx, fromDate, toDate.Add(24*time.Hour-time.Nanosecond))
	if err != nil {
		log.Error().Err(err).Msg("failed to build revenue report")

		return res, fmt.Errorf("failed to build revenue report: %w", err)
	}

	res.FromModel(revenue, fromDate, toDate)

	return res, nil
}
