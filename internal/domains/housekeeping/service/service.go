package service

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	auditService "frontdesk/internal/domains/audit/service"
	"frontdesk/internal/domains/housekeeping/model"
	"frontdesk/internal/domains/housekeeping/model/dto"
	"frontdesk/internal/domains/housekeeping/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepository "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllTask = "housekeeping:get_all"
	cacheCountTask  = "housekeeping:count"
)

type Housekeeping interface {
	Create(ctx context.Context, req dto.CreateHousekeepingTaskRequest) (dto.HousekeepingTaskResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHousekeepingTasksResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Complete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Housekeeping
	roomRepo roomRepository.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	audit    auditService.Audit
}

func New(repo repository.Housekeeping, roomRepo roomRepository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, audit auditService.Audit) Housekeeping {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		audit:    audit,
	}
}

// Create opens a housekeeping task and moves the room out of circulation:
// Cleaning tasks put the room in Cleaning, anything else in Maintenance. An
// Occupied room keeps its status until checkout.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHousekeepingTaskRequest) (res dto.HousekeepingTaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateHousekeepingTask")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	room, err := s.roomRepo.Get(ctx, s.roomFilter(req.RoomNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room for housekeeping task")

		return res, fmt.Errorf("failed to get room for housekeeping task: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found")
	}

	task := req.ToModel(user)
	if err = s.repo.Insert(ctx, task); err != nil {
		log.Error().Err(err).Msg("failed to create housekeeping task")

		return res, fmt.Errorf("failed to create housekeeping task: %w", err)
	}

	if room.Status != roomModel.StatusOccupied {
		roomStatus := roomModel.StatusMaintenance
		if task.TaskType == model.TaskTypeCleaning {
			roomStatus = roomModel.StatusCleaning
		}

		updatedFields := shared.TransformFields(struct {
			Status string `db:"status"`
		}{Status: roomStatus}, user)

		if err = s.roomRepo.Update(ctx, updatedFields, s.roomFilter(req.RoomNumber)); err != nil {
			log.Error().Err(err).Msg("failed to update room status for housekeeping")

			return res, fmt.Errorf("failed to update room status for housekeeping: %w", err)
		}
	}

	s.audit.Record(ctx, "create", model.EntityName, task.ID, task)

	s.invalidate(ctx)

	res.FromModel(task)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHousekeepingTasksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllHousekeepingTask")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTask, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for housekeeping tasks")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	tasks, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping tasks")

		return res, fmt.Errorf("failed to get housekeeping tasks: %w", err)
	}

	res.FromModels(tasks, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save housekeeping tasks to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountHousekeepingTask")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTask, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for housekeeping task count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count housekeeping tasks")

		return 0, fmt.Errorf("failed to count housekeeping tasks: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save housekeeping task count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Complete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CompleteHousekeepingTask")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	task, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping task")

		return fmt.Errorf("failed to get housekeeping task: %w", err)
	}

	if task.ID == constant.Empty {
		return failure.NotFound("housekeeping task not found")
	}

	if task.Status == model.StatusCompleted {
		return failure.Conflict("housekeeping task already completed")
	}

	updatedFields := shared.TransformFields(struct {
		Status string `db:"status"`
	}{Status: model.StatusCompleted}, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to complete housekeeping task")

		return fmt.Errorf("failed to complete housekeeping task: %w", err)
	}

	s.audit.Record(ctx, "complete", model.EntityName, id, nil)

	s.invalidate(ctx)

	return nil
}

// Approve signs off a completed task. Approving the last open task of a room
// puts the room back in Available, unless a guest is still in it.
func (s *serviceImpl) Approve(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApproveHousekeepingTask")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	task, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping task")

		return fmt.Errorf("failed to get housekeeping task: %w", err)
	}

	if task.ID == constant.Empty {
		return failure.NotFound("housekeeping task not found")
	}

	if task.Status != model.StatusCompleted {
		return failure.Conflict("housekeeping task is not completed")
	}

	if task.Approved {
		return failure.Conflict("housekeeping task already approved")
	}

	updatedFields := shared.TransformFields(struct {
		Approved bool `db:"approved"`
	}{Approved: true}, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to approve housekeeping task")

		return fmt.Errorf("failed to approve housekeeping task: %w", err)
	}

	remaining, err := s.repo.Exist(ctx, s.openTaskFilter(task.RoomNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to check remaining housekeeping tasks")

		return fmt.Errorf("failed to check remaining housekeeping tasks: %w", err)
	}

	if !remaining {
		room, err := s.roomRepo.Get(ctx, s.roomFilter(task.RoomNumber))
		if err != nil {
			log.Error().Err(err).Msg("failed to get room after housekeeping approval")

			return fmt.Errorf("failed to get room after housekeeping approval: %w", err)
		}

		if room.ID != constant.Empty && room.Status != roomModel.StatusOccupied {
			roomFields := shared.TransformFields(struct {
				Status string `db:"status"`
			}{Status: roomModel.StatusAvailable}, user)

			if err = s.roomRepo.Update(ctx, roomFields, s.roomFilter(task.RoomNumber)); err != nil {
				log.Error().Err(err).Msg("failed to release room after housekeeping approval")

				return fmt.Errorf("failed to release room after housekeeping approval: %w", err)
			}
		}
	}

	s.audit.Record(ctx, "approve", model.EntityName, id, nil)

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) roomFilter(roomNumber string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldRoomNumber,
				Value:    roomNumber,
				Operator: gDto.FilterOperatorEq,
				Table:    roomModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) openTaskFilter(roomNumber string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomNumber,
				Value:    roomNumber,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "approved",
				Field:    model.FieldApproved,
				Value:    false,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTask)
		shared.InvalidateCaches(c, s.cache, cacheCountTask)
	}()
}
