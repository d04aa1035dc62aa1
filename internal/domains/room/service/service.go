package service

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/infras/s3"
	auditService "frontdesk/internal/domains/audit/service"
	hkModel "frontdesk/internal/domains/housekeeping/model"
	hkRepository "frontdesk/internal/domains/housekeeping/repository"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:get_all"
	cacheCountRoom  = "room:count"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateRoomStatusRequest, id string) error
	UploadPhoto(ctx context.Context, req dto.UploadRoomPhotoRequest, id string) (dto.UploadRoomPhotoResponse, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type serviceImpl struct {
	repo   repository.Room
	hkRepo hkRepository.Housekeeping
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
	s3     s3.S3
	audit  auditService.Audit
}

func New(repo repository.Room, hkRepo hkRepository.Housekeeping, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3, audit auditService.Audit) Room {
	return &serviceImpl{
		repo:   repo,
		hkRepo: hkRepo,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
		s3:     s3,
		audit:  audit,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	numberFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomNumber,
				Value:    req.RoomNumber,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	exist, err := s.repo.Exist(ctx, numberFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room number uniqueness")

		return res, fmt.Errorf("failed to check room number uniqueness: %w", err)
	}

	if exist {
		return res, failure.Conflict("room number already registered")
	}

	room := req.ToModel(user)
	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	s.audit.Record(ctx, "create", model.EntityName, room.ID, room)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	rooms, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(rooms, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found")
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateRoomRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return fmt.Errorf("failed to check room existence: %w", err)
	}

	if !exist {
		log.Error().Msg("room not found")

		return failure.NotFound("room not found")
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	s.audit.Record(ctx, "update", model.EntityName, id, updatedFields)

	s.invalidate(ctx, id)

	return nil
}

// UpdateStatus applies the status transition rules: a room cannot go back to
// Available while it still has open unapproved housekeeping tasks, and cannot
// be marked Occupied while it is under Maintenance or Cleaning.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateRoomStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRoomStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	room, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound("room not found")
	}

	if req.Status == room.Status {
		return nil
	}

	if req.Status == model.StatusAvailable {
		open, err := s.hasOpenHousekeeping(ctx, room.RoomNumber)
		if err != nil {
			return err
		}

		if open {
			return failure.Conflict("room has unapproved housekeeping tasks")
		}
	}

	if req.Status == model.StatusOccupied &&
		(room.Status == model.StatusMaintenance || room.Status == model.StatusCleaning) {
		return failure.Conflict(fmt.Sprintf("room is under %s", room.Status))
	}

	updatedFields := shared.TransformFields(struct {
		Status string `db:"status"`
	}{Status: req.Status}, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room status")

		return fmt.Errorf("failed to update room status: %w", err)
	}

	s.audit.Record(ctx, "status_change", model.EntityName, id, map[string]string{
		"from": room.Status,
		"to":   req.Status,
	})

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) UploadPhoto(ctx context.Context, req dto.UploadRoomPhotoRequest, id string) (res dto.UploadRoomPhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadRoomPhoto")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return res, fmt.Errorf("failed to check room existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("room not found")
	}

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.PhotoFile, req.Photo, req.Photo.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload room photo to S3")

		return res, fmt.Errorf("failed to upload room photo to S3: %w", err)
	}

	updatedFields := shared.TransformFields(struct {
		Image string `db:"image"`
	}{Image: url}, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to attach photo to room")

		return res, fmt.Errorf("failed to attach photo to room: %w", err)
	}

	s.invalidate(ctx, id)

	res.FromModel(url, req.Photo.Filename)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	room, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound("room not found")
	}

	if room.Status == model.StatusOccupied {
		return failure.Conflict("room is occupied")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.audit.Record(ctx, "delete", model.EntityName, id, nil)

	s.invalidate(ctx, id)

	go func() {
		c := context.WithoutCancel(ctx)

		if room.Image == constant.Empty {
			return
		}

		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, room.Image)
		if objectName == constant.Empty {
			log.Warn().Str("url", room.Image).Msg("failed to extract object name from URL")

			return
		}

		if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
			log.Error().Err(err).Msg("failed to delete room photo from S3")
		}
	}()

	return nil
}

func (s *serviceImpl) CountByStatus(ctx context.Context) (counts map[string]int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountRoomByStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	counts, err = s.repo.CountByStatus(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms by status")

		return nil, fmt.Errorf("failed to count rooms by status: %w", err)
	}

	return counts, nil
}

func (s *serviceImpl) hasOpenHousekeeping(ctx context.Context, roomNumber string) (bool, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    hkModel.FieldRoomNumber,
				Value:    roomNumber,
				Operator: gDto.FilterOperatorEq,
				Table:    hkModel.TableName,
			},
			gDto.Filter{
				ArgName:  "approved",
				Field:    hkModel.FieldApproved,
				Value:    false,
				Operator: gDto.FilterOperatorEq,
				Table:    hkModel.TableName,
			},
		},
	}

	open, err := s.hkRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check open housekeeping tasks")

		return false, fmt.Errorf("failed to check open housekeeping tasks: %w", err)
	}

	return open, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()
}
