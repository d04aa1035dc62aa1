package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/audit/model"
	"frontdesk/internal/domains/audit/model/dto"
	"frontdesk/internal/domains/audit/repository"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Audit interface {
	Record(ctx context.Context, action, entity, entityID string, detail any)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAuditLogsResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo  repository.Audit
	cfg   *config.Config
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Audit, cfg *config.Config, kafka kafka.Client, otel otel.Otel) Audit {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		kafka: kafka,
		otel:  otel,
	}
}

// Record appends an audit entry and publishes it to the audit topic. Failures
// are logged, never surfaced, so callers cannot fail a business operation on
// audit trouble.
func (s *serviceImpl) Record(ctx context.Context, action, entity, entityID string, detail any) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordAudit")
	defer scope.End()

	actor, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	if actor == "" {
		actor = constant.ContextSystem
	}

	detailJSON := ""
	if detail != nil {
		raw, err := json.Marshal(detail)
		if err != nil {
			log.Error().Err(err).Str("entity", entity).Msg("Failed to marshal audit detail")
		} else {
			detailJSON = string(raw)
		}
	}

	now := timezone.Now()
	entry := model.AuditLog{
		ID:       uuid.NewString(),
		Actor:    actor,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Detail:   detailJSON,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			CreatedBy: actor,
		},
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		log.Error().Err(err).Str("entity", entity).Str("action", action).Msg("Failed to persist audit entry")

		return
	}

	go func() {
		bgCtx := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(bgCtx, s.cfg.Kafka.AuditTopic, kafka.Message{
			Key:   entry.ID,
			Value: entry,
		})
		if err != nil {
			log.Error().Err(err).Str("topic", s.cfg.Kafka.AuditTopic).Msg("Failed to publish audit entry")
		}
	}()
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAuditLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllAudit")
	defer scope.End()
	defer scope.TraceIfError(err)

	logs, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get audit entries")

		return res, fmt.Errorf("failed to get audit entries: %w", err)
	}

	total, err := s.Count(ctx, filter)
	if err != nil {
		return res, err
	}

	res.FromModels(logs, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountAudit")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to count audit entries")

		return 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	return total, nil
}
