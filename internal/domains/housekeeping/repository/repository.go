package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/housekeeping/model"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

type Housekeeping interface {
	Insert(ctx context.Context, model model.HousekeepingTask) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.HousekeepingTask, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.HousekeepingTask, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.HousekeepingTask]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Housekeeping {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.HousekeepingTask](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
