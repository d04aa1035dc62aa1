package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/food/model"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

type Menu interface {
	Insert(ctx context.Context, model model.MenuItem) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.MenuItem, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.MenuItem, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Order interface {
	Insert(ctx context.Context, model model.FoodOrder) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.FoodOrder, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.FoodOrder, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.FoodOrder, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error
}

type menuRepositoryImpl struct {
	gRepo.Repository[model.MenuItem]
	db   *postgres.Connection
	otel otel.Otel
}

func NewMenu(db *postgres.Connection, otel otel.Otel) Menu {
	return &menuRepositoryImpl{
		Repository: gRepo.NewRepository[model.MenuItem](model.MenuEntityName, model.MenuTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type orderRepositoryImpl struct {
	gRepo.Repository[model.FoodOrder]
	db   *postgres.Connection
	otel otel.Otel
}

func NewOrder(db *postgres.Connection, otel otel.Otel) Order {
	return &orderRepositoryImpl{
		Repository: gRepo.NewRepository[model.FoodOrder](model.OrderEntityName, model.OrderTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
