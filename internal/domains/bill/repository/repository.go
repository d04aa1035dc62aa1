package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/bill/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/logger"
	gRepo "frontdesk/shared/repository"
)

type Revenue struct {
	BillCount   int     `db:"bill_count"`
	TotalAmount float64 `db:"total_amount"`
	GstAmount   float64 `db:"gst_amount"`
}

type Bill interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Bill) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Bill, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Bill, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error
	RevenueBetween(ctx context.Context, from, to time.Time) (Revenue, error)
}

type Item interface {
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.BillItem) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BillItem, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Bill]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Bill {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Bill](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// RevenueBetween sums settled bills in [from, to]. Only Paid bills count as
// realized revenue.
func (repo *repositoryImpl) RevenueBetween(ctx context.Context, from, to time.Time) (Revenue, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".bill.RevenueBetween")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT COUNT(%s) AS bill_count, COALESCE(SUM(%s), 0) AS total_amount, COALESCE(SUM(gst_amount), 0) AS gst_amount FROM %s WHERE %s = $1 AND %s BETWEEN $2 AND $3",
		model.FieldID, model.FieldTotalAmount, model.TableName, model.FieldPaymentStatus, model.FieldCreatedAt,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var revenue Revenue
	if err := repo.db.Read.GetContext(ctx, &revenue, query, model.PaymentStatusPaid, from, to); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return revenue, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	return revenue, nil
}

type itemRepositoryImpl struct {
	gRepo.Repository[model.BillItem]
	db   *postgres.Connection
	otel otel.Otel
}

func NewItem(db *postgres.Connection, otel otel.Otel) Item {
	return &itemRepositoryImpl{
		Repository: gRepo.NewRepository[model.BillItem](model.ItemEntityName, model.ItemTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
