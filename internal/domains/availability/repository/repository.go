package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"resthouse/infras/otel"
	"resthouse/infras/postgres"
	"resthouse/internal/domains/availability/model"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	"resthouse/shared/logger"
	gRepo "resthouse/shared/repository"
)

type Availability interface {
	Insert(ctx context.Context, model model.RoomAvailability) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.RoomAvailability) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomAvailability, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomAvailability, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	LockRange(ctx context.Context, sqltx *sqlx.Tx, roomID string, start, end time.Time) ([]model.RoomAvailability, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomAvailability]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Availability {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomAvailability](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// LockRange reads and row-locks every availability entry for the room in the
// half-open window [start, end). Must run inside the caller's transaction so
// the locks hold until commit.
func (repo *repositoryImpl) LockRange(ctx context.Context, sqltx *sqlx.Tx, roomID string, start, end time.Time) ([]model.RoomAvailability, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".LockRange")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT id, room_id, date, is_booked, booking_id, created_at, modified_at, created_by, modified_by FROM %s WHERE room_id = $1 AND date >= $2 AND date < $3 FOR UPDATE",
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	entries := []model.RoomAvailability{}

	err := sqltx.SelectContext(ctx, &entries, query, roomID, start, end)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to lock availability range (%s): %w", model.EntityName, err)
	}

	return entries, nil
}
