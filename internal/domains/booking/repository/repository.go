package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"resthouse/infras/otel"
	"resthouse/infras/postgres"
	availModel "resthouse/internal/domains/availability/model"
	"resthouse/internal/domains/booking/model"
	"resthouse/shared"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	gRepo "resthouse/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateWithRelease(ctx context.Context, id string, req map[string]any) error
	DeleteWithRelease(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpdateWithRelease applies the field updates and deletes the booking's
// availability rows in one transaction, freeing its nights.
func (repo *repositoryImpl) UpdateWithRelease(ctx context.Context, id string, req map[string]any) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".UpdateWithRelease")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback booking release transaction")
			}
		}
	}()

	if err = repo.UpdateTx(ctx, tx, req, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return err //nolint:wrapcheck
	}

	if err = repo.releaseNights(ctx, tx, id); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}

// DeleteWithRelease removes the booking and its availability rows in one
// transaction.
func (repo *repositoryImpl) DeleteWithRelease(ctx context.Context, id string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".DeleteWithRelease")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback booking delete transaction")
			}
		}
	}()

	if err = repo.releaseNights(ctx, tx, id); err != nil {
		return err
	}

	if err = repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) releaseNights(ctx context.Context, tx *sqlx.Tx, bookingID string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", availModel.TableName, availModel.FieldBookingID)

	if _, err := tx.ExecContext(ctx, query, bookingID); err != nil {
		return fmt.Errorf("failed to release booked nights (%s): %w", model.EntityName, err)
	}

	return nil
}
