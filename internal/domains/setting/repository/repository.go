package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resthouse/infras/otel"
	"resthouse/infras/postgres"
	"resthouse/internal/domains/setting/model"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	"resthouse/shared/logger"
	gRepo "resthouse/shared/repository"
)

type Setting interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Setting, error)
	Upsert(ctx context.Context, settings []model.Setting) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Setting]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Setting {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Setting](model.EntityName, model.TableName, model.FieldKey, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert writes the given key/value pairs, replacing values for keys that
// already exist.
func (repo *repositoryImpl) Upsert(ctx context.Context, settings []model.Setting) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Upsert")
	defer scope.End()

	query := fmt.Sprintf(
		"INSERT INTO %s (key, value, modified_at) VALUES (:key, :value, :modified_at) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, modified_at = EXCLUDED.modified_at",
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, settings)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert settings (%s): %w", model.EntityName, err)
	}

	return nil
}
