package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"resthouse/infras/otel"
	"resthouse/internal/domains/customer/model"
	"resthouse/internal/domains/customer/model/dto"
	"resthouse/internal/domains/customer/repository"
	"resthouse/shared"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	gModel "resthouse/shared/model"
	"resthouse/shared/timezone"
)

type Customer interface {
	GetOrCreate(ctx context.Context, name, email, phone string) (model.Customer, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCustomersResponse, error)
}

type serviceImpl struct {
	repo repository.Customer
	otel otel.Otel
}

func New(repo repository.Customer, otel otel.Otel) Customer {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// GetOrCreate returns the customer with the given email, creating one when
// none exists yet. Emails match exactly, case included. A concurrent create
// losing the unique-key race falls back to reading the winner's row.
func (s *serviceImpl) GetOrCreate(ctx context.Context, name, email, phone string) (res model.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOrCreate")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := emailFilter(email)

	existing, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if existing.ID != constant.Empty {
		return existing, nil
	}

	customer := model.Customer{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Phone: phone,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  email,
			ModifiedBy: email,
		},
	}

	if err = s.repo.Insert(ctx, customer); err != nil {
		if shared.IsPqErrorCode(err, constant.PqErrorCodeUniqueViolation) {
			existing, err = s.repo.Get(ctx, filter)
			if err != nil {
				return res, fmt.Errorf("failed to get customer after insert race: %w", err)
			}

			return existing, nil
		}

		log.Error().Err(err).Msg("failed to insert customer")

		return res, fmt.Errorf("failed to insert customer: %w", err)
	}

	return customer, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return res, fmt.Errorf("failed to get customers: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    model.TableName,
			},
		},
	}
}
