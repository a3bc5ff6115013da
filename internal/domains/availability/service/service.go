package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"resthouse/infras/otel"
	"resthouse/internal/domains/availability/model"
	"resthouse/internal/domains/availability/model/dto"
	"resthouse/internal/domains/availability/repository"
	"resthouse/shared"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	"resthouse/shared/failure"
	gModel "resthouse/shared/model"
	"resthouse/shared/timezone"
)

type Availability interface {
	QueryRange(ctx context.Context, roomID string, start, end time.Time) (dto.GetCalendarResponse, error)
	IsRangeFree(ctx context.Context, roomID string, start, endExclusive time.Time) (bool, error)
	SetBlock(ctx context.Context, req dto.SetBlockRequest) error
}

type serviceImpl struct {
	repo repository.Availability
	otel otel.Otel
}

func New(repo repository.Availability, otel otel.Otel) Availability {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func rangeFilter(roomID string, start, end time.Time, endExclusive bool) gDto.FilterGroup {
	// dates are day-granular, so an exclusive end is the day before
	if endExclusive {
		end = end.AddDate(0, 0, -1)
	}

	filters := []any{
		gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    start,
			Table:    model.TableName,
			ArgName:  model.FieldDate + "_start",
		},
		gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorLessEq,
			Value:    end,
			Table:    model.TableName,
			ArgName:  model.FieldDate + "_end",
		},
	}

	if roomID != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}

func (s *serviceImpl) QueryRange(ctx context.Context, roomID string, start, end time.Time) (res dto.GetCalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QueryRange")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldDate,
		SortDir: gDto.SortDirAsc,
	}

	entries, err := s.repo.GetAll(ctx, params, rangeFilter(roomID, start, end, false))
	if err != nil {
		log.Error().Err(err).Msg("failed to query availability range")

		return res, fmt.Errorf("failed to query availability range: %w", err)
	}

	res.FromModels(entries)

	return res, nil
}

func (s *serviceImpl) IsRangeFree(ctx context.Context, roomID string, start, endExclusive time.Time) (free bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsRangeFree")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := rangeFilter(roomID, start, endExclusive, true)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldIsBooked,
		Operator: gDto.FilterOperatorEq,
		Value:    true,
		Table:    model.TableName,
	})

	booked, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check availability range")

		return false, fmt.Errorf("failed to check availability range: %w", err)
	}

	return !booked, nil
}

func (s *serviceImpl) SetBlock(ctx context.Context, req dto.SetBlockRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetBlock")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, err := time.Parse(constant.DayDateFormat, req.Date)
	if err != nil {
		return failure.BadRequestFromString("date must be in YYYY-MM-DD format") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	entry, err := s.repo.Get(ctx, roomDateFilter(req.RoomID, date))
	if err != nil {
		log.Error().Err(err).Msg("failed to get availability entry")

		return fmt.Errorf("failed to get availability entry: %w", err)
	}

	if req.ShouldBlock {
		return s.block(ctx, entry, req.RoomID, date, user)
	}

	return s.unblock(ctx, entry)
}

func (s *serviceImpl) block(ctx context.Context, entry model.RoomAvailability, roomID string, date time.Time, user string) error {
	if entry.ID != constant.Empty {
		if entry.BookingID != nil {
			return failure.Conflict("date is reserved by a booking") // nolint:wrapcheck
		}

		// already blocked
		return nil
	}

	block := model.RoomAvailability{
		ID:       uuid.NewString(),
		RoomID:   roomID,
		Date:     date,
		IsBooked: true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err := s.repo.Insert(ctx, block); err != nil {
		// lost the race against a concurrent reservation or block
		if shared.IsPqErrorCode(err, constant.PqErrorCodeUniqueViolation) {
			return failure.Conflict("date is no longer available") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to insert availability block")

		return fmt.Errorf("failed to insert availability block: %w", err)
	}

	return nil
}

func (s *serviceImpl) unblock(ctx context.Context, entry model.RoomAvailability) error {
	if entry.ID == constant.Empty {
		// nothing to unblock
		return nil
	}

	if entry.BookingID != nil {
		return failure.Conflict("date is reserved by a booking, cancel the booking instead") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    entry.ID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterIsNull,
				Table:    model.TableName,
			},
		},
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete availability block")

		return fmt.Errorf("failed to delete availability block: %w", err)
	}

	return nil
}

func roomDateFilter(roomID string, date time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
				Table:    model.TableName,
			},
		},
	}
}
