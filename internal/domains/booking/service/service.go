package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"resthouse/infras/otel"
	"resthouse/internal/domains/booking/model"
	"resthouse/internal/domains/booking/model/dto"
	"resthouse/internal/domains/booking/repository"
	"resthouse/internal/events"
	"resthouse/shared"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	"resthouse/shared/failure"
	"resthouse/shared/timezone"
)

type Booking interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateBookingRequest) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo       repository.Booking
	dispatcher events.Dispatcher
	otel       otel.Otel
}

func New(repo repository.Booking, dispatcher events.Dispatcher, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:       repo,
		dispatcher: dispatcher,
		otel:       otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !model.IsValidStatus(req.Status) {
		return failure.BadRequestFromString("unknown booking status: " + req.Status) // nolint:wrapcheck
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status == req.Status {
		// no-op
		return nil
	}

	if !model.CanTransitionTo(booking.Status, req.Status) {
		return failure.Conflict(fmt.Sprintf("cannot transition booking from %s to %s", booking.Status, req.Status)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if req.Status != constant.BookingStatusCancelled {
		if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to update booking status")

			return fmt.Errorf("failed to update booking status: %w", err)
		}

		return nil
	}

	// cancellation frees the booked nights in the same transaction
	if booking.PaymentStatus == constant.PaymentStatusPaid {
		updatedFields[model.FieldPaymentStatus] = constant.PaymentStatusRefunded
	}

	if err = s.repo.UpdateWithRelease(ctx, id, updatedFields); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.dispatcher.BookingCancelled(ctx, bookingEvent(booking, constant.BookingStatusCancelled))

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.repo.DeleteWithRelease(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.dispatcher.BookingCancelled(ctx, bookingEvent(booking, constant.BookingStatusCancelled))

	return nil
}

func bookingEvent(booking model.Booking, status string) events.BookingEvent {
	return events.BookingEvent{
		BookingID:   booking.ID,
		RoomID:      booking.RoomID,
		CustomerID:  booking.CustomerID,
		CheckIn:     booking.CheckIn.Format(constant.DayDateFormat),
		CheckOut:    booking.CheckOut.Format(constant.DayDateFormat),
		Guests:      booking.Guests,
		TotalAmount: booking.TotalAmount,
		Status:      status,
	}
}
