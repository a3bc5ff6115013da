package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"resthouse/infras/otel"
	availModel "resthouse/internal/domains/availability/model"
	bookingModel "resthouse/internal/domains/booking/model"
	customerService "resthouse/internal/domains/customer/service"
	"resthouse/internal/domains/reservation/model/dto"
	"resthouse/internal/domains/reservation/repository"
	roomModel "resthouse/internal/domains/room/model"
	roomRepo "resthouse/internal/domains/room/repository"
	"resthouse/internal/events"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	"resthouse/shared/failure"
	gModel "resthouse/shared/model"
	"resthouse/shared/timezone"
)

type Reservation interface {
	Reserve(ctx context.Context, req dto.CreateReservationRequest) (dto.CreateReservationResponse, error)
}

type serviceImpl struct {
	repo       repository.Reservation
	rooms      roomRepo.Room
	customers  customerService.Customer
	dispatcher events.Dispatcher
	otel       otel.Otel
}

func New(repo repository.Reservation, rooms roomRepo.Room, customers customerService.Customer, dispatcher events.Dispatcher, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:       repo,
		rooms:      rooms,
		customers:  customers,
		dispatcher: dispatcher,
		otel:       otel,
	}
}

// Reserve books a room for the requested stay. Exactly one of two concurrent
// overlapping calls succeeds; the loser receives a conflict.
func (s *serviceImpl) Reserve(ctx context.Context, req dto.CreateReservationRequest) (res dto.CreateReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	room, err := s.resolveRoom(ctx, req.RoomType)
	if err != nil {
		return res, err
	}

	// outside the reservation transaction: a surviving customer row on a
	// later conflict is harmless and reused by the next attempt
	customer, err := s.customers.GetOrCreate(ctx, req.Name, req.Email, req.Phone)
	if err != nil {
		return res, err
	}

	guests := req.Guests
	if guests == 0 {
		guests = 1
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	now := timezone.Now()
	user := req.Email

	booking := bookingModel.Booking{
		ID:            uuid.NewString(),
		CustomerID:    customer.ID,
		RoomID:        room.ID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        guests,
		TotalAmount:   float64(nights) * room.Price,
		Status:        constant.BookingStatusConfirmed,
		PaymentStatus: constant.PaymentStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	entries := make([]availModel.RoomAvailability, 0, nights)
	for night := checkIn; night.Before(checkOut); night = night.AddDate(0, 0, 1) {
		entries = append(entries, availModel.RoomAvailability{
			ID:        uuid.NewString(),
			RoomID:    room.ID,
			Date:      night,
			IsBooked:  true,
			BookingID: &booking.ID,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		})
	}

	if err = s.repo.CreateReservation(ctx, booking, entries); err != nil {
		log.Error().Err(err).Str("room_id", room.ID).Msg("failed to create reservation")

		return res, err
	}

	scope.AddEvent("reservation created for booking " + booking.ID)

	s.dispatcher.BookingConfirmed(ctx, events.BookingEvent{
		BookingID:   booking.ID,
		RoomID:      room.ID,
		RoomType:    room.RoomType,
		CustomerID:  customer.ID,
		Email:       customer.Email,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Guests:      guests,
		TotalAmount: booking.TotalAmount,
		Status:      booking.Status,
	})

	res.FromBooking(booking, room.RoomType)

	return res, nil
}

func (s *serviceImpl) resolveRoom(ctx context.Context, roomType string) (roomModel.Room, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldRoomType,
				Operator: gDto.FilterOperatorEq,
				Value:    roomType,
				Table:    roomModel.TableName,
			},
		},
	}

	room, err := s.rooms.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve room by type")

		return room, fmt.Errorf("failed to resolve room by type: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	return room, nil
}

func parseStay(checkInStr, checkOutStr string) (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(constant.DayDateFormat, checkInStr)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_in must be in YYYY-MM-DD format") // nolint:wrapcheck
	}

	checkOut, err = time.Parse(constant.DayDateFormat, checkOutStr)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_out must be in YYYY-MM-DD format") // nolint:wrapcheck
	}

	if !checkIn.Before(checkOut) {
		return checkIn, checkOut, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}
