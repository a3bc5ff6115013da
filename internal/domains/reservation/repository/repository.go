package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"resthouse/infras/otel"
	"resthouse/infras/postgres"
	availModel "resthouse/internal/domains/availability/model"
	availRepo "resthouse/internal/domains/availability/repository"
	bookingModel "resthouse/internal/domains/booking/model"
	bookingRepo "resthouse/internal/domains/booking/repository"
	"resthouse/shared"
	"resthouse/shared/constant"
	"resthouse/shared/failure"
)

// Reservation persists a booking and its per-night availability rows
// atomically, or not at all.
type Reservation interface {
	CreateReservation(ctx context.Context, booking bookingModel.Booking, nights []availModel.RoomAvailability) error
}

type repositoryImpl struct {
	db           *postgres.Connection
	availability availRepo.Availability
	booking      bookingRepo.Booking
	otel         otel.Otel
}

func New(db *postgres.Connection, availability availRepo.Availability, booking bookingRepo.Booking, otel otel.Otel) Reservation {
	return &repositoryImpl{
		db:           db,
		availability: availability,
		booking:      booking,
		otel:         otel,
	}
}

// CreateReservation runs the no-double-booking protocol: it row-locks the
// room's availability entries for the stay window, refuses when any night is
// already booked, then inserts the booking and its nights in the same
// transaction. A unique-key violation on the nights means a concurrent
// reservation inserted a row we could not lock; it maps to the same conflict.
func (repo *repositoryImpl) CreateReservation(ctx context.Context, booking bookingModel.Booking, nights []availModel.RoomAvailability) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.CreateReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction (reservation): %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback reservation transaction")
			}
		}
	}()

	locked, err := repo.availability.LockRange(ctx, tx, booking.RoomID, booking.CheckIn, booking.CheckOut)
	if err != nil {
		return err //nolint:wrapcheck
	}

	for _, entry := range locked {
		if entry.IsBooked {
			err = failure.Conflict("dates no longer available")

			return err //nolint:wrapcheck
		}
	}

	if err = repo.booking.InsertTx(ctx, tx, booking); err != nil {
		return err //nolint:wrapcheck
	}

	if err = repo.availability.InsertBulkTx(ctx, tx, nights); err != nil {
		if shared.IsPqErrorCode(err, constant.PqErrorCodeUniqueViolation) {
			err = failure.Conflict("dates no longer available")
		}

		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction (reservation): %w", err)
	}

	return nil
}
