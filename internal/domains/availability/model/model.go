package model

import (
	"time"

	"resthouse/shared/model"
)

const (
	TableName  = "room_availability"
	EntityName = "availability"

	FieldID        = "id"
	FieldRoomID    = "room_id"
	FieldDate      = "date"
	FieldIsBooked  = "is_booked"
	FieldBookingID = "booking_id"
)

// RoomAvailability is one night of one room. A row with IsBooked and no
// BookingID is a manual admin block; a row with a BookingID belongs to a
// booking; no row at all means the night is free.
type RoomAvailability struct {
	ID        string    `db:"id"`
	RoomID    string    `db:"room_id"`
	Date      time.Time `db:"date"`
	IsBooked  bool      `db:"is_booked"`
	BookingID *string   `db:"booking_id"`
	model.Metadata
}

// IsManualBlock reports whether the entry was placed by an admin rather than
// a booking.
func (a *RoomAvailability) IsManualBlock() bool {
	return a.IsBooked && a.BookingID == nil
}
