package model

import (
	"time"

	"resthouse/shared/constant"
	"resthouse/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldCustomerID    = "customer_id"
	FieldRoomID        = "room_id"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldGuests        = "guests"
	FieldTotalAmount   = "total_amount"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
)

type Booking struct {
	ID            string    `db:"id"`
	CustomerID    string    `db:"customer_id"`
	RoomID        string    `db:"room_id"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	Guests        int       `db:"guests"`
	TotalAmount   float64   `db:"total_amount"`
	Status        string    `db:"status"`
	PaymentStatus string    `db:"payment_status"`
	model.Metadata
}

// Nights is the number of nights covered, check-out day excluded.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// CanTransitionTo reports whether the booking status may move to target.
// Cancelled is terminal.
func CanTransitionTo(current, target string) bool {
	switch current {
	case constant.BookingStatusPending:
		return target == constant.BookingStatusConfirmed || target == constant.BookingStatusCancelled
	case constant.BookingStatusConfirmed:
		return target == constant.BookingStatusCancelled
	case constant.BookingStatusCancelled:
		return false
	default:
		return false
	}
}

// IsValidStatus reports whether status is a member of the closed status set.
func IsValidStatus(status string) bool {
	switch status {
	case constant.BookingStatusPending, constant.BookingStatusConfirmed, constant.BookingStatusCancelled:
		return true
	default:
		return false
	}
}
