package dto

import (
	"resthouse/internal/domains/booking/model"
	"resthouse/shared/constant"
)

type CreateReservationRequest struct {
	Name     string `json:"name"      validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email"`
	Phone    string `json:"phone"     validate:"required,max=30"`
	RoomType string `json:"room_type" validate:"required"`
	CheckIn  string `json:"check_in"  validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests   int    `json:"guests"    validate:"omitempty,min=1"`
}

type CreateReservationResponse struct {
	BookingID     string  `json:"booking_id"`
	RoomID        string  `json:"room_id"`
	RoomType      string  `json:"room_type"`
	CustomerID    string  `json:"customer_id"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Guests        int     `json:"guests"`
	Nights        int     `json:"nights"`
	TotalAmount   float64 `json:"total_amount"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
}

func (r *CreateReservationResponse) FromBooking(booking model.Booking, roomType string) {
	r.BookingID = booking.ID
	r.RoomID = booking.RoomID
	r.RoomType = roomType
	r.CustomerID = booking.CustomerID
	r.CheckIn = booking.CheckIn.Format(constant.DayDateFormat)
	r.CheckOut = booking.CheckOut.Format(constant.DayDateFormat)
	r.Guests = booking.Guests
	r.Nights = booking.Nights()
	r.TotalAmount = booking.TotalAmount
	r.Status = booking.Status
	r.PaymentStatus = booking.PaymentStatus
}
