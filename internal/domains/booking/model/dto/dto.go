package dto

import (
	"resthouse/internal/domains/booking/model"
	"resthouse/shared"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
)

type UpdateBookingRequest struct {
	Status string `json:"status" validate:"required"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	CustomerID    string  `json:"customer_id"`
	RoomID        string  `json:"room_id"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Guests        int     `json:"guests"`
	TotalAmount   float64 `json:"total_amount"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.CustomerID = model.CustomerID
	b.RoomID = model.RoomID
	b.CheckIn = model.CheckIn.Format(constant.DayDateFormat)
	b.CheckOut = model.CheckOut.Format(constant.DayDateFormat)
	b.Guests = model.Guests
	b.TotalAmount = model.TotalAmount
	b.Status = model.Status
	b.PaymentStatus = model.PaymentStatus
	b.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		g.Bookings[i].FromModel(mod)
	}
}
