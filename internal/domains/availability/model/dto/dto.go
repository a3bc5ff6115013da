package dto

import (
	"resthouse/internal/domains/availability/model"
	"resthouse/shared/constant"
)

type SetBlockRequest struct {
	RoomID      string `json:"room_id"      validate:"required,uuid"`
	Date        string `json:"date"         validate:"required,datetime=2006-01-02"`
	ShouldBlock bool   `json:"should_block"`
}

type CalendarEntryResponse struct {
	ID        string  `json:"id"`
	RoomID    string  `json:"room_id"`
	Date      string  `json:"date"`
	IsBooked  bool    `json:"is_booked"`
	BookingID *string `json:"booking_id,omitempty"`
}

func (c *CalendarEntryResponse) FromModel(model model.RoomAvailability) {
	c.ID = model.ID
	c.RoomID = model.RoomID
	c.Date = model.Date.Format(constant.DayDateFormat)
	c.IsBooked = model.IsBooked
	c.BookingID = model.BookingID
}

type GetCalendarResponse struct {
	Entries []CalendarEntryResponse `json:"entries"`
}

func (g *GetCalendarResponse) FromModels(models []model.RoomAvailability) {
	g.Entries = make([]CalendarEntryResponse, len(models))
	for i, mod := range models {
		g.Entries[i].FromModel(mod)
	}
}
