package calendar

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"resthouse/infras/otel"
	"resthouse/internal/domains/availability/model/dto"
	"resthouse/internal/domains/availability/service"
	"resthouse/shared/constant"
	"resthouse/shared/failure"
	"resthouse/shared/validator"
	"resthouse/transport/http/response"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/calendar", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCalendar)
		routerGroup.Post("/block", handler.SetBlock)
	})
}

// GetCalendar retrieves availability entries over a date range, optionally
// narrowed to a single room.
// @Summary Get the availability calendar
// @Description Retrieve per-day availability entries between two dates, both inclusive. Without room_id all rooms are returned.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param room_id query string false "Room ID"
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetCalendarResponse] "Calendar entries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar [get]
// @Security BearerAuth
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	roomID := r.URL.Query().Get("room_id")

	start, err := time.Parse(constant.DayDateFormat, r.URL.Query().Get(constant.RequestParamStart))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("start must be a valid date in YYYY-MM-DD format")) // nolint:wrapcheck

		return
	}

	end, err := time.Parse(constant.DayDateFormat, r.URL.Query().Get(constant.RequestParamEnd))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("end must be a valid date in YYYY-MM-DD format")) // nolint:wrapcheck

		return
	}

	if end.Before(start) {
		response.WithError(w, failure.BadRequestFromString("end must not be before start")) // nolint:wrapcheck

		return
	}

	calendar, err := handler.service.QueryRange(ctx, roomID, start, end)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get calendar")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Calendar retrieved successfully")

	response.WithJSON(w, http.StatusOK, calendar)
}

// SetBlock blocks or unblocks a single date on a room's calendar.
// @Summary Block or unblock a date
// @Description Place or lift a manual block on one date for a room. Dates held by bookings cannot be changed here.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param block body dto.SetBlockRequest true "Block request"
// @Success 200 {object} response.Message "Calendar updated successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar/block [post]
// @Security BearerAuth
func (handler *Handler) SetBlock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetBlock")
	defer scope.End()

	var req dto.SetBlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, failure.BadRequestFromString("invalid request body")) // nolint:wrapcheck

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetBlock(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update calendar")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Calendar updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Calendar updated successfully")
}
