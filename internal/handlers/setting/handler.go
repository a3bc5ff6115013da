package setting

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"resthouse/infras/otel"
	"resthouse/internal/domains/setting/service"
	"resthouse/shared/constant"
	"resthouse/shared/failure"
	"resthouse/transport/http/response"
)

type Handler struct {
	service service.Setting
	otel    otel.Otel
}

func New(service service.Setting, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSettings)
		routerGroup.Put("/", handler.UpsertSettings)
	})
}

// GetSettings retrieves all property settings as a key-value map.
// @Summary Get settings
// @Description Retrieve all property settings as a key-value map.
// @Tags Setting
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[map[string]string] "Settings map"
// @Failure 500 {object} response.Error
// @Router /v1/settings [get]
func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	settings, err := handler.service.GetMap(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Settings retrieved successfully")

	response.WithJSON(w, http.StatusOK, settings)
}

// UpsertSettings inserts or updates settings from a key-value map.
// @Summary Upsert settings
// @Description Insert or update property settings from a key-value map. Existing keys are overwritten, other keys are untouched.
// @Tags Setting
// @Accept json
// @Produce json
// @Param settings body map[string]string true "Settings map"
// @Success 200 {object} response.Message "Settings updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings [put]
// @Security BearerAuth
func (handler *Handler) UpsertSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertSettings")
	defer scope.End()

	var settings map[string]string
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, failure.BadRequestFromString("invalid request body")) // nolint:wrapcheck

		return
	}

	if len(settings) == 0 {
		response.WithError(w, failure.BadRequestFromString("settings map cannot be empty")) // nolint:wrapcheck

		return
	}

	if err := handler.service.Upsert(ctx, settings); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert settings")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Settings updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Settings updated successfully")
}
