package router

import (
	"github.com/go-chi/chi/v5"

	"resthouse/internal/handlers/auth"
	"resthouse/internal/handlers/booking"
	"resthouse/internal/handlers/calendar"
	"resthouse/internal/handlers/customer"
	"resthouse/internal/handlers/reservation"
	"resthouse/internal/handlers/room"
	"resthouse/internal/handlers/setting"
	"resthouse/transport/http/middleware"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Reservation reservation.Handler
	Room        room.Handler
	Booking     booking.Handler
	Calendar    calendar.Handler
	Customer    customer.Handler
	Setting     setting.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthMiddleware middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthMiddleware.APIKey)
		routerGroup.Use(r.AuthMiddleware.Auth)
		routerGroup.Use(r.AuthMiddleware.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Calendar.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Setting.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authMiddleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthMiddleware: authMiddleware,
	}
}
