//go:build wireinject
// +build wireinject

package di

import (
	"resthouse/config"
	"resthouse/infras/jwt"
	"resthouse/infras/kafka"
	"resthouse/infras/otel"
	"resthouse/infras/postgres"
	"resthouse/infras/redis"
	"resthouse/infras/s3"
	"resthouse/internal/events"
	"resthouse/permissions"
	"resthouse/shared/cache"
	"resthouse/transport/http"
	"resthouse/transport/http/middleware"
	"resthouse/transport/http/router"

	"github.com/google/wire"

	adminRepository "resthouse/internal/domains/admin/repository"
	authService "resthouse/internal/domains/auth/service"
	availabilityRepository "resthouse/internal/domains/availability/repository"
	availabilityService "resthouse/internal/domains/availability/service"
	bookingRepository "resthouse/internal/domains/booking/repository"
	bookingService "resthouse/internal/domains/booking/service"
	customerRepository "resthouse/internal/domains/customer/repository"
	customerService "resthouse/internal/domains/customer/service"
	reservationRepository "resthouse/internal/domains/reservation/repository"
	reservationService "resthouse/internal/domains/reservation/service"
	roomRepository "resthouse/internal/domains/room/repository"
	roomService "resthouse/internal/domains/room/service"
	settingRepository "resthouse/internal/domains/setting/repository"
	settingService "resthouse/internal/domains/setting/service"

	authHandler "resthouse/internal/handlers/auth"
	bookingHandler "resthouse/internal/handlers/booking"
	calendarHandler "resthouse/internal/handlers/calendar"
	customerHandler "resthouse/internal/handlers/customer"
	reservationHandler "resthouse/internal/handlers/reservation"
	roomHandler "resthouse/internal/handlers/room"
	settingHandler "resthouse/internal/handlers/setting"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var eventDispatchers = wire.NewSet(
	events.NewKafkaDispatcher,
)

var authDomain = wire.NewSet(
	adminRepository.New,
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var settingDomain = wire.NewSet(
	settingRepository.New,
	settingService.New,
)

var domains = wire.NewSet(
	authDomain,
	roomDomain,
	availabilityDomain,
	customerDomain,
	bookingDomain,
	reservationDomain,
	settingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	reservationHandler.New,
	roomHandler.New,
	bookingHandler.New,
	calendarHandler.New,
	customerHandler.New,
	settingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		eventDispatchers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
