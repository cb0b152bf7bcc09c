//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"pension/config"
	"pension/infras/jwt"
	"pension/infras/kafka"
	"pension/infras/otel"
	"pension/infras/postgres"
	"pension/infras/redis"
	"pension/infras/s3"
	"pension/permissions"
	"pension/shared/cache"
	"pension/transport/http"
	"pension/transport/http/middleware"
	"pension/transport/http/router"

	authService "pension/internal/domains/auth/service"
	clientRepository "pension/internal/domains/client/repository"
	clientService "pension/internal/domains/client/service"
	invoiceRepository "pension/internal/domains/invoice/repository"
	invoiceService "pension/internal/domains/invoice/service"
	reportRepository "pension/internal/domains/report/repository"
	reportService "pension/internal/domains/report/service"
	reservationRepository "pension/internal/domains/reservation/repository"
	reservationService "pension/internal/domains/reservation/service"
	roomRepository "pension/internal/domains/room/repository"
	roomService "pension/internal/domains/room/service"
	roomTypeRepository "pension/internal/domains/roomtype/repository"
	roomTypeService "pension/internal/domains/roomtype/service"
	ticketRepository "pension/internal/domains/ticket/repository"
	ticketService "pension/internal/domains/ticket/service"
	userRepository "pension/internal/domains/user/repository"
	userService "pension/internal/domains/user/service"

	authHandler "pension/internal/handlers/auth"
	clientHandler "pension/internal/handlers/client"
	invoiceHandler "pension/internal/handlers/invoice"
	reportHandler "pension/internal/handlers/report"
	reservationHandler "pension/internal/handlers/reservation"
	roomHandler "pension/internal/handlers/room"
	roomTypeHandler "pension/internal/handlers/roomtype"
	ticketHandler "pension/internal/handlers/ticket"
	userHandler "pension/internal/handlers/user"
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
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomTypeDomain = wire.NewSet(
	roomTypeRepository.New,
	roomTypeService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var clientDomain = wire.NewSet(
	clientRepository.New,
	clientService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var invoiceDomain = wire.NewSet(
	invoiceRepository.New,
	invoiceService.New,
)

var ticketDomain = wire.NewSet(
	ticketRepository.New,
	ticketService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var reportDomain = wire.NewSet(
	reportRepository.New,
	reportService.New,
)

var domains = wire.NewSet(
	roomTypeDomain,
	roomDomain,
	clientDomain,
	reservationDomain,
	invoiceDomain,
	ticketDomain,
	userDomain,
	authDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomTypeHandler.New,
	roomHandler.New,
	clientHandler.New,
	reservationHandler.New,
	invoiceHandler.New,
	ticketHandler.New,
	reportHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
