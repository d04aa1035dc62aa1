//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/infras/redis"
	"frontdesk/infras/s3"
	"frontdesk/permissions"
	"frontdesk/shared/cache"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	auditRepository "frontdesk/internal/domains/audit/repository"
	auditService "frontdesk/internal/domains/audit/service"
	authService "frontdesk/internal/domains/auth/service"
	billRepository "frontdesk/internal/domains/bill/repository"
	billService "frontdesk/internal/domains/bill/service"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	bookingService "frontdesk/internal/domains/booking/service"
	foodRepository "frontdesk/internal/domains/food/repository"
	foodService "frontdesk/internal/domains/food/service"
	housekeepingRepository "frontdesk/internal/domains/housekeeping/repository"
	housekeepingService "frontdesk/internal/domains/housekeeping/service"
	inventoryRepository "frontdesk/internal/domains/inventory/repository"
	inventoryService "frontdesk/internal/domains/inventory/service"
	reportService "frontdesk/internal/domains/report/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	userRepository "frontdesk/internal/domains/user/repository"
	userService "frontdesk/internal/domains/user/service"

	auditHandler "frontdesk/internal/handlers/audit"
	authHandler "frontdesk/internal/handlers/auth"
	billHandler "frontdesk/internal/handlers/bill"
	bookingHandler "frontdesk/internal/handlers/booking"
	foodHandler "frontdesk/internal/handlers/food"
	housekeepingHandler "frontdesk/internal/handlers/housekeeping"
	inventoryHandler "frontdesk/internal/handlers/inventory"
	reportHandler "frontdesk/internal/handlers/report"
	roomHandler "frontdesk/internal/handlers/room"
	userHandler "frontdesk/internal/handlers/user"

	"github.com/google/wire"
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
	wire.Bind(new(bookingService.TxRunner), new(*postgres.Connection)),
	wire.Bind(new(billService.TxRunner), new(*postgres.Connection)),
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var auditDomain = wire.NewSet(
	auditRepository.New,
	auditService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var foodDomain = wire.NewSet(
	foodRepository.NewMenu,
	foodRepository.NewOrder,
	foodService.New,
)

var billDomain = wire.NewSet(
	billRepository.New,
	billRepository.NewItem,
	billService.New,
)

var housekeepingDomain = wire.NewSet(
	housekeepingRepository.New,
	housekeepingService.New,
)

var inventoryDomain = wire.NewSet(
	inventoryRepository.New,
	inventoryService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var domains = wire.NewSet(
	auditDomain,
	authDomain,
	userDomain,
	roomDomain,
	bookingDomain,
	foodDomain,
	billDomain,
	housekeepingDomain,
	inventoryDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	bookingHandler.New,
	foodHandler.New,
	billHandler.New,
	housekeepingHandler.New,
	inventoryHandler.New,
	reportHandler.New,
	auditHandler.New,
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
