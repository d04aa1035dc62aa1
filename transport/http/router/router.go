package router

import (
	"frontdesk/internal/handlers/audit"
	"frontdesk/internal/handlers/auth"
	"frontdesk/internal/handlers/bill"
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/food"
	"frontdesk/internal/handlers/housekeeping"
	"frontdesk/internal/handlers/inventory"
	"frontdesk/internal/handlers/report"
	"frontdesk/internal/handlers/room"
	"frontdesk/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Room         room.Handler
	Booking      booking.Handler
	Food         food.Handler
	Bill         bill.Handler
	Housekeeping housekeeping.Handler
	Inventory    inventory.Handler
	Report       report.Handler
	Audit        audit.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Food.Router(routerGroup)
		r.DomainHandlers.Bill.Router(routerGroup)
		r.DomainHandlers.Housekeeping.Router(routerGroup)
		r.DomainHandlers.Inventory.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
		r.DomainHandlers.Audit.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
