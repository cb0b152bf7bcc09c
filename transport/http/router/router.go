package router

import (
	"github.com/go-chi/chi/v5"

	"pension/internal/handlers/auth"
	"pension/internal/handlers/client"
	"pension/internal/handlers/invoice"
	"pension/internal/handlers/report"
	"pension/internal/handlers/reservation"
	"pension/internal/handlers/room"
	"pension/internal/handlers/roomtype"
	"pension/internal/handlers/ticket"
	"pension/internal/handlers/user"
	"pension/transport/http/middleware"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	RoomType    roomtype.Handler
	Room        room.Handler
	Client      client.Handler
	Reservation reservation.Handler
	Invoice     invoice.Handler
	Ticket      ticket.Handler
	Report      report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.RoomType.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Client.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Invoice.Router(routerGroup)
		r.DomainHandlers.Ticket.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
