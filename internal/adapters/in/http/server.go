// Package http is the echo surface of the dispatch console. Handlers bind
// JSON payloads into commands and queries, derive the acting session from
// request headers, and translate use case failures into HTTP statuses.
package http

import (
	"dispatch/internal/core/application/session"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every use case the server exposes.
type Handlers struct {
	CreateCourier    commands.CreateCourierCommandHandler
	CreateOrder      commands.CreateOrderCommandHandler
	CreateStore      commands.CreateStoreCommandHandler
	ToggleStoreLink  commands.ToggleStoreLinkCommandHandler
	AssignOrder      commands.AssignOrderCommandHandler
	VoiceDispatch    commands.VoiceDispatchCommandHandler
	DispatchPending  commands.DispatchPendingCommandHandler
	AcceptOrder      commands.AcceptOrderCommandHandler
	CompleteDelivery commands.CompleteDeliveryCommandHandler
	SetCourierShift  commands.SetCourierShiftCommandHandler
	RequestAdvance   commands.RequestAdvanceCommandHandler
	ResolveAdvance   commands.ResolveAdvanceCommandHandler
	ChangePayPolicy  commands.ChangePayPolicyCommandHandler
	RenameCourier    commands.RenameCourierCommandHandler
	DeleteCourier    commands.DeleteCourierCommandHandler

	GetAllCouriers     queries.GetAllCouriersQueryHandler
	GetActiveOrders    queries.GetActiveOrdersQueryHandler
	GetStoreDemand     queries.GetStoreDemandQueryHandler
	GetRoutePlan       queries.GetRoutePlanQueryHandler
	GetRestockForecast queries.GetRestockForecastQueryHandler
}

// Server wires the use case handlers to routes.
type Server struct {
	handlers Handlers
	policy   session.Policy
}

// NewServer creates the HTTP server.
func NewServer(handlers Handlers, policy session.Policy) *Server {
	return &Server{
		handlers: handlers,
		policy:   policy,
	}
}

// RegisterRoutes attaches all API routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/couriers", s.GetCouriers)
	api.POST("/couriers", s.CreateCourier)
	api.DELETE("/couriers/:id", s.DeleteCourier)
	api.PUT("/couriers/:id/shift", s.SetCourierShift)
	api.PUT("/couriers/:id/name", s.RenameCourier)
	api.PUT("/couriers/:id/pay-policy", s.ChangePayPolicy)
	api.POST("/couriers/:id/advance", s.RequestAdvance)
	api.POST("/couriers/:id/advance/resolution", s.ResolveAdvance)
	api.GET("/couriers/:id/route-plan", s.GetRoutePlan)

	api.POST("/stores", s.CreateStore)
	api.PUT("/stores/:id/link", s.ToggleStoreLink)
	api.GET("/stores/demand", s.GetStoreDemand)
	api.GET("/stores/:id/restock-forecast", s.GetRestockForecast)

	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/assignment", s.AssignOrder)
	api.POST("/orders/:id/acceptance", s.AcceptOrder)
	api.POST("/orders/:id/completion", s.CompleteDelivery)

	api.POST("/dispatch/voice", s.VoiceDispatch)
	api.POST("/dispatch/run", s.DispatchPending)
}
