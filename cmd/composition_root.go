package cmd

import (
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/session"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"gorm.io/gorm"
)

// courierDriftDegrees bounds one axis of a single movement tick.
const courierDriftDegrees = 0.002

// CompositionRoot wires adapters into use case handlers. Optional
// adapters (oracle, publisher, cache) may be nil; handlers degrade to
// deterministic behavior.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	oracle     ports.DispatchOracle
	publisher  ports.EventPublisher
	cache      ports.RoutePlanCache
	policy     session.Policy
	logger     *slog.Logger
}

// NewCompositionRoot assembles the root from the configured adapters.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	oracle ports.DispatchOracle,
	publisher ports.EventPublisher,
	cache ports.RoutePlanCache,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		oracle:     oracle,
		publisher:  publisher,
		cache:      cache,
		policy:     session.Policy{AllowImpersonatedWrites: config.AllowImpersonatedWrites},
		logger:     logger,
	}
}

// Policy returns the deployment authorization switches.
func (c *CompositionRoot) Policy() session.Policy {
	return c.policy
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) storeUoWFactory() commands.StoreUoWFactory {
	return FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) storeOrderUoWFactory() commands.StoreOrderUoWFactory {
	return FuncStoreOrderUoWFactory(func() commands.StoreOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.storeOrderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateStoreCommandHandler() commands.CreateStoreCommandHandler {
	return commands.NewCreateStoreCommandHandler(c.storeUoWFactory())
}

func (c *CompositionRoot) CreateToggleStoreLinkCommandHandler() commands.ToggleStoreLinkCommandHandler {
	return commands.NewToggleStoreLinkCommandHandler(c.storeUoWFactory())
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.crossUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateVoiceDispatchCommandHandler() commands.VoiceDispatchCommandHandler {
	return commands.NewVoiceDispatchCommandHandler(c.crossUoWFactory(), c.oracle, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDispatchPendingCommandHandler() commands.DispatchPendingCommandHandler {
	return commands.NewDispatchPendingCommandHandler(c.crossUoWFactory(), c.oracle, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.policy, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.crossUoWFactory(), c.policy, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateSetCourierShiftCommandHandler() commands.SetCourierShiftCommandHandler {
	return commands.NewSetCourierShiftCommandHandler(c.courierUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateMoveCouriersCommandHandler() commands.MoveCouriersCommandHandler {
	drift := jobs.NewRandomDrift(jobs.NewRandomSource(), courierDriftDegrees)
	return commands.NewMoveCouriersCommandHandler(c.courierUoWFactory(), drift)
}

func (c *CompositionRoot) CreateRequestAdvanceCommandHandler() commands.RequestAdvanceCommandHandler {
	return commands.NewRequestAdvanceCommandHandler(c.courierUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateResolveAdvanceCommandHandler() commands.ResolveAdvanceCommandHandler {
	return commands.NewResolveAdvanceCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateChangePayPolicyCommandHandler() commands.ChangePayPolicyCommandHandler {
	return commands.NewChangePayPolicyCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateRenameCourierCommandHandler() commands.RenameCourierCommandHandler {
	return commands.NewRenameCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCourierCommandHandler() commands.DeleteCourierCommandHandler {
	return commands.NewDeleteCourierCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoreDemandQueryHandler() queries.GetStoreDemandQueryHandler {
	return queries.NewGetStoreDemandQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRoutePlanQueryHandler() (queries.GetRoutePlanQueryHandler, error) {
	uow := c.uowFactory.Create()
	return queries.NewGetRoutePlanQueryHandler(
		uow.CourierRepository(),
		uow.OrderRepository(),
		c.cache,
		c.oracle,
		services.NewRoutePlanner(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetRestockForecastQueryHandler() (queries.GetRestockForecastQueryHandler, error) {
	uow := c.uowFactory.Create()
	return queries.NewGetRestockForecastQueryHandler(
		uow.ProductRepository(), c.oracle, c.logger)
}

// CreateServerHandlers bundles every use case for the HTTP server.
func (c *CompositionRoot) CreateServerHandlers() (httpin.Handlers, error) {
	routePlan, err := c.CreateGetRoutePlanQueryHandler()
	if err != nil {
		return httpin.Handlers{}, err
	}

	restock, err := c.CreateGetRestockForecastQueryHandler()
	if err != nil {
		return httpin.Handlers{}, err
	}

	return httpin.Handlers{
		CreateCourier:    c.CreateCreateCourierCommandHandler(),
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		CreateStore:      c.CreateCreateStoreCommandHandler(),
		ToggleStoreLink:  c.CreateToggleStoreLinkCommandHandler(),
		AssignOrder:      c.CreateAssignOrderCommandHandler(),
		VoiceDispatch:    c.CreateVoiceDispatchCommandHandler(),
		DispatchPending:  c.CreateDispatchPendingCommandHandler(),
		AcceptOrder:      c.CreateAcceptOrderCommandHandler(),
		CompleteDelivery: c.CreateCompleteDeliveryCommandHandler(),
		SetCourierShift:  c.CreateSetCourierShiftCommandHandler(),
		RequestAdvance:   c.CreateRequestAdvanceCommandHandler(),
		ResolveAdvance:   c.CreateResolveAdvanceCommandHandler(),
		ChangePayPolicy:  c.CreateChangePayPolicyCommandHandler(),
		RenameCourier:    c.CreateRenameCourierCommandHandler(),
		DeleteCourier:    c.CreateDeleteCourierCommandHandler(),

		GetAllCouriers:     c.CreateGetAllCouriersQueryHandler(),
		GetActiveOrders:    c.CreateGetActiveOrdersQueryHandler(),
		GetStoreDemand:     c.CreateGetStoreDemandQueryHandler(),
		GetRoutePlan:       routePlan,
		GetRestockForecast: restock,
	}, nil
}

// CreateJobManager wires the background simulation jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	uow := c.uowFactory.Create()
	return jobs.NewJobManager(
		c.CreateCreateOrderCommandHandler(),
		c.CreateMoveCouriersCommandHandler(),
		c.CreateDispatchPendingCommandHandler(),
		uow.StoreRepository(),
		jobs.NewRandomSource(),
		c.logger,
	)
}

// Func adapters let the narrowed unit of work factory interfaces share the
// single gorm factory.

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStoreUoWFactory func() commands.StoreUoW

func (f FuncStoreUoWFactory) Create() commands.StoreUoW {
	return f()
}

type FuncStoreOrderUoWFactory func() commands.StoreOrderUoW

func (f FuncStoreOrderUoWFactory) Create() commands.StoreOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
