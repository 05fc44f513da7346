package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	projection *queries.StatsProjection
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	uowFactory := *postgres.NewGormUnitOfWorkFactory(gormDB)
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: uowFactory,
		projection: queries.NewStatsProjection(uowFactory.Create().OrderRepository()),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDeliveryPersonCommandHandler() commands.AssignDeliveryPersonCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDeliveryPersonCommandHandler(f)
}

func (c *CompositionRoot) CreateReassignDeliveryPersonCommandHandler() commands.ReassignDeliveryPersonCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReassignDeliveryPersonCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryPersonCommandHandler() commands.CreateDeliveryPersonCommandHandler {
	var f commands.DeliveryPersonUoWFactory = FuncDeliveryPersonUoWFactory(func() commands.DeliveryPersonUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryPersonCommandHandler(f)
}

func (c *CompositionRoot) CreateSetDeliveryPersonActivityCommandHandler() commands.SetDeliveryPersonActivityCommandHandler {
	var f commands.DeliveryPersonUoWFactory = FuncDeliveryPersonUoWFactory(func() commands.DeliveryPersonUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetDeliveryPersonActivityCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveAssignmentsQueryHandler() queries.GetActiveAssignmentsQueryHandler {
	return queries.NewGetActiveAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryPersonStatsQueryHandler() queries.GetDeliveryPersonStatsQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetDeliveryPersonStatsQueryHandler(
		uow.OrderRepository(), uow.DeliveryPersonRepository())
}

func (c *CompositionRoot) CreateGetOverallStatsQueryHandler() queries.GetOverallStatsQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetOverallStatsQueryHandler(
		uow.OrderRepository(), uow.DeliveryPersonRepository())
}

func (c *CompositionRoot) StatsProjection() *queries.StatsProjection {
	return c.projection
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.projection,
		c.CreateGetActiveAssignmentsQueryHandler(),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryPersonUoWFactory func() commands.DeliveryPersonUoW

func (f FuncDeliveryPersonUoWFactory) Create() commands.DeliveryPersonUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
