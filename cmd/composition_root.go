package cmd

import (
	"workshop/internal/adapters/out/postgres"
	"workshop/internal/adapters/out/postgres/counterrepo"
	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	orderNumbers *services.OrderNumbers
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) (CompositionRoot, error) {
	orderNumbers, err := services.NewOrderNumbers(counterrepo.NewGormCounterStore(gormDB))
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		orderNumbers: orderNumbers,
	}, nil
}

func (c *CompositionRoot) CreateCreateServiceOrderCommandHandler() commands.CreateServiceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateServiceOrderCommandHandler(f, c.orderNumbers)
}

func (c *CompositionRoot) CreateUpdateServiceOrderCommandHandler() commands.UpdateServiceOrderCommandHandler {
	return commands.NewUpdateServiceOrderCommandHandler(c.serviceOrderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteServiceOrderCommandHandler() commands.DeleteServiceOrderCommandHandler {
	return commands.NewDeleteServiceOrderCommandHandler(c.serviceOrderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.serviceOrderUoWFactory())
}

func (c *CompositionRoot) CreateChangeFinancialStatusCommandHandler() commands.ChangeFinancialStatusCommandHandler {
	return commands.NewChangeFinancialStatusCommandHandler(c.serviceOrderUoWFactory())
}

func (c *CompositionRoot) CreateSetOrderNumberSequenceCommandHandler() commands.SetOrderNumberSequenceCommandHandler {
	return commands.NewSetOrderNumberSequenceCommandHandler(c.orderNumbers)
}

func (c *CompositionRoot) CreateGetServiceOrderQueryHandler() queries.GetServiceOrderQueryHandler {
	return queries.NewGetServiceOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetServiceOrderByNumberQueryHandler() queries.GetServiceOrderByNumberQueryHandler {
	return queries.NewGetServiceOrderByNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListServiceOrdersQueryHandler() queries.ListServiceOrdersQueryHandler {
	return queries.NewListServiceOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchServiceOrdersQueryHandler() queries.SearchServiceOrdersQueryHandler {
	return queries.NewSearchServiceOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueCandidatesQueryHandler() queries.GetOverdueCandidatesQueryHandler {
	return queries.NewGetOverdueCandidatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) serviceOrderUoWFactory() commands.ServiceOrderUoWFactory {
	return FuncServiceOrderUoWFactory(func() commands.ServiceOrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncServiceOrderUoWFactory func() commands.ServiceOrderUoW

func (f FuncServiceOrderUoWFactory) Create() commands.ServiceOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
