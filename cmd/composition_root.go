package cmd

import (
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	var f commands.MenuItemUoWFactory = FuncMenuItemUoWFactory(func() commands.MenuItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	var f commands.MenuItemUoWFactory = FuncMenuItemUoWFactory(func() commands.MenuItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	var f commands.MenuItemUoWFactory = FuncMenuItemUoWFactory(func() commands.MenuItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByCustomerQueryHandler() queries.GetOrdersByCustomerQueryHandler {
	return queries.NewGetOrdersByCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllMenuItemsQueryHandler() queries.GetAllMenuItemsQueryHandler {
	return queries.NewGetAllMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuItemByIDQueryHandler() queries.GetMenuItemByIDQueryHandler {
	return queries.NewGetMenuItemByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuItemsByCategoryQueryHandler() queries.GetMenuItemsByCategoryQueryHandler {
	return queries.NewGetMenuItemsByCategoryQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuItemUoWFactory func() commands.MenuItemUoW

func (f FuncMenuItemUoWFactory) Create() commands.MenuItemUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
