package cmd

import (
	"log/slog"

	httpin "kitchenpos/internal/adapters/in/http"
	"kitchenpos/internal/adapters/out/client"
	"kitchenpos/internal/adapters/out/postgres"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All handlers share
// one unit of work factory; external collaborators are constructed once.
type CompositionRoot struct {
	gormDB             *gorm.DB
	uowFactory         postgres.GormUnitOfWorkFactory
	profanityChecker   ports.ProfanityChecker
	deliveryDispatcher ports.DeliveryDispatcher
	logger             *slog.Logger
}

// NewCompositionRoot creates the application object graph from configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:             gormDB,
		uowFactory:         *postgres.NewGormUnitOfWorkFactory(gormDB),
		profanityChecker:   client.NewPurgoMalumClient(config.ProfanityServiceURL, nil),
		deliveryDispatcher: client.NewKitchenRidersClient(config.KitchenRidersURL, nil),
		logger:             logger,
	}
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f, c.profanityChecker)
}

func (c *CompositionRoot) CreateChangeProductPriceCommandHandler() commands.ChangeProductPriceCommandHandler {
	return commands.NewChangeProductPriceCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateMenuGroupCommandHandler() commands.CreateMenuGroupCommandHandler {
	var f commands.MenuGroupUoWFactory = FuncMenuGroupUoWFactory(func() commands.MenuGroupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuGroupCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuCommandHandler() commands.CreateMenuCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuCommandHandler(f, c.profanityChecker)
}

func (c *CompositionRoot) CreateChangeMenuPriceCommandHandler() commands.ChangeMenuPriceCommandHandler {
	return commands.NewChangeMenuPriceCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDisplayMenuCommandHandler() commands.DisplayMenuCommandHandler {
	return commands.NewDisplayMenuCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateHideMenuCommandHandler() commands.HideMenuCommandHandler {
	return commands.NewHideMenuCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateHideOverpricedMenusCommandHandler() commands.HideOverpricedMenusCommandHandler {
	return commands.NewHideOverpricedMenusCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderTableCommandHandler() commands.CreateOrderTableCommandHandler {
	return commands.NewCreateOrderTableCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateSitOrderTableCommandHandler() commands.SitOrderTableCommandHandler {
	return commands.NewSitOrderTableCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateClearOrderTableCommandHandler() commands.ClearOrderTableCommandHandler {
	return commands.NewClearOrderTableCommandHandler(c.tableOrderUoWFactory())
}

func (c *CompositionRoot) CreateChangeNumberOfGuestsCommandHandler() commands.ChangeNumberOfGuestsCommandHandler {
	return commands.NewChangeNumberOfGuestsCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.deliveryDispatcher)
}

func (c *CompositionRoot) CreateServeOrderCommandHandler() commands.ServeOrderCommandHandler {
	return commands.NewServeOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartOrderDeliveryCommandHandler() commands.StartOrderDeliveryCommandHandler {
	return commands.NewStartOrderDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderDeliveryCommandHandler() commands.CompleteOrderDeliveryCommandHandler {
	return commands.NewCompleteOrderDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.tableOrderUoWFactory())
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuGroupsQueryHandler() queries.GetMenuGroupsQueryHandler {
	return queries.NewGetMenuGroupsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenusQueryHandler() queries.GetMenusQueryHandler {
	return queries.NewGetMenusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTablesQueryHandler() queries.GetOrderTablesQueryHandler {
	return queries.NewGetOrderTablesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

// CreateServer assembles the HTTP server with every command and query handler.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateProductCommandHandler(),
		c.CreateChangeProductPriceCommandHandler(),
		c.CreateCreateMenuGroupCommandHandler(),
		c.CreateCreateMenuCommandHandler(),
		c.CreateChangeMenuPriceCommandHandler(),
		c.CreateDisplayMenuCommandHandler(),
		c.CreateHideMenuCommandHandler(),
		c.CreateCreateOrderTableCommandHandler(),
		c.CreateSitOrderTableCommandHandler(),
		c.CreateClearOrderTableCommandHandler(),
		c.CreateChangeNumberOfGuestsCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateServeOrderCommandHandler(),
		c.CreateStartOrderDeliveryCommandHandler(),
		c.CreateCompleteOrderDeliveryCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateGetProductsQueryHandler(),
		c.CreateGetMenuGroupsQueryHandler(),
		c.CreateGetMenusQueryHandler(),
		c.CreateGetOrderTablesQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
	)
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateHideOverpricedMenusCommandHandler(), c.logger)
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tableUoWFactory() commands.TableUoWFactory {
	return FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tableOrderUoWFactory() commands.TableOrderUoWFactory {
	return FuncTableOrderUoWFactory(func() commands.TableOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncMenuGroupUoWFactory func() commands.MenuGroupUoW

func (f FuncMenuGroupUoWFactory) Create() commands.MenuGroupUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}

type FuncTableOrderUoWFactory func() commands.TableOrderUoW

func (f FuncTableOrderUoWFactory) Create() commands.TableOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}
