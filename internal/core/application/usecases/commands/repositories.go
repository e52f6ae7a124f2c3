// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence. Each handler executes as a single unit of work, so all
// reads, validations, and writes of an operation commit atomically.
package commands

import (
	"context"

	"kitchenpos/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler declares the narrowest interface covering the repositories it
// touches, keeping cross-aggregate access visible in the handler's signature.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// MenuGroupRepoFactory provides access to the menu group repository within a transaction.
	MenuGroupRepoFactory interface {
		MenuGroupRepository() ports.MenuGroupRepository
	}

	// MenuRepoFactory provides access to the menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// OrderTableRepoFactory provides access to the order table repository within a transaction.
	OrderTableRepoFactory interface {
		OrderTableRepository() ports.OrderTableRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// MenuGroupUoW manages transactions for menu-group-only operations.
	MenuGroupUoW interface {
		TxManager
		MenuGroupRepoFactory
	}

	// MenuGroupUoWFactory creates new menu group unit of work instances.
	MenuGroupUoWFactory interface {
		Create() MenuGroupUoW
	}

	// CatalogUoW manages transactions spanning menus and products.
	// Used by menu pricing operations and the product price-change cascade.
	CatalogUoW interface {
		TxManager
		ProductRepoFactory
		MenuRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// MenuUoW manages transactions for menu creation, which reads menu groups
	// and products alongside writing the menu.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
		MenuGroupRepoFactory
		ProductRepoFactory
	}

	// MenuUoWFactory creates new menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// TableUoW manages transactions for table-only operations.
	TableUoW interface {
		TxManager
		OrderTableRepoFactory
	}

	// TableUoWFactory creates new table unit of work instances.
	TableUoWFactory interface {
		Create() TableUoW
	}

	// TableOrderUoW manages transactions coordinating tables and orders:
	// clearing a table checks for open orders, and completing an eat-in order
	// may free its table.
	TableOrderUoW interface {
		TxManager
		OrderTableRepoFactory
		OrderRepoFactory
	}

	// TableOrderUoWFactory creates new table/order unit of work instances.
	TableOrderUoWFactory interface {
		Create() TableOrderUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order placement, which reads
	// menus and tables alongside writing the order.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
		OrderTableRepoFactory
	}

	// CreateOrderUoWFactory creates new order placement unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}
)
