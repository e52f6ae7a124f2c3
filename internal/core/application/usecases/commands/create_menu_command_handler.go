package commands

import (
	"context"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"
)

// CreateMenuCommandHandler handles menu creation.
//
// Validation runs fully before the menu is persisted: the menu group must
// exist, every requested product id must resolve (checked as a set), the menu
// price must not exceed the derived total of its products at current prices,
// and the name must pass the external profanity check.
type CreateMenuCommandHandler struct {
	uowFactory       MenuUoWFactory
	profanityChecker ports.ProfanityChecker
}

// NewCreateMenuCommandHandler creates a handler for menu creation operations.
func NewCreateMenuCommandHandler(uowFactory MenuUoWFactory, profanityChecker ports.ProfanityChecker) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{
		uowFactory:       uowFactory,
		profanityChecker: profanityChecker,
	}
}

// Handle processes the menu creation command and returns the created menu
// with its product quantities frozen.
func (h CreateMenuCommandHandler) Handle(ctx context.Context, cmd CreateMenuCommand) (*menu.Menu, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.MenuGroupRepository().Get(ctx, cmd.MenuGroupID()); err != nil {
		return nil, err
	}

	newMenu, err := menu.NewMenu(
		kernel.NewUUID(),
		cmd.Name(),
		cmd.Price(),
		cmd.MenuGroupID(),
		cmd.Displayed(),
		cmd.MenuProducts(),
	)
	if err != nil {
		return nil, err
	}

	lookup, err := loadProductLookup(ctx, uow.ProductRepository(), newMenu)
	if err != nil {
		return nil, err
	}
	for _, mp := range cmd.MenuProducts() {
		if _, ok := lookup[mp.ProductID()]; !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("menuProducts",
				fmt.Errorf("product %s does not exist", mp.ProductID()))
		}
	}

	total, err := services.NewMenuPricing().DerivedTotal(newMenu, lookup)
	if err != nil {
		return nil, err
	}
	if cmd.Price().GreaterThan(total) {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s exceeds menu products total %s", cmd.Price(), total))
	}

	profane, err := h.profanityChecker.ContainsProfanity(ctx, cmd.Name())
	if err != nil {
		return nil, fmt.Errorf("profanity check failed: %w", err)
	}
	if profane {
		return nil, errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("%q contains profanity", cmd.Name()))
	}

	if err = uow.MenuRepository().Add(ctx, newMenu); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newMenu, nil
}
