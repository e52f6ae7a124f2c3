package commands

import (
	"context"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"
)

// CreateProductCommandHandler handles the business logic for product creation.
// Screens the product name through the external profanity checker before
// anything is persisted; a checker failure fails the whole operation.
type CreateProductCommandHandler struct {
	uowFactory       ProductUoWFactory
	profanityChecker ports.ProfanityChecker
}

// NewCreateProductCommandHandler creates a handler for product creation operations.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory, profanityChecker ports.ProfanityChecker) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory:       uowFactory,
		profanityChecker: profanityChecker,
	}
}

// Handle processes the product creation command and returns the created product.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	profane, err := h.profanityChecker.ContainsProfanity(ctx, cmd.Name())
	if err != nil {
		return nil, fmt.Errorf("profanity check failed: %w", err)
	}
	if profane {
		return nil, errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("%q contains profanity", cmd.Name()))
	}

	newProduct, err := product.NewProduct(kernel.NewUUID(), cmd.Name(), cmd.Price())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newProduct, nil
}
