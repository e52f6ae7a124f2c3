package commands_test

import (
	"context"
	"testing"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateMenuCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	group, err := menugroup.NewMenuGroup(kernel.NewUUID(), "Chicken Specials")
	require.NoError(t, err)

	newCmd := func(t *testing.T, price int64, productID kernel.UUID) commands.CreateMenuCommand {
		t.Helper()
		mp, err := menu.NewMenuProduct(productID, 2)
		require.NoError(t, err)
		cmd, err := commands.NewCreateMenuCommand("Two Fried Chickens", decimal.NewFromInt(price),
			group.ID(), true, []menu.MenuProduct{mp})
		require.NoError(t, err)
		return cmd
	}

	t.Run("should create menu priced within product total", func(t *testing.T) {
		p := catalogProduct(t, 16000)
		cmd := newCmd(t, 19000, p.ID())

		groupRepo := new(MockMenuGroupRepository)
		productRepo := new(MockProductRepository)
		menuRepo := new(MockMenuRepository)
		checker := new(MockProfanityChecker)
		uow := new(MockUnitOfWork)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("MenuGroupRepository").Return(groupRepo).Once(),
			groupRepo.On("Get", mock.Anything, group.ID()).Return(group, nil).Once(),
			uow.On("ProductRepository").Return(productRepo).Once(),
			productRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{p.ID()}).Return([]*product.Product{p}, nil).Once(),
			checker.On("ContainsProfanity", ctx, "Two Fried Chickens").Return(false, nil).Once(),
			uow.On("MenuRepository").Return(menuRepo).Once(),
			menuRepo.On("Add", mock.Anything, mock.AnythingOfType("*menu.Menu")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCreateMenuCommandHandler(MockMenuUoWFactory{uow: uow}, checker)
		created, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "Two Fried Chickens", created.Name())
		assert.True(t, created.IsDisplayed())
		groupRepo.AssertExpectations(t)
		productRepo.AssertExpectations(t)
		menuRepo.AssertExpectations(t)
		checker.AssertExpectations(t)
	})

	t.Run("should reject menu priced above product total", func(t *testing.T) {
		p := catalogProduct(t, 16000)
		cmd := newCmd(t, 33000, p.ID())

		groupRepo := new(MockMenuGroupRepository)
		productRepo := new(MockProductRepository)
		checker := new(MockProfanityChecker)
		uow := new(MockUnitOfWork)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("MenuGroupRepository").Return(groupRepo).Once(),
			groupRepo.On("Get", mock.Anything, group.ID()).Return(group, nil).Once(),
			uow.On("ProductRepository").Return(productRepo).Once(),
			productRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{p.ID()}).Return([]*product.Product{p}, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCreateMenuCommandHandler(MockMenuUoWFactory{uow: uow}, checker)
		created, err := h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Nil(t, created)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		checker.AssertNotCalled(t, "ContainsProfanity", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should reject menu referencing unknown product", func(t *testing.T) {
		cmd := newCmd(t, 19000, kernel.NewUUID())

		groupRepo := new(MockMenuGroupRepository)
		productRepo := new(MockProductRepository)
		uow := new(MockUnitOfWork)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("MenuGroupRepository").Return(groupRepo).Once(),
			groupRepo.On("Get", mock.Anything, group.ID()).Return(group, nil).Once(),
			uow.On("ProductRepository").Return(productRepo).Once(),
			productRepo.On("GetAllByIDs", mock.Anything, mock.Anything).Return([]*product.Product{}, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCreateMenuCommandHandler(MockMenuUoWFactory{uow: uow}, new(MockProfanityChecker))
		_, err := h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject menu in unknown group", func(t *testing.T) {
		p := catalogProduct(t, 16000)
		cmd := newCmd(t, 19000, p.ID())

		groupRepo := new(MockMenuGroupRepository)
		uow := new(MockUnitOfWork)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("MenuGroupRepository").Return(groupRepo).Once(),
			groupRepo.On("Get", mock.Anything, group.ID()).
				Return(nil, errs.NewObjectNotFoundError("menuGroup", group.ID().String())).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCreateMenuCommandHandler(MockMenuUoWFactory{uow: uow}, new(MockProfanityChecker))
		_, err := h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject profane menu name", func(t *testing.T) {
		p := catalogProduct(t, 16000)
		cmd := newCmd(t, 19000, p.ID())

		groupRepo := new(MockMenuGroupRepository)
		productRepo := new(MockProductRepository)
		menuRepo := new(MockMenuRepository)
		checker := new(MockProfanityChecker)
		uow := new(MockUnitOfWork)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("MenuGroupRepository").Return(groupRepo).Once(),
			groupRepo.On("Get", mock.Anything, group.ID()).Return(group, nil).Once(),
			uow.On("ProductRepository").Return(productRepo).Once(),
			productRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{p.ID()}).Return([]*product.Product{p}, nil).Once(),
			checker.On("ContainsProfanity", ctx, "Two Fried Chickens").Return(true, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCreateMenuCommandHandler(MockMenuUoWFactory{uow: uow}, checker)
		_, err := h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		menuRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}
