// Package menurepo provides data transfer objects and mapping functions for
// menu persistence. A menu row owns its menu_products child rows; the child
// rows are immutable after creation, only the menu's price and display flag
// change.
package menurepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuDTO represents the database structure for persisting menu aggregates.
type MenuDTO struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name         string           `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal  `gorm:"type:numeric(19,2);not null"`
	MenuGroupID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	Displayed    bool             `gorm:"not null"`
	MenuProducts []MenuProductDTO `gorm:"foreignKey:MenuID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for menu entities.
func (MenuDTO) TableName() string {
	return "menus"
}

// MenuProductDTO represents one product line of a menu.
type MenuProductDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	MenuID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int64     `gorm:"not null"`
}

// TableName specifies the database table name for menu product lines.
func (MenuProductDTO) TableName() string {
	return "menu_products"
}

// fromDomain converts a menu domain aggregate to its database representation.
func fromDomain(menu *menu.Menu) MenuDTO {
	menuProducts := make([]MenuProductDTO, 0, len(menu.MenuProducts()))
	for _, mp := range menu.MenuProducts() {
		menuProducts = append(menuProducts, MenuProductDTO{
			MenuID:    menu.ID().Bytes(),
			ProductID: mp.ProductID().Bytes(),
			Quantity:  mp.Quantity(),
		})
	}

	return MenuDTO{
		ID:           menu.ID().Bytes(),
		Name:         menu.Name(),
		Price:        menu.Price().Amount(),
		MenuGroupID:  menu.MenuGroupID().Bytes(),
		Displayed:    menu.IsDisplayed(),
		MenuProducts: menuProducts,
	}
}

// toDomain converts a database DTO to a menu domain aggregate.
func toDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	groupID, err := kernel.UUIDFromBytes(dto.MenuGroupID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	menuProducts := make([]menu.MenuProduct, 0, len(dto.MenuProducts))
	for _, mpDTO := range dto.MenuProducts {
		productID, idErr := kernel.UUIDFromBytes(mpDTO.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}

		mp, mpErr := menu.NewMenuProduct(productID, mpDTO.Quantity)
		if mpErr != nil {
			return nil, mpErr
		}
		menuProducts = append(menuProducts, mp)
	}

	return menu.RestoreMenu(id, dto.Name, price, groupID, dto.Displayed, menuProducts)
}
