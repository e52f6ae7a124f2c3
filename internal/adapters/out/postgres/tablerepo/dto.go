// Package tablerepo provides data transfer objects and mapping functions for
// order table persistence.
package tablerepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/ordertable"

	"github.com/google/uuid"
)

// OrderTableDTO represents the database structure for persisting order table aggregates.
type OrderTableDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	NumberOfGuests int       `gorm:"not null"`
	Occupied       bool      `gorm:"not null"`
}

// TableName specifies the database table name for order table entities.
func (OrderTableDTO) TableName() string {
	return "order_tables"
}

// fromDomain converts an order table domain aggregate to its database representation.
func fromDomain(table *ordertable.OrderTable) OrderTableDTO {
	return OrderTableDTO{
		ID:             table.ID().Bytes(),
		Name:           table.Name(),
		NumberOfGuests: table.NumberOfGuests(),
		Occupied:       table.IsOccupied(),
	}
}

// toDomain converts a database DTO to an order table domain aggregate.
func toDomain(dto OrderTableDTO) (*ordertable.OrderTable, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return ordertable.RestoreOrderTable(id, dto.Name, dto.Occupied, dto.NumberOfGuests)
}
