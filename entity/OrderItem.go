package entity

import (
	"github.com/shopspring/decimal"
)

// OrderItem is a snapshot of a cart line taken at checkout; it is never
// updated afterwards.
type OrderItem struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	OrderID    uint            `gorm:"not null;uniqueIndex:idx_order_menuitem" json:"order"`
	MenuItemID uint            `gorm:"not null;uniqueIndex:idx_order_menuitem" json:"menuitem"`
	MenuItem   MenuItem        `json:"-"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"unit_price"`
	Price      decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"price"`
}
