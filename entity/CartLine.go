package entity

import (
	"github.com/shopspring/decimal"
)

// CartLine is one (user, menu item) row of a cart. Price is always
// Quantity x UnitPrice at the time of the last write.
type CartLine struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	UserID     uint            `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"user"`
	User       User            `json:"-"`
	MenuItemID uint            `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"menuitem"`
	MenuItem   MenuItem        `json:"-"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"unit_price"`
	Price      decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"price"`
}
