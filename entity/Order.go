package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user"`
	User   User `json:"-"`

	DeliveryCrewID *uint `gorm:"index" json:"delivery_crew"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID;constraint:OnDelete:SET NULL" json:"-"`

	Status OrderStatus     `gorm:"size:32;not null;default:pending;index" json:"status"`
	Total  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Date   time.Time       `gorm:"index;not null" json:"date"`

	// preload only on the detail endpoint
	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}
