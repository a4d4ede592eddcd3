package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Title      string          `gorm:"uniqueIndex;size:255;not null" json:"title"`
	Price      decimal.Decimal `gorm:"type:decimal(6,2);not null;index" json:"price"`
	Featured   bool            `gorm:"not null;default:false;index" json:"featured"`
	CategoryID uint            `gorm:"not null;index" json:"category"`
	Category   Category        `json:"-"` // preload only where the title is shown

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
