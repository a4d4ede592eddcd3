package services

import (
	"github.com/Antdol/LittleLemonAPI/pkg/apperr"

	"github.com/shopspring/decimal"
)

// MaxQuantity caps one cart line.
const MaxQuantity = 1000

// Bounds of stored amounts. Unit prices are decimal(6,2), line prices
// decimal(8,2) and order totals decimal(10,2).
var (
	MinPrice      = decimal.NewFromInt(1)
	MaxPrice      = decimal.RequireFromString("9999.99")
	MaxLinePrice  = decimal.RequireFromString("999999.99")
	MaxOrderTotal = decimal.RequireFromString("99999999.99")
)

func ValidatePrice(p decimal.Decimal) error {
	if p.LessThan(MinPrice) {
		return apperr.Validation("price must be at least %s", MinPrice.StringFixed(2))
	}
	if p.GreaterThan(MaxPrice) {
		return apperr.Validation("price must be at most %s", MaxPrice.StringFixed(2))
	}
	if !p.Equal(p.Round(2)) {
		return apperr.Validation("price must have at most 2 decimal places")
	}
	return nil
}

func LinePrice(qty int, unit decimal.Decimal) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(qty)))
}

func ValidateQuantity(qty int) error {
	if qty < 1 {
		return apperr.Validation("quantity must be at least 1")
	}
	if qty > MaxQuantity {
		return apperr.Validation("quantity must be at most %d", MaxQuantity)
	}
	return nil
}
