package domain

import "github.com/shopspring/decimal"

// FoodItem is one catalog record. ID is a 5-digit numeric string assigned
// at creation and never changed afterwards.
type FoodItem struct {
	ID              string
	Name            string
	QuantityUnit    string // portion descriptor such as "250gm", not a count
	Price           decimal.Decimal
	DiscountPercent decimal.Decimal
	Stock           int
}
