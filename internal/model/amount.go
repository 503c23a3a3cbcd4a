package model

import "github.com/shopspring/decimal"

// Amount is an exact fixed-point monetary value. Binary floating point is
// never used for money anywhere in the application.
type Amount = decimal.Decimal

// NewAmount builds an Amount from a decimal string such as "1500.50".
func NewAmount(s string) (Amount, error) {
	return decimal.NewFromString(s)
}

// MustAmount builds an Amount from a literal known to be valid.
func MustAmount(s string) Amount {
	return decimal.RequireFromString(s)
}
