package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundWithTwoDecimalPlace arredonda para centavos. NaN e infinitos são devolvidos sem alteração.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	rounded, _ := decimal.NewFromFloat(f).Round(2).Float64()
	return rounded
}
