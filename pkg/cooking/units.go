package cooking

import (
	"strings"
)

const (
	UnitKilogram   = "kg"
	UnitGram       = "g"
	UnitLiter      = "L"
	UnitMilliliter = "ml"
	UnitPiece      = "pcs"
)

// NormalizeName is the canonical key both the consumption engine and the
// recommendation matcher use to decide whether two free-text names refer to
// the same ingredient.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Normalize converts a quantity to the common base unit: kilograms become
// grams and liters become milliliters, everything else passes through.
func Normalize(quantity float64, unit string) (float64, string) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case UnitKilogram:
		return quantity * 1000, UnitGram
	case "l":
		return quantity * 1000, UnitMilliliter
	default:
		return quantity, strings.ToLower(strings.TrimSpace(unit))
	}
}

// ForStorage re-normalizes a base-unit quantity for the persisted row: 1000 g
// or more rolls over to kg, 1000 ml or more rolls over to L. The rollover is
// applied to both dimensions.
func ForStorage(quantity float64, unit string) (float64, string) {
	switch unit {
	case UnitGram:
		if quantity >= 1000 {
			return quantity / 1000, UnitKilogram
		}
	case UnitMilliliter:
		if quantity >= 1000 {
			return quantity / 1000, UnitLiter
		}
	}
	return quantity, unit
}
