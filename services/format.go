// Package services provides document projection and rendering for quotes.
package services

import (
	"fmt"
	"strconv"
)

// FormatMoney formats a currency amount with a dollar sign and exactly
// two decimal places. Every currency figure in a document goes through
// this one function so rounding stays consistent across the whole page.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$ %.2f", amount)
}

// FormatQty formats a quantity without forcing decimal places: whole
// numbers print bare, fractional quantities keep their digits.
func FormatQty(qty float64) string {
	return strconv.FormatFloat(qty, 'f', -1, 64)
}

// FormatPercent formats a rate like "12%" or "12.5%".
func FormatPercent(percent float64) string {
	return strconv.FormatFloat(percent, 'f', -1, 64) + "%"
}
