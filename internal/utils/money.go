package utils

import "fmt"

// FormatMoney keeps consistent two-decimal formatting for valor fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
