// Package format renders monetary amounts for user-facing messages. Display
// formatting only; internal arithmetic stays in plain float64.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// INR formats an amount as Indian rupees with locale digit grouping and no
// fraction digits, e.g. 55699 -> "₹55,699".
func INR(amount float64) string {
	return printer.Sprintf("₹%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}
