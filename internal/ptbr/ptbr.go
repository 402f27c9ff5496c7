// Package ptbr formats dates and currency the way the console displays
// them: Brazilian Portuguese locale throughout.
package ptbr

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Currency renders a monetary amount as "R$ 1.234,56".
func Currency(v float64) string {
	return printer.Sprintf("R$ %v", number.Decimal(v, number.Scale(2)))
}

// DateTime renders a timestamp as "02/01/2006 15:04".
func DateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// Date renders a date as "02/01/2006".
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}
