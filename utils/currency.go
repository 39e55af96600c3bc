package utils

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency renders v as Brazilian reais, e.g. "R$ 1.234,50".
func FormatCurrency(v float64) string {
	return printer.Sprintf("R$ %.2f", v)
}

// FormatPercent renders v with one decimal and a percent sign.
func FormatPercent(v float64) string {
	return printer.Sprintf("%.1f%%", v)
}

// FormatNumber renders v with two decimals, e.g. "12,50".
func FormatNumber(v float64) string {
	return printer.Sprintf("%.2f", v)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
