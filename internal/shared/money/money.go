// Package money formats integer cent amounts for display.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const CurrencyBRL = "BRL"

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders cents as "R$ 1.234,56".
func FormatBRL(cents int64) string {
	return "R$ " + ptBR.Sprintf("%.2f", float64(cents)/100)
}

// Format renders cents in the given currency. Unknown currencies fall back to
// an ISO code prefix with pt-BR separators.
func Format(cents int64, currency string) string {
	if currency == "" || currency == CurrencyBRL {
		return FormatBRL(cents)
	}
	return currency + " " + ptBR.Sprintf("%.2f", float64(cents)/100)
}
