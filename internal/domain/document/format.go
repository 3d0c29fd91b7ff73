package document

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Presentation-locale formatting. Monetary values use pt-PT separators with a
// trailing euro sign; dates render long-form. The engine's numeric contracts
// never depend on these — swapping the locale only changes display.

var ptPrinter = message.NewPrinter(language.EuropeanPortuguese)

var ptMonths = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatCurrency renders a monetary value as e.g. "4 500,00 €".
func FormatCurrency(v float64) string {
	return ptPrinter.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	)) + " €"
}

// FormatDate renders t as a long-form calendar date, e.g. "05 de setembro de 2026".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%02d de %s de %d", t.Day(), ptMonths[t.Month()-1], t.Year())
}
