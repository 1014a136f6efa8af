package document

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

var months = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// formatCurrency renders v as Brazilian reais, e.g. "R$ 1.500,00".
func formatCurrency(v float64) string {
	return "R$ " + printer.Sprint(number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// formatDate renders a calendar date as dd/mm/yyyy without zone conversion.
func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// formatDateLong renders "14 de outubro de 2026".
func formatDateLong(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), months[t.Month()-1], t.Year())
}
