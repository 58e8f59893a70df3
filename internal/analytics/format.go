package analytics

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatAmount renders an amount with its currency symbol and es-PY digit
// grouping for display in insights. Unknown currency codes fall back to a
// plain formatted number.
func FormatAmount(amount decimal.Decimal, code string) string {
	printer := message.NewPrinter(language.MustParse("es-PY"))

	value, _ := amount.Float64()

	unit, err := currency.ParseISO(code)
	if err != nil {
		return printer.Sprint(number.Decimal(value, number.MaxFractionDigits(2)))
	}

	scale, _ := currency.Cash.Rounding(unit)
	return printer.Sprintf("%v%v", currency.Symbol(unit), number.Decimal(value, number.MaxFractionDigits(scale)))
}
