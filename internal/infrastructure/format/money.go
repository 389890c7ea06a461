// Package format agrupa helpers de presentación compartidos por los
// generadores de documentos (PDF, Excel).
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var moneyPrinter = message.NewPrinter(language.English)

// Money formatea un monto con separador de miles y dos decimales.
// Ej: 1234567.5 → "1,234,567.50"
func Money(d decimal.Decimal) string {
	f, _ := d.Float64()
	return moneyPrinter.Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// USD antepone el símbolo de dólar al monto formateado.
func USD(d decimal.Decimal) string {
	return "$" + Money(d)
}
