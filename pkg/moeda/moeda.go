// Package moeda formata valores monetários em reais para exibição.
package moeda

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// impressora aplica as convenções pt-BR de milhar e decimal ("R$ 1.500,50").
var impressora = message.NewPrinter(language.BrazilianPortuguese)

// FormatarBRL formata um valor monetário em reais com duas casas decimais.
func FormatarBRL(valor decimal.Decimal) string {
	f, _ := valor.Round(2).Float64()
	return impressora.Sprintf("R$ %.2f", f)
}
