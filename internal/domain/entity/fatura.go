package entity

import "github.com/shopspring/decimal"

// Códigos de status da fatura (um caractere, definidos pelo backend).
// A única transição permitida é Aberta/Atrasada → Paga, irreversível, e sempre
// registrada pelo backend via registro de pagamento.
const (
	StatusFaturaPaga     = "P"
	StatusFaturaAtrasada = "A"
	StatusFaturaAberta   = "B"
)

// Fatura representa um valor devido por um cliente. ClienteID referencia o
// agregado Cliente (dono); ClienteNome é desnormalizado pelo backend apenas para
// exibição. DataPagamento só está presente quando Status == StatusFaturaPaga.
type Fatura struct {
	ID             string
	ClienteID      string
	ClienteNome    string
	Valor          decimal.Decimal
	DataVencimento Data
	Status         string
	DataPagamento  Data
}

// Paga informa se a fatura já foi quitada.
func (f *Fatura) Paga() bool { return f.Status == StatusFaturaPaga }

// RotuloStatusFatura mapeia o código de status para o rótulo de exibição.
// Mapeamento total: código desconhecido vira "Desconhecido", nunca falha.
func RotuloStatusFatura(codigo string) string {
	switch codigo {
	case StatusFaturaPaga:
		return "Paga"
	case StatusFaturaAtrasada:
		return "Atrasada"
	case StatusFaturaAberta:
		return "Aberta"
	default:
		return "Desconhecido"
	}
}
