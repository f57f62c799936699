package entity

import "github.com/shopspring/decimal"

// Códigos de status de bloqueio do cliente (um caractere, definidos pelo backend).
const (
	StatusClienteAtivo     = "A"
	StatusClienteBloqueado = "B"
)

// Cliente representa um cliente com conta de crédito. O ID é atribuído
// exclusivamente pelo backend; este cliente nunca gera identificadores.
// A idade não é armazenada: é sempre derivada de DataNascimento (ver idade.go).
type Cliente struct {
	ID             string
	Nome           string
	CPF            string
	DataNascimento Data
	StatusBloqueio string
	LimiteCredito  decimal.Decimal
}

// RotuloStatusBloqueio mapeia o código de bloqueio para o rótulo de exibição.
// Mapeamento total: código desconhecido vira "Desconhecido", nunca falha.
func RotuloStatusBloqueio(codigo string) string {
	switch codigo {
	case StatusClienteAtivo:
		return "Ativo"
	case StatusClienteBloqueado:
		return "Bloqueado"
	default:
		return "Desconhecido"
	}
}
