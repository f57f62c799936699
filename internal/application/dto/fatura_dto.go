package dto

// LinhaFatura linha da tabela de faturas, pronta para exibição. PodePagar indica
// se a ação "Registrar Pagamento" deve ser oferecida (fatura ainda não paga).
type LinhaFatura struct {
	ID         string
	Valor      string
	Vencimento string
	Status     string
	Pagamento  string
	PodePagar  bool
}

// PainelFaturas modelo de exibição da tela de faturas de um cliente.
type PainelFaturas struct {
	ClienteID   string
	ClienteNome string
	Linhas      []LinhaFatura
}
