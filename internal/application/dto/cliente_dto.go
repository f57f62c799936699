package dto

import "github.com/shopspring/decimal"

// FormularioCliente campos crus do formulário de cadastro, como enviados pelo
// navegador. A conversão de tipos (limite decimal, primeiro caractere do status)
// acontece no caso de uso, não aqui.
type FormularioCliente struct {
	Nome           string `form:"nome"`
	CPF            string `form:"cpf"`
	DataNascimento string `form:"dataNascimento"`
	StatusBloqueio string `form:"statusBloqueio"`
	LimiteCredito  string `form:"limiteCredito"`
}

// NovoClienteRequest dados de criação de um cliente. Não carrega id: o backend
// o atribui e devolve na resposta. A serialização para a API é responsabilidade
// do adaptador HTTP.
type NovoClienteRequest struct {
	Nome           string
	CPF            string
	DataNascimento string
	StatusBloqueio string
	LimiteCredito  decimal.Decimal
}

// LinhaCliente linha da tabela de clientes, pronta para exibição (idade derivada,
// status mapeado para rótulo, limite formatado em reais).
type LinhaCliente struct {
	ID     string
	Nome   string
	CPF    string
	Idade  string
	Status string
	Limite string
}
