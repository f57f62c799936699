package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Erros de domínio (sem dependências externas).
var (
	ErrRede             = errors.New("falha de rede ao contatar o backend")
	ErrParametroAusente = errors.New("parâmetro obrigatório ausente")
	ErrDataInvalida     = errors.New("data inválida")
)

// ErroValidacao representa uma rejeição HTTP 400 do backend: entrada malformada ou
// que viola regra de negócio, corrigível pelo usuário. Mensagem e Detalhes vêm do
// corpo de erro do backend e são exibidos literalmente na notificação.
type ErroValidacao struct {
	Mensagem string
	Detalhes []string
}

func (e *ErroValidacao) Error() string {
	if len(e.Detalhes) == 0 {
		return e.Mensagem
	}
	return e.Mensagem + ": " + strings.Join(e.Detalhes, "; ")
}

// ErroServidor representa uma resposta não-2xx (e não-400) do backend: a requisição
// chegou ao servidor, mas falhou por motivo alheio à entrada do usuário.
type ErroServidor struct {
	StatusCode int
}

func (e *ErroServidor) Error() string {
	return fmt.Sprintf("backend respondeu HTTP %d", e.StatusCode)
}
