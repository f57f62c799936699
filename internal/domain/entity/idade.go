package entity

import "github.com/CauanyRodrigues01/fintech-pagamentos/internal/domain"

// Idade calcula a idade em anos completos na data de referência: diferença de
// anos, menos um se o aniversário ainda não ocorreu no ano corrente. Datas
// ausentes ou malformadas devolvem domain.ErrDataInvalida; a camada de exibição
// renderiza um placeholder em vez de um número sem sentido.
func Idade(nascimento, hoje Data) (int, error) {
	if !nascimento.Valida() || !hoje.Valida() {
		return 0, domain.ErrDataInvalida
	}

	anos := hoje.Ano() - nascimento.Ano()
	aniversario := NovaData(hoje.Ano(), nascimento.Mes(), nascimento.Dia())
	if hoje.Antes(aniversario) {
		anos--
	}
	return anos, nil
}
