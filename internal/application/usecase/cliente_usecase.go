package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/application/dto"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/application/ports"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/domain"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/domain/entity"
	"github.com/CauanyRodrigues01/fintech-pagamentos/pkg/logger"
	"github.com/CauanyRodrigues01/fintech-pagamentos/pkg/moeda"
)

// placeholderIdade exibido quando a data de nascimento não permite derivar idade.
const placeholderIdade = "—"

// ClienteUseCase orquestra a tela de clientes: listagem e cadastro.
type ClienteUseCase struct {
	backend ports.BackendGateway
	relogio ports.Relogio
	log     *logger.Logger
}

// NewClienteUseCase constrói o caso de uso com a porta do backend e o relógio.
func NewClienteUseCase(backend ports.BackendGateway, relogio ports.Relogio, log *logger.Logger) *ClienteUseCase {
	return &ClienteUseCase{backend: backend, relogio: relogio, log: log}
}

// Listar busca todos os clientes no backend e monta as linhas de exibição:
// idade derivada da data de nascimento (placeholder se inválida), status mapeado
// para rótulo e limite de crédito formatado em reais. A lista devolvida substitui
// integralmente a anterior; não há diffing incremental nem cache.
func (uc *ClienteUseCase) Listar(ctx context.Context) ([]dto.LinhaCliente, error) {
	clientes, err := uc.backend.ListarClientes(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("listar clientes no backend")
		return nil, err
	}

	hoje := uc.relogio.Hoje()
	linhas := make([]dto.LinhaCliente, 0, len(clientes))
	for _, c := range clientes {
		idade := placeholderIdade
		if anos, err := entity.Idade(c.DataNascimento, hoje); err == nil {
			idade = strconv.Itoa(anos)
		}
		linhas = append(linhas, dto.LinhaCliente{
			ID:     c.ID,
			Nome:   c.Nome,
			CPF:    c.CPF,
			Idade:  idade,
			Status: entity.RotuloStatusBloqueio(c.StatusBloqueio),
			Limite: moeda.FormatarBRL(c.LimiteCredito),
		})
	}
	return linhas, nil
}

// Cadastrar converte os campos crus do formulário e envia o cadastro ao backend:
// limiteCredito vira decimal, dataNascimento passa como veio do campo de data e
// statusBloqueio é reduzido ao primeiro caractere. Validação de formato (CPF,
// datas, limites) é responsabilidade do backend; aqui só falha o que nem chega a
// formar um payload.
func (uc *ClienteUseCase) Cadastrar(ctx context.Context, form dto.FormularioCliente) (*entity.Cliente, error) {
	limite, err := decimal.NewFromString(strings.TrimSpace(form.LimiteCredito))
	if err != nil {
		return nil, &domain.ErroValidacao{
			Mensagem: "limite de crédito inválido",
			Detalhes: []string{"informe um valor numérico, ex.: 1500.50"},
		}
	}

	novo := dto.NovoClienteRequest{
		Nome:           strings.TrimSpace(form.Nome),
		CPF:            strings.TrimSpace(form.CPF),
		DataNascimento: strings.TrimSpace(form.DataNascimento),
		StatusBloqueio: primeiroCaractere(form.StatusBloqueio),
		LimiteCredito:  limite,
	}

	cliente, err := uc.backend.CadastrarCliente(ctx, novo)
	if err != nil {
		uc.log.Error().Err(err).Str("nome", novo.Nome).Msg("cadastrar cliente no backend")
		return nil, err
	}
	return cliente, nil
}

// primeiroCaractere reduz o valor do campo de status ao primeiro caractere
// ("A" ou "B"); vazio permanece vazio para o backend rejeitar com 400.
func primeiroCaractere(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
