package usecase_test

import (
	"context"
	"time"

	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/application/dto"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dublês de teste: gateway do backend e relógio fixo
// ──────────────────────────────────────────────────────────────────────────────

// gatewayFalso implementa ports.BackendGateway em memória, registrando as
// chamadas recebidas para os testes inspecionarem.
type gatewayFalso struct {
	clientes []entity.Cliente
	faturas  []entity.Fatura
	criado   *entity.Cliente
	paga     *entity.Fatura

	errListarClientes   error
	errCadastrarCliente error
	errListarFaturas    error
	errRegistrarPag     error

	chamadasListarClientes int
	chamadasListarFaturas  int
	ultimoCadastro         *dto.NovoClienteRequest
	ultimoPagamento        struct {
		FaturaID string
		Data     entity.Data
	}
}

func (g *gatewayFalso) ListarClientes(ctx context.Context) ([]entity.Cliente, error) {
	g.chamadasListarClientes++
	if g.errListarClientes != nil {
		return nil, g.errListarClientes
	}
	return g.clientes, nil
}

func (g *gatewayFalso) CadastrarCliente(ctx context.Context, novo dto.NovoClienteRequest) (*entity.Cliente, error) {
	g.ultimoCadastro = &novo
	if g.errCadastrarCliente != nil {
		return nil, g.errCadastrarCliente
	}
	return g.criado, nil
}

func (g *gatewayFalso) ListarFaturas(ctx context.Context, clienteID string) ([]entity.Fatura, error) {
	g.chamadasListarFaturas++
	if g.errListarFaturas != nil {
		return nil, g.errListarFaturas
	}
	return g.faturas, nil
}

func (g *gatewayFalso) RegistrarPagamento(ctx context.Context, faturaID string, dataPagamento entity.Data) (*entity.Fatura, error) {
	g.ultimoPagamento.FaturaID = faturaID
	g.ultimoPagamento.Data = dataPagamento
	if g.errRegistrarPag != nil {
		return nil, g.errRegistrarPag
	}
	return g.paga, nil
}

// relogioFixo devolve sempre a mesma data.
type relogioFixo struct{ hoje entity.Data }

func (r relogioFixo) Hoje() entity.Data { return r.hoje }

func hojeTeste() entity.Data { return entity.NovaData(2024, time.June, 15) }
