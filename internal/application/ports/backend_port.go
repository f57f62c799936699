package ports

import (
	"context"

	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/application/dto"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/domain/entity"
)

// BackendGateway porta de saída para a API REST fintech-pagamentos.
//
// Cada operação realiza exatamente uma ida e volta HTTP, suspende o chamador até
// a resposta chegar e classifica qualquer falha nos erros de domínio antes de
// devolvê-la: *domain.ErroValidacao (HTTP 400), *domain.ErroServidor (não-2xx,
// não-400) ou domain.ErrRede (a requisição não completou). Nenhuma falha é
// engolida em silêncio e nenhuma operação faz retry.
type BackendGateway interface {
	// ListarClientes busca a coleção completa de clientes (GET /clientes).
	ListarClientes(ctx context.Context) ([]entity.Cliente, error)

	// CadastrarCliente cria um cliente (POST /clientes). O id vem no retorno,
	// atribuído pelo backend.
	CadastrarCliente(ctx context.Context, novo dto.NovoClienteRequest) (*entity.Cliente, error)

	// ListarFaturas busca as faturas de um cliente (GET /faturas/{clienteId}).
	ListarFaturas(ctx context.Context, clienteID string) ([]entity.Fatura, error)

	// RegistrarPagamento quita uma fatura (PUT /faturas/{faturaId}/pagamento) e
	// devolve a fatura atualizada (status pago, dataPagamento preenchida).
	RegistrarPagamento(ctx context.Context, faturaID string, dataPagamento entity.Data) (*entity.Fatura, error)
}
