package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/application/dto"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/application/ports"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/domain"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/domain/entity"
	"github.com/CauanyRodrigues01/fintech-pagamentos/pkg/logger"
	"github.com/CauanyRodrigues01/fintech-pagamentos/pkg/moeda"
)

// Rótulos do nome do cliente na tela de faturas, conforme o backend devolva ou
// não o nome desnormalizado.
const (
	clienteDesconhecido = "Cliente Desconhecido"
	clienteSemFaturas   = "Cliente sem faturas ou Desconhecido"
	pagamentoAusente    = "N/A"
)

// FaturaUseCase orquestra a tela de faturas de um cliente: carga e registro de
// pagamento.
type FaturaUseCase struct {
	backend ports.BackendGateway
	relogio ports.Relogio
	log     *logger.Logger
}

// NewFaturaUseCase constrói o caso de uso com a porta do backend e o relógio.
func NewFaturaUseCase(backend ports.BackendGateway, relogio ports.Relogio, log *logger.Logger) *FaturaUseCase {
	return &FaturaUseCase{backend: backend, relogio: relogio, log: log}
}

// Carregar busca as faturas do cliente e monta o painel de exibição. Um
// clienteID vazio é falha de precondição (domain.ErrParametroAusente) e não
// dispara busca nenhuma: a tela deve voltar à lista de clientes. O nome exibido
// vem do ClienteNome desnormalizado da primeira fatura; sem faturas, um rótulo
// padrão.
func (uc *FaturaUseCase) Carregar(ctx context.Context, clienteID string) (*dto.PainelFaturas, error) {
	clienteID = strings.TrimSpace(clienteID)
	if clienteID == "" {
		return nil, fmt.Errorf("clienteId: %w", domain.ErrParametroAusente)
	}

	faturas, err := uc.backend.ListarFaturas(ctx, clienteID)
	if err != nil {
		uc.log.Error().Err(err).Str("cliente_id", clienteID).Msg("listar faturas no backend")
		return nil, err
	}

	nome := clienteSemFaturas
	if len(faturas) > 0 {
		nome = faturas[0].ClienteNome
		if nome == "" {
			nome = clienteDesconhecido
		}
	}

	linhas := make([]dto.LinhaFatura, 0, len(faturas))
	for i := range faturas {
		f := &faturas[i]
		pagamento := pagamentoAusente
		if f.DataPagamento.Valida() {
			pagamento = f.DataPagamento.String()
		}
		linhas = append(linhas, dto.LinhaFatura{
			ID:         f.ID,
			Valor:      moeda.FormatarBRL(f.Valor),
			Vencimento: f.DataVencimento.String(),
			Status:     entity.RotuloStatusFatura(f.Status),
			Pagamento:  pagamento,
			PodePagar:  !f.Paga(),
		})
	}

	return &dto.PainelFaturas{
		ClienteID:   clienteID,
		ClienteNome: nome,
		Linhas:      linhas,
	}, nil
}

// RegistrarPagamento quita a fatura com a data de hoje (relógio do cliente, data
// civil em UTC) e devolve a fatura atualizada pelo backend. A transição de
// estado é feita exclusivamente pelo backend; aqui nada é assumido antes da
// resposta.
func (uc *FaturaUseCase) RegistrarPagamento(ctx context.Context, faturaID string) (*entity.Fatura, error) {
	hoje := uc.relogio.Hoje()
	fatura, err := uc.backend.RegistrarPagamento(ctx, faturaID, hoje)
	if err != nil {
		uc.log.Error().Err(err).Str("fatura_id", faturaID).Msg("registrar pagamento no backend")
		return nil, err
	}
	return fatura, nil
}
