package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/application/usecase"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/domain"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/domain/entity"
	"github.com/CauanyRodrigues01/fintech-pagamentos/pkg/logger"
)

func TestFaturaCarregar_ClienteIDAusenteNaoBusca(t *testing.T) {
	gw := &gatewayFalso{}
	uc := usecase.NewFaturaUseCase(gw, relogioFixo{hojeTeste()}, logger.Nop())

	_, err := uc.Carregar(context.Background(), "  ")

	assert.ErrorIs(t, err, domain.ErrParametroAusente)
	assert.Zero(t, gw.chamadasListarFaturas, "precondição falhou: nenhuma busca deve ocorrer")
}

func TestFaturaCarregar_MontaPainel(t *testing.T) {
	gw := &gatewayFalso{faturas: []entity.Fatura{
		{
			ID:             "f1",
			ClienteID:      "c1",
			ClienteNome:    "Maria Silva",
			Valor:          decimal.RequireFromString("89.90"),
			DataVencimento: entity.NovaData(2024, time.May, 1),
			Status:         "P",
			DataPagamento:  entity.NovaData(2024, time.April, 28),
		},
		{
			ID:             "f2",
			ClienteID:      "c1",
			ClienteNome:    "Maria Silva",
			Valor:          decimal.RequireFromString("120"),
			DataVencimento: entity.NovaData(2024, time.July, 1),
			Status:         "B",
		},
		{
			ID:             "f3",
			ClienteID:      "c1",
			ClienteNome:    "Maria Silva",
			Valor:          decimal.RequireFromString("45.5"),
			DataVencimento: entity.NovaData(2024, time.March, 1),
			Status:         "A",
		},
	}}
	uc := usecase.NewFaturaUseCase(gw, relogioFixo{hojeTeste()}, logger.Nop())

	painel, err := uc.Carregar(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, "c1", painel.ClienteID)
	assert.Equal(t, "Maria Silva", painel.ClienteNome, "nome vem da primeira fatura")
	require.Len(t, painel.Linhas, 3)

	paga := painel.Linhas[0]
	assert.Equal(t, "Paga", paga.Status)
	assert.Equal(t, "2024-04-28", paga.Pagamento)
	assert.False(t, paga.PodePagar, "fatura paga não oferece registro de pagamento")

	aberta := painel.Linhas[1]
	assert.Equal(t, "Aberta", aberta.Status)
	assert.Equal(t, "N/A", aberta.Pagamento)
	assert.True(t, aberta.PodePagar)

	atrasada := painel.Linhas[2]
	assert.Equal(t, "Atrasada", atrasada.Status)
	assert.True(t, atrasada.PodePagar)
}

func TestFaturaCarregar_RotulosDeNome(t *testing.T) {
	t.Run("sem faturas", func(t *testing.T) {
		uc := usecase.NewFaturaUseCase(&gatewayFalso{}, relogioFixo{hojeTeste()}, logger.Nop())

		painel, err := uc.Carregar(context.Background(), "c1")

		require.NoError(t, err)
		assert.Equal(t, "Cliente sem faturas ou Desconhecido", painel.ClienteNome)
		assert.Empty(t, painel.Linhas)
	})

	t.Run("primeira fatura sem nome", func(t *testing.T) {
		gw := &gatewayFalso{faturas: []entity.Fatura{{ID: "f1", Status: "B"}}}
		uc := usecase.NewFaturaUseCase(gw, relogioFixo{hojeTeste()}, logger.Nop())

		painel, err := uc.Carregar(context.Background(), "c1")

		require.NoError(t, err)
		assert.Equal(t, "Cliente Desconhecido", painel.ClienteNome)
	})
}

func TestFaturaRegistrarPagamento_UsaDataDeHoje(t *testing.T) {
	gw := &gatewayFalso{paga: &entity.Fatura{
		ID:            "f42",
		ClienteID:     "c1",
		Status:        entity.StatusFaturaPaga,
		DataPagamento: hojeTeste(),
	}}
	uc := usecase.NewFaturaUseCase(gw, relogioFixo{hojeTeste()}, logger.Nop())

	fatura, err := uc.RegistrarPagamento(context.Background(), "f42")

	require.NoError(t, err)
	assert.Equal(t, "f42", gw.ultimoPagamento.FaturaID)
	assert.Equal(t, "2024-06-15", gw.ultimoPagamento.Data.String(), "data enviada é a do relógio do cliente")
	assert.Equal(t, entity.StatusFaturaPaga, fatura.Status)
	assert.Equal(t, "2024-06-15", fatura.DataPagamento.String())
}

func TestFaturaRegistrarPagamento_ValidacaoNaoRecarrega(t *testing.T) {
	gw := &gatewayFalso{errRegistrarPag: &domain.ErroValidacao{Mensagem: "fatura já paga"}}
	uc := usecase.NewFaturaUseCase(gw, relogioFixo{hojeTeste()}, logger.Nop())

	_, err := uc.RegistrarPagamento(context.Background(), "f42")

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Zero(t, gw.chamadasListarFaturas, "falha de validação não dispara recarga")
}
