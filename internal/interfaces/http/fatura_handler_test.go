package http_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/domain"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/domain/entity"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/notificacao"
)

func faturasExemplo() []entity.Fatura {
	return []entity.Fatura{
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
	}
}

func TestPaginaFaturas_RenderizaPainel(t *testing.T) {
	gw := &gatewayFalso{faturas: faturasExemplo()}
	app, _ := appTeste(gw)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/faturas?clienteId=c1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	corpo := corpoDe(t, resp)
	assert.Contains(t, corpo, "Maria Silva")
	assert.Contains(t, corpo, "Paga")
	assert.Contains(t, corpo, "Aberta")
	assert.Contains(t, corpo, "2024-04-28")
	assert.Contains(t, corpo, "N/A")
	// Ação de pagamento só para a fatura não paga.
	assert.Contains(t, corpo, "/faturas/f2/pagamento")
	assert.NotContains(t, corpo, "/faturas/f1/pagamento")
}

func TestPaginaFaturas_SemClienteIDNaoBuscaERedireciona(t *testing.T) {
	gw := &gatewayFalso{faturas: faturasExemplo()}
	app, notificar := appTeste(gw)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/faturas", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.Zero(t, gw.chamadasListarFaturas, "sem clienteId nenhuma busca é disparada")
	assert.Equal(t, "ID do cliente não fornecido na URL.", notificar.Atual().Texto)
}

func TestPaginaFaturas_FalhaDoBackendNotifica(t *testing.T) {
	gw := &gatewayFalso{errListarFaturas: domain.ErrRede}
	app, notificar := appTeste(gw)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/faturas?clienteId=c1", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "Erro ao carregar faturas.", notificar.Atual().Texto)
}

// TestRegistrarPagamento_FluxoCompleto pagamento com sucesso: notificação com a
// data devolvida pelo backend, redirect de volta à tela e, na recarga, status
// "Paga" com a data de pagamento — sem recarga inteira da aplicação.
func TestRegistrarPagamento_FluxoCompleto(t *testing.T) {
	gw := &gatewayFalso{
		faturas: faturasExemplo(),
		paga: &entity.Fatura{
			ID:            "f2",
			ClienteID:     "c1",
			ClienteNome:   "Maria Silva",
			Valor:         decimal.RequireFromString("120"),
			Status:        entity.StatusFaturaPaga,
			DataPagamento: entity.NovaData(2024, time.June, 15),
		},
	}
	app, notificar := appTeste(gw)

	resp := postFormulario(t, app, "/faturas/f2/pagamento", url.Values{"clienteId": {"c1"}})

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/faturas?clienteId=c1", resp.Header.Get("Location"))

	atual := notificar.Atual()
	assert.Equal(t, notificacao.Sucesso, atual.Tipo)
	assert.Equal(t, "Fatura f2 paga com sucesso em 2024-06-15!", atual.Texto)

	// Recarga da tela mostra o novo estado vindo do backend.
	gw.faturas = []entity.Fatura{*gw.paga}
	resp2, err := app.Test(httptest.NewRequest(http.MethodGet, resp.Header.Get("Location"), nil), -1)
	require.NoError(t, err)

	corpo := corpoDe(t, resp2)
	assert.Contains(t, corpo, "Paga")
	assert.Contains(t, corpo, "2024-06-15")
	assert.NotContains(t, corpo, "Registrar Pagamento", "fatura paga não oferece a ação")
}

func TestRegistrarPagamento_ValidacaoNaoRecarrega(t *testing.T) {
	gw := &gatewayFalso{errRegistrarPag: &domain.ErroValidacao{
		Mensagem: "fatura já paga",
		Detalhes: []string{"pagamento já registrado em 2024-01-10"},
	}}
	app, notificar := appTeste(gw)

	resp := postFormulario(t, app, "/faturas/f9/pagamento", url.Values{"clienteId": {"c1"}})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Location"))
	assert.Zero(t, gw.chamadasListarFaturas, "validação não dispara recarga")

	atual := notificar.Atual()
	assert.Contains(t, atual.Texto, "fatura já paga")
	assert.Contains(t, atual.Texto, "pagamento já registrado em 2024-01-10")
}
