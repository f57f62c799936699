package http

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/application/usecase"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/domain"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/notificacao"
	"github.com/CauanyRodrigues01/fintech-pagamentos/pkg/logger"
)

// FaturaHandler atende a tela de faturas de um cliente.
type FaturaHandler struct {
	uc        *usecase.FaturaUseCase
	notificar *notificacao.Apresentador
	log       *logger.Logger
}

// NewFaturaHandler constrói o handler.
func NewFaturaHandler(uc *usecase.FaturaUseCase, notificar *notificacao.Apresentador, log *logger.Logger) *FaturaHandler {
	return &FaturaHandler{uc: uc, notificar: notificar, log: log}
}

// Pagina GET /faturas?clienteId=... — faturas do cliente selecionado. Sem o
// parâmetro clienteId a tela é inviável: notificação de erro e volta à lista de
// clientes, sem disparar busca nenhuma.
func (h *FaturaHandler) Pagina(c *fiber.Ctx) error {
	painel, err := h.uc.Carregar(c.UserContext(), c.Query("clienteId"))
	if err != nil {
		if errors.Is(err, domain.ErrParametroAusente) {
			h.notificar.Exibir(notificacao.Erro, "ID do cliente não fornecido na URL.")
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		h.notificar.Exibir(notificacao.Erro, "Erro ao carregar faturas.")
		return c.Status(statusDoErro(err)).Render("faturas", fiber.Map{
			"Titulo":      "Faturas",
			"Painel":      nil,
			"ClienteID":   c.Query("clienteId"),
			"Notificacao": h.notificar.Atual(),
		}, "layout")
	}

	return c.Render("faturas", fiber.Map{
		"Titulo":      "Faturas",
		"Painel":      painel,
		"ClienteID":   painel.ClienteID,
		"Notificacao": h.notificar.Atual(),
	}, "layout")
}

// RegistrarPagamento POST /faturas/:id/pagamento — quita a fatura com a data de
// hoje. Em sucesso, notificação com a data de pagamento devolvida pelo backend e
// redirect de volta à tela de faturas (re-busca e re-renderiza). Em erro de
// validação, mensagem e detalhes sem re-busca.
func (h *FaturaHandler) RegistrarPagamento(c *fiber.Ctx) error {
	faturaID := c.Params("id")
	clienteID := c.FormValue("clienteId")

	fatura, err := h.uc.RegistrarPagamento(c.UserContext(), faturaID)
	if err != nil {
		var ev *domain.ErroValidacao
		if errors.As(err, &ev) {
			h.notificar.Exibir(notificacao.Erro, mensagemValidacao(ev))
			return c.Status(fiber.StatusBadRequest).Render("faturas", fiber.Map{
				"Titulo":      "Faturas",
				"Painel":      nil,
				"ClienteID":   clienteID,
				"Notificacao": h.notificar.Atual(),
			}, "layout")
		}
		h.notificar.Exibir(notificacao.Erro, "Erro ao registrar pagamento.")
		return c.Status(statusDoErro(err)).Render("faturas", fiber.Map{
			"Titulo":      "Faturas",
			"Painel":      nil,
			"ClienteID":   clienteID,
			"Notificacao": h.notificar.Atual(),
		}, "layout")
	}

	h.notificar.Exibir(notificacao.Sucesso,
		fmt.Sprintf("Fatura %s paga com sucesso em %s!", fatura.ID, fatura.DataPagamento))

	destino := "/faturas?clienteId=" + url.QueryEscape(clienteID)
	if clienteID == "" {
		destino = "/faturas?clienteId=" + url.QueryEscape(fatura.ClienteID)
	}
	return c.Redirect(destino, fiber.StatusSeeOther)
}
