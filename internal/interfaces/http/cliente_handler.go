package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/application/dto"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/application/usecase"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/domain"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/notificacao"
	"github.com/CauanyRodrigues01/fintech-pagamentos/pkg/logger"
)

// ClienteHandler atende a tela de clientes: listagem e formulário de cadastro.
type ClienteHandler struct {
	uc        *usecase.ClienteUseCase
	notificar *notificacao.Apresentador
	log       *logger.Logger
}

// NewClienteHandler constrói o handler.
func NewClienteHandler(uc *usecase.ClienteUseCase, notificar *notificacao.Apresentador, log *logger.Logger) *ClienteHandler {
	return &ClienteHandler{uc: uc, notificar: notificar, log: log}
}

// Pagina GET / — lista de clientes e formulário de cadastro. Uma falha na busca
// não derruba a tela: a página é renderizada sem a tabela, com a notificação de
// erro no lugar.
func (h *ClienteHandler) Pagina(c *fiber.Ctx) error {
	linhas, err := h.uc.Listar(c.UserContext())
	if err != nil {
		h.notificar.Exibir(notificacao.Erro, "Erro ao carregar clientes.")
		return c.Status(statusDoErro(err)).Render("clientes", fiber.Map{
			"Titulo":      "Clientes",
			"Clientes":    nil,
			"ListaFalhou": true,
			"Formulario":  dto.FormularioCliente{},
			"Notificacao": h.notificar.Atual(),
		}, "layout")
	}

	return c.Render("clientes", fiber.Map{
		"Titulo":      "Clientes",
		"Clientes":    linhas,
		"Formulario":  dto.FormularioCliente{},
		"Notificacao": h.notificar.Atual(),
	}, "layout")
}

// Cadastrar POST /clientes — submissão do formulário. Em erro de validação a
// página é re-renderizada com os valores preservados e sem nova busca da lista;
// em sucesso, notificação e redirect para a listagem (que re-busca do zero, com
// o formulário limpo).
func (h *ClienteHandler) Cadastrar(c *fiber.Ctx) error {
	var form dto.FormularioCliente
	if err := c.BodyParser(&form); err != nil {
		h.notificar.Exibir(notificacao.Erro, "Erro ao cadastrar cliente.")
		return h.renderFormulario(c, fiber.StatusBadRequest, form)
	}

	cliente, err := h.uc.Cadastrar(c.UserContext(), form)
	if err != nil {
		var ev *domain.ErroValidacao
		if errors.As(err, &ev) {
			h.notificar.Exibir(notificacao.Erro, mensagemValidacao(ev))
			return h.renderFormulario(c, fiber.StatusBadRequest, form)
		}
		h.notificar.Exibir(notificacao.Erro, "Erro ao cadastrar cliente.")
		return h.renderFormulario(c, statusDoErro(err), form)
	}

	h.notificar.Exibir(notificacao.Sucesso, fmt.Sprintf("Cliente %s cadastrado com sucesso!", cliente.Nome))
	return c.Redirect("/", fiber.StatusSeeOther)
}

// renderFormulario re-renderiza a tela de clientes sem re-buscar a lista,
// mantendo os campos submetidos para correção.
func (h *ClienteHandler) renderFormulario(c *fiber.Ctx, status int, form dto.FormularioCliente) error {
	return c.Status(status).Render("clientes", fiber.Map{
		"Titulo":      "Clientes",
		"Clientes":    nil,
		"ListaFalhou": false,
		"SemLista":    true,
		"Formulario":  form,
		"Notificacao": h.notificar.Atual(),
	}, "layout")
}

// mensagemValidacao monta o texto da notificação de validação: mensagem do
// backend seguida de cada linha de detalhe.
func mensagemValidacao(ev *domain.ErroValidacao) string {
	texto := "Erro de validação: " + ev.Mensagem
	if len(ev.Detalhes) > 0 {
		texto += "\nDetalhes: " + strings.Join(ev.Detalhes, "\n")
	}
	return texto
}

// statusDoErro traduz o erro classificado para o status da página renderizada.
func statusDoErro(err error) int {
	var es *domain.ErroServidor
	switch {
	case errors.As(err, &es), errors.Is(err, domain.ErrRede):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
