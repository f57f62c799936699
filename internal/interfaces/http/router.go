package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/application/usecase"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/notificacao"
	"github.com/CauanyRodrigues01/fintech-pagamentos/pkg/logger"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ClienteUC *usecase.ClienteUseCase
	FaturaUC  *usecase.FaturaUseCase
	Notificar *notificacao.Apresentador
	Log       *logger.Logger
}

// Router registra as rotas do painel.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	app.Use(Logging(deps.Log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	clienteHandler := NewClienteHandler(deps.ClienteUC, deps.Notificar, deps.Log)
	app.Get("/", clienteHandler.Pagina)
	app.Post("/clientes", clienteHandler.Cadastrar)

	faturaHandler := NewFaturaHandler(deps.FaturaUC, deps.Notificar, deps.Log)
	app.Get("/faturas", faturaHandler.Pagina)
	app.Post("/faturas/:id/pagamento", faturaHandler.RegistrarPagamento)
}
