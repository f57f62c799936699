package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/application/ports"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/application/usecase"
	infraapi "github.com/CauanyRodrigues01/fintech-pagamentos/internal/infrastructure/api"
	httpRouter "github.com/CauanyRodrigues01/fintech-pagamentos/internal/interfaces/http"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/notificacao"
	"github.com/CauanyRodrigues01/fintech-pagamentos/pkg/config"
	"github.com/CauanyRodrigues01/fintech-pagamentos/pkg/logger"
	"github.com/CauanyRodrigues01/fintech-pagamentos/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando painel")

	backend := infraapi.NewClienteHTTP(cfg.Backend.BaseURL, cfg.Backend.Timeout(), log)
	relogio := ports.RelogioUTC{}
	notificar := notificacao.NewApresentadorComDuracoes(
		cfg.Notificacao.Exibicao(), cfg.Notificacao.Desvanecimento(),
	)

	clienteUC := usecase.NewClienteUseCase(backend, relogio, log)
	faturaUC := usecase.NewFaturaUseCase(backend, relogio, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        web.Engine(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClienteUC: clienteUC,
		FaturaUC:  faturaUC,
		Notificar: notificar,
		Log:       log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("painel encerrado")
}
