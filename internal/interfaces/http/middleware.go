package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/CauanyRodrigues01/fintech-pagamentos/pkg/logger"
)

const chaveRequestID = "requestid"

// RequestID anexa um identificador único a cada requisição para correlação nos
// logs. Respeita um X-Request-ID já vindo de um proxy.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Locals(chaveRequestID, id)
		c.Set(fiber.HeaderXRequestID, id)
		return c.Next()
	}
}

// Logging registra método, caminho, status e duração de cada requisição.
func Logging(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		evento := log.Info()
		if err != nil || status >= fiber.StatusInternalServerError {
			evento = log.Error()
		}

		id, _ := c.Locals(chaveRequestID).(string)
		evento.
			Str("request_id", id).
			Str("metodo", c.Method()).
			Str("caminho", c.OriginalURL()).
			Int("status", status).
			Dur("duracao", time.Since(inicio)).
			Msg("requisição http")
		return err
	}
}
