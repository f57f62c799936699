package ports

import (
	"time"

	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/domain/entity"
)

// Relogio fornece a data atual do cliente (data civil em UTC, sem hora).
// Injetável para que os casos de uso sejam determinísticos em teste.
type Relogio interface {
	Hoje() entity.Data
}

// RelogioUTC implementação padrão sobre o relógio do sistema.
type RelogioUTC struct{}

func (RelogioUTC) Hoje() entity.Data { return entity.DataDe(time.Now()) }
