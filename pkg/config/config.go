// Package config carrega a configuração da aplicação via Viper (variáveis de
// ambiente e, opcionalmente, arquivo .env).
package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa a configuração do painel web.
type Config struct {
	App         AppConfig
	HTTP        HTTPConfig
	Backend     BackendConfig
	Notificacao NotificacaoConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuração do servidor HTTP do painel.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig endereço e timeout da API REST fintech-pagamentos.
type BackendConfig struct {
	BaseURL         string
	TimeoutSegundos int
}

// Timeout devolve o timeout de rede das chamadas ao backend.
func (c BackendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSegundos) * time.Second
}

// NotificacaoConfig durações do slot de notificação da interface.
type NotificacaoConfig struct {
	ExibicaoSegundos int // tempo que a mensagem fica visível
	DesvanecimentoMs int // duração da transição de desaparecimento
}

// Exibicao devolve a duração de exibição da notificação.
func (c NotificacaoConfig) Exibicao() time.Duration {
	return time.Duration(c.ExibicaoSegundos) * time.Second
}

// Desvanecimento devolve a duração da transição de desaparecimento.
func (c NotificacaoConfig) Desvanecimento() time.Duration {
	return time.Duration(c.DesvanecimentoMs) * time.Millisecond
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de um arquivo
// .env no diretório atual). As env vars têm prioridade. Nomes esperados:
// APP_ENV, HTTP_PORT, BACKEND_BASE_URL, BACKEND_TIMEOUT_SECONDS etc.
func Load() (*Config, error) {
	v := viper.New()

	// Arquivo de configuração opcional (.env); a ausência não é erro.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "fintech-pagamentos-web"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			BaseURL:         getString(v, "BACKEND_BASE_URL", "http://localhost:8080"),
			TimeoutSegundos: getInt(v, "BACKEND_TIMEOUT_SECONDS", 15),
		},
		Notificacao: NotificacaoConfig{
			ExibicaoSegundos: getInt(v, "NOTIFICACAO_EXIBICAO_SEGUNDOS", 5),
			DesvanecimentoMs: getInt(v, "NOTIFICACAO_DESVANECIMENTO_MS", 600),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
