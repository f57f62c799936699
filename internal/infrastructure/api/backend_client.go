// Package api implementa a porta BackendGateway sobre a API REST
// fintech-pagamentos usando net/http da biblioteca padrão.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/application/dto"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/application/ports"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/domain"
	"github.com/CauanyRodrigues01/fintech-pagamentos/internal/domain/entity"
	"github.com/CauanyRodrigues01/fintech-pagamentos/pkg/logger"
)

// Verificação em tempo de compilação de que ClienteHTTP implementa a porta.
var _ ports.BackendGateway = (*ClienteHTTP)(nil)

// limiteCorpoResposta protege contra respostas desproporcionais do backend.
const limiteCorpoResposta = 1 << 20 // 1 MiB

// ClienteHTTP adaptador REST do backend fintech-pagamentos. Uma ida e volta HTTP
// por operação, sem retries: toda repetição é uma nova ação do usuário. Cada
// falha é classificada nos erros de domínio antes de subir (ver fazer).
type ClienteHTTP struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// NewClienteHTTP constrói o adaptador. O timeout vale para a ida e volta
// completa; o contexto do chamador pode encurtá-lo.
func NewClienteHTTP(baseURL string, timeout time.Duration, log *logger.Logger) *ClienteHTTP {
	return &ClienteHTTP{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// ── Espelhos dos DTOs do backend ──────────────────────────────────────────────

// decimalJSON serializa valores monetários como número JSON sem aspas; o
// backend espera um BigDecimal numérico, como o cliente original enviava.
type decimalJSON struct{ decimal.Decimal }

func (d decimalJSON) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// novoClienteJSON payload de POST /clientes.
type novoClienteJSON struct {
	Nome           string      `json:"nome"`
	CPF            string      `json:"cpf"`
	DataNascimento string      `json:"dataNascimento"`
	StatusBloqueio string      `json:"statusBloqueio"`
	LimiteCredito  decimalJSON `json:"limiteCredito"`
}

// pagamentoJSON payload de PUT /faturas/{faturaId}/pagamento.
type pagamentoJSON struct {
	DataPagamento entity.Data `json:"dataPagamento"`
}

type clienteJSON struct {
	ID             string          `json:"id"`
	Nome           string          `json:"nome"`
	CPF            string          `json:"cpf"`
	DataNascimento entity.Data     `json:"dataNascimento"`
	StatusBloqueio string          `json:"statusBloqueio"`
	LimiteCredito  decimal.Decimal `json:"limiteCredito"`
}

func (c clienteJSON) paraEntidade() entity.Cliente {
	return entity.Cliente{
		ID:             c.ID,
		Nome:           c.Nome,
		CPF:            c.CPF,
		DataNascimento: c.DataNascimento,
		StatusBloqueio: c.StatusBloqueio,
		LimiteCredito:  c.LimiteCredito,
	}
}

type faturaJSON struct {
	ID             string          `json:"id"`
	ClienteID      string          `json:"clienteId"`
	ClienteNome    string          `json:"clienteNome"`
	Valor          decimal.Decimal `json:"valor"`
	DataVencimento entity.Data     `json:"dataVencimento"`
	Status         string          `json:"status"`
	DataPagamento  entity.Data     `json:"dataPagamento"`
}

func (f faturaJSON) paraEntidade() entity.Fatura {
	return entity.Fatura{
		ID:             f.ID,
		ClienteID:      f.ClienteID,
		ClienteNome:    f.ClienteNome,
		Valor:          f.Valor,
		DataVencimento: f.DataVencimento,
		Status:         f.Status,
		DataPagamento:  f.DataPagamento,
	}
}

// erroBackend corpo de erro devolvido pelo backend em respostas 400.
type erroBackend struct {
	Message string   `json:"message"`
	Details []string `json:"details"`
}

// ── Operações da porta ────────────────────────────────────────────────────────

// ListarClientes GET /clientes.
func (c *ClienteHTTP) ListarClientes(ctx context.Context) ([]entity.Cliente, error) {
	var corpo []clienteJSON
	if err := c.fazer(ctx, http.MethodGet, "/clientes", nil, &corpo); err != nil {
		return nil, err
	}
	clientes := make([]entity.Cliente, 0, len(corpo))
	for _, cj := range corpo {
		clientes = append(clientes, cj.paraEntidade())
	}
	return clientes, nil
}

// CadastrarCliente POST /clientes.
func (c *ClienteHTTP) CadastrarCliente(ctx context.Context, novo dto.NovoClienteRequest) (*entity.Cliente, error) {
	payload := novoClienteJSON{
		Nome:           novo.Nome,
		CPF:            novo.CPF,
		DataNascimento: novo.DataNascimento,
		StatusBloqueio: novo.StatusBloqueio,
		LimiteCredito:  decimalJSON{novo.LimiteCredito},
	}
	var corpo clienteJSON
	if err := c.fazer(ctx, http.MethodPost, "/clientes", payload, &corpo); err != nil {
		return nil, err
	}
	cliente := corpo.paraEntidade()
	return &cliente, nil
}

// ListarFaturas GET /faturas/{clienteId}.
func (c *ClienteHTTP) ListarFaturas(ctx context.Context, clienteID string) ([]entity.Fatura, error) {
	var corpo []faturaJSON
	caminho := "/faturas/" + url.PathEscape(clienteID)
	if err := c.fazer(ctx, http.MethodGet, caminho, nil, &corpo); err != nil {
		return nil, err
	}
	faturas := make([]entity.Fatura, 0, len(corpo))
	for _, fj := range corpo {
		faturas = append(faturas, fj.paraEntidade())
	}
	return faturas, nil
}

// RegistrarPagamento PUT /faturas/{faturaId}/pagamento.
func (c *ClienteHTTP) RegistrarPagamento(ctx context.Context, faturaID string, dataPagamento entity.Data) (*entity.Fatura, error) {
	var corpo faturaJSON
	caminho := "/faturas/" + url.PathEscape(faturaID) + "/pagamento"
	req := pagamentoJSON{DataPagamento: dataPagamento}
	if err := c.fazer(ctx, http.MethodPut, caminho, req, &corpo); err != nil {
		return nil, err
	}
	fatura := corpo.paraEntidade()
	return &fatura, nil
}

// ── Ida e volta HTTP com classificação de falhas ──────────────────────────────

// fazer executa uma requisição e classifica o resultado:
//   - falha de transporte (a requisição não chegou ou não voltou) → domain.ErrRede;
//   - HTTP 400 → *domain.ErroValidacao com mensagem e detalhes do backend;
//   - demais não-2xx → *domain.ErroServidor com o status;
//   - 2xx com corpo indecifrável → erro de decodificação (tratado como falha do
//     servidor pelo chamador).
func (c *ClienteHTTP) fazer(ctx context.Context, metodo, caminho string, corpoReq, corpoResp any) error {
	var leitorCorpo io.Reader
	if corpoReq != nil {
		b, err := json.Marshal(corpoReq)
		if err != nil {
			return fmt.Errorf("serializar corpo de %s %s: %w", metodo, caminho, err)
		}
		leitorCorpo = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, metodo, c.baseURL+caminho, leitorCorpo)
	if err != nil {
		return fmt.Errorf("criar requisição %s %s: %w", metodo, caminho, err)
	}
	if corpoReq != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("metodo", metodo).Str("caminho", caminho).Msg("transporte falhou")
		return fmt.Errorf("%w: %s %s: %v", domain.ErrRede, metodo, caminho, err)
	}
	defer resp.Body.Close()

	bruto, err := io.ReadAll(io.LimitReader(resp.Body, limiteCorpoResposta))
	if err != nil {
		return fmt.Errorf("%w: ler resposta de %s %s: %v", domain.ErrRede, metodo, caminho, err)
	}

	if resp.StatusCode == http.StatusBadRequest {
		return erroValidacaoDe(bruto)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().Int("status", resp.StatusCode).Str("metodo", metodo).Str("caminho", caminho).Msg("backend respondeu erro")
		return &domain.ErroServidor{StatusCode: resp.StatusCode}
	}

	if corpoResp == nil {
		return nil
	}
	if err := json.Unmarshal(bruto, corpoResp); err != nil {
		return fmt.Errorf("decodificar resposta de %s %s: %w", metodo, caminho, err)
	}
	return nil
}

// erroValidacaoDe extrai mensagem e detalhes do corpo 400; um corpo indecifrável
// vira uma validação genérica, nunca um erro engolido.
func erroValidacaoDe(corpo []byte) *domain.ErroValidacao {
	var eb erroBackend
	if err := json.Unmarshal(corpo, &eb); err != nil || eb.Message == "" {
		return &domain.ErroValidacao{Mensagem: "requisição rejeitada pelo backend"}
	}
	return &domain.ErroValidacao{Mensagem: eb.Message, Detalhes: eb.Details}
}
