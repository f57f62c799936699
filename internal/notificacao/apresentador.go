// Package notificacao gerencia o único slot transitório de notificação da
// interface: máquina de estados Ociosa → Exibindo → Desvanecendo → Ociosa.
package notificacao

import (
	"sync"
	"time"
)

// Tipo da notificação exibida.
type Tipo int

const (
	Sucesso Tipo = iota
	Erro
)

// Estado do slot de notificação.
type Estado int

const (
	Ociosa Estado = iota
	Exibindo
	Desvanecendo
)

// Durações padrão: a mensagem fica visível por 5 s e então desaparece em 600 ms.
const (
	ExibicaoPadrao       = 5 * time.Second
	DesvanecimentoPadrao = 600 * time.Millisecond
)

// Notificacao instantâneo do conteúdo do slot, pronto para renderização.
type Notificacao struct {
	Tipo   Tipo
	Texto  string
	Estado Estado
}

// Vazia informa se não há nada a exibir.
func (n Notificacao) Vazia() bool { return n.Estado == Ociosa }

// EmDesvanecimento informa se a transição de desaparecimento está em curso.
func (n Notificacao) EmDesvanecimento() bool { return n.Estado == Desvanecendo }

// ClasseCSS devolve a classe de estilo do alerta conforme o tipo.
func (n Notificacao) ClasseCSS() string {
	if n.Tipo == Sucesso {
		return "alert-success"
	}
	return "alert-error"
}

// Apresentador controla o slot de notificação. Há no máximo um timer de
// dispensa vivo por vez: Exibir substitui o conteúdo imediatamente (a mensagem
// mais nova vence, sem fila) e invalida o timer anterior via contador de
// geração, de modo que uma dispensa obsoleta nunca apaga uma mensagem mais nova.
type Apresentador struct {
	mu             sync.Mutex
	atual          Notificacao
	geracao        uint64
	timer          *time.Timer
	exibicao       time.Duration
	desvanecimento time.Duration
}

// NewApresentador constrói o apresentador com as durações padrão.
func NewApresentador() *Apresentador {
	return NewApresentadorComDuracoes(ExibicaoPadrao, DesvanecimentoPadrao)
}

// NewApresentadorComDuracoes permite durações curtas em teste.
func NewApresentadorComDuracoes(exibicao, desvanecimento time.Duration) *Apresentador {
	return &Apresentador{exibicao: exibicao, desvanecimento: desvanecimento}
}

// Exibir substitui qualquer notificação anterior e agenda a dispensa.
func (a *Apresentador) Exibir(tipo Tipo, texto string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.geracao++
	g := a.geracao
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}

	a.atual = Notificacao{Tipo: tipo, Texto: texto, Estado: Exibindo}
	a.timer = time.AfterFunc(a.exibicao, func() { a.desvanecer(g) })
}

// Atual devolve um instantâneo do slot para renderização.
func (a *Apresentador) Atual() Notificacao {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.atual
}

// Limpar zera o slot e cancela qualquer timer pendente.
func (a *Apresentador) Limpar() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.geracao++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.atual = Notificacao{}
}

// desvanecer inicia a transição de desaparecimento, se esta geração ainda for a
// vigente.
func (a *Apresentador) desvanecer(g uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if g != a.geracao || a.atual.Estado != Exibindo {
		return
	}
	a.atual.Estado = Desvanecendo
	a.timer = time.AfterFunc(a.desvanecimento, func() { a.limparGeracao(g) })
}

// limparGeracao conclui a dispensa: só limpa o conteúdo se nenhuma notificação
// mais nova chegou durante a transição.
func (a *Apresentador) limparGeracao(g uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if g != a.geracao {
		return
	}
	a.atual = Notificacao{}
	a.timer = nil
}
