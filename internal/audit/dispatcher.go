package audit

import (
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	ActionLogin          = "login"
	ActionCadastro       = "cadastro"
	ActionUsuarioAlterar = "usuario_alterado"
	ActionUsuarioExcluir = "usuario_excluido"
	ActionProdutoInserir = "produto_inserido"
	ActionProdutoAlterar = "produto_alterado"
	ActionProdutoExcluir = "produto_excluido"

	EntityUsuario = "usuario"
	EntityProduto = "produto"
)

type Event struct {
	UsuarioID *uint
	Action    string
	Entity    string
	EntityID  *uint
	Metadata  any
}

// Sink recebe eventos; os use cases dependem só disso.
type Sink interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.logger.Log(ev); err != nil {
			log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		// fila cheia: descarta, a requisição não espera pela auditoria
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close para de aceitar eventos e espera o worker gravar o que restou na fila.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}

// Nop descarta tudo. Usado quando a auditoria não interessa (testes, ferramentas).
type Nop struct{}

func (Nop) Dispatch(Event) {}

var (
	_ Sink = (*Dispatcher)(nil)
	_ Sink = Nop{}
)
