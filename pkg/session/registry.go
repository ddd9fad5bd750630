package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

type State int

const (
	Unscoped State = iota
	Scoped
	TornDown
)

func (s State) String() string {
	switch s {
	case Unscoped:
		return "unscoped"
	case Scoped:
		return "scoped"
	case TornDown:
		return "torn_down"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	ErrUnknownScope = errors.New("session scope not found")
	ErrScopeClosed  = errors.New("session scope is torn down")
)

// Registry maps scope ids to lazily acquired sessions.
// Every in-flight request owns exactly one scope and nothing else touches it.
type Registry struct {
	provider Provider

	mu     sync.Mutex
	scopes map[uuid.UUID]*Scope
}

func NewRegistry(provider Provider) *Registry {
	return &Registry{
		provider: provider,
		scopes:   make(map[uuid.UUID]*Scope),
	}
}

func (r *Registry) Open() *Scope {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	for r.scopes[id] != nil {
		id = uuid.New()
	}
	s := &Scope{id: id, registry: r, state: Scoped}
	r.scopes[id] = s
	scopesOpened.Inc()
	scopesActive.Inc()
	return s
}

func (r *Registry) Lookup(id uuid.UUID) (*Scope, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.scopes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScope, id)
	}
	return s, nil
}

// Close tears the scope down and releases its session. Closing twice is a no-op.
func (r *Registry) Close(s *Scope) {
	r.mu.Lock()
	if r.scopes[s.id] == s {
		delete(r.scopes, s.id)
	}
	r.mu.Unlock()
	s.teardown()
}

func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.scopes)
}

type Scope struct {
	id       uuid.UUID
	registry *Registry

	mu    sync.Mutex
	state State
	conn  Conn
}

func (s *Scope) ID() uuid.UUID {
	return s.id
}

func (s *Scope) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Session returns the scope's connection, acquiring it on first use.
func (s *Scope) Session(ctx context.Context) (Conn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Scoped {
		return nil, fmt.Errorf("%w: %s", ErrScopeClosed, s.id)
	}
	if s.conn != nil {
		return s.conn, nil
	}
	conn, err := s.registry.provider.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire session for scope %s: %w", s.id, err)
	}
	s.conn = conn
	sessionsAcquired.Inc()
	return conn, nil
}

func (s *Scope) teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == TornDown {
		return
	}
	s.state = TornDown
	scopesActive.Dec()
	if s.conn != nil {
		s.conn.Release()
		s.conn = nil
	}
}
