package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Una sesión abandonada (el usuario cerró el panel a mitad del
// asistente) caduca pasado este tiempo sin actividad.
const sessionTTL = 30 * time.Minute

// Store guarda las sesiones vivas del asistente en memoria, con id
// propio por sesión. Las sesiones caducadas se barren en cada acceso.
type Store struct {
	mu  sync.Mutex
	m   map[string]*Session
	ttl time.Duration
	now func() time.Time
}

func NewStore() *Store {
	return newStore(sessionTTL, time.Now)
}

func newStore(ttl time.Duration, now func() time.Time) *Store {
	return &Store{
		m:   make(map[string]*Session),
		ttl: ttl,
		now: now,
	}
}

// Open crea una sesión en el paso 1 con formulario vacío.
func (st *Store) Open() *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.pruneLocked()

	s := &Session{
		ID:       uuid.NewString(),
		Step:     StepCustomer,
		Errors:   map[string]string{},
		lastSeen: st.now(),
	}
	st.m[s.ID] = s

	return s
}

// Get devuelve la sesión viva y renueva su marca de actividad.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.pruneLocked()

	s, ok := st.m[id]
	if ok {
		s.lastSeen = st.now()
	}
	return s, ok
}

func (st *Store) Drop(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.m, id)
}

func (st *Store) pruneLocked() {
	limit := st.now().Add(-st.ttl)
	for id, s := range st.m {
		if s.lastSeen.Before(limit) {
			delete(st.m, id)
		}
	}
}
