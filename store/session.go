package store

import "sync"

// Session is one visitor's mutable storefront state: their cart and the
// promo discount they have applied. Handlers serialize access through the
// embedded mutex; the cart and promo engines themselves stay lock-free.
type Session struct {
	sync.Mutex
	Cart  *Cart
	Promo *Promo
}

// Sessions is the in-process registry mapping session ids to their state.
// Nothing is persisted: a session starts with an empty cart and vanishes
// with the process.
type Sessions struct {
	mu         sync.Mutex
	table      map[string]*Session
	promoCodes map[string]int
}

// NewSessions builds a registry whose sessions share the given promo table.
func NewSessions(promoCodes map[string]int) *Sessions {
	return &Sessions{
		table:      make(map[string]*Session),
		promoCodes: promoCodes,
	}
}

// Get returns the session for id, creating an empty one on first sight.
func (s *Sessions) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.table[id]; ok {
		return sess
	}
	sess := &Session{
		Cart:  NewCart(),
		Promo: NewPromo(s.promoCodes),
	}
	s.table[id] = sess
	return sess
}

// Len is the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.table)
}
