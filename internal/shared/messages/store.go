package messages

import "sync/atomic"

// Store serves messages from the current bundle and lets a watcher swap it
// while requests are being served.
type Store struct {
	current atomic.Pointer[Bundle]
}

func NewStore(initial *Bundle) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

func (s *Store) Message(acceptLanguage string, code int) string {
	return s.current.Load().Message(acceptLanguage, code)
}

func (s *Store) Bundle() *Bundle {
	return s.current.Load()
}

func (s *Store) Swap(bundle *Bundle) {
	if bundle == nil {
		return
	}
	s.current.Store(bundle)
}
