// internal/catalog/store.go
package catalog

import "sync/atomic"

// Store holds the current catalog and allows lock-free swaps on reload.
type Store struct {
	current atomic.Pointer[Catalog]
}

func NewStore(c *Catalog) *Store {
	s := &Store{}
	s.current.Store(c)
	return s
}

func (s *Store) Current() *Catalog {
	return s.current.Load()
}

func (s *Store) Swap(c *Catalog) {
	s.current.Store(c)
}
