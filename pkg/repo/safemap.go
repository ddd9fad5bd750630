package repo

import (
	"slices"
	"sync"
)

// SafeMap is a mutex-guarded map that remembers insertion order. In-memory
// repositories use it as their table.
type SafeMap[K comparable, V any] struct {
	mu   sync.RWMutex
	m    map[K]V
	keys []K
}

func NewSafeMap[K comparable, V any]() *SafeMap[K, V] {
	return &SafeMap[K, V]{
		m: make(map[K]V),
	}
}

func (s *SafeMap[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.m[key] = value
}

func (s *SafeMap[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, found := s.m[key]
	return val, found
}

func (s *SafeMap[K, V]) Delete(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[key]; !ok {
		return
	}
	delete(s.m, key)
	s.keys = slices.DeleteFunc(s.keys, func(k K) bool { return k == key })
}

// Values returns a snapshot in insertion order.
func (s *SafeMap[K, V]) Values() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]V, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.m[k])
	}
	return out
}

// Find returns the first value, in insertion order, matching pred.
func (s *SafeMap[K, V]) Find(pred func(V) bool) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, k := range s.keys {
		if v := s.m[k]; pred(v) {
			return v, true
		}
	}
	var zero V
	return zero, false
}

func (s *SafeMap[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
