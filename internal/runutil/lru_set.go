// internal/runutil/lru_set.go
package runutil

import "container/list"

// LRUSet is a size-bounded set with O(1) hit/insert. When full, the least
// recently seen key is evicted. The zero value is not usable; call NewLRUSet.
type LRUSet[K comparable] struct {
	cap int
	ll  *list.List
	m   map[K]*list.Element
}

// DefaultCapacity is used when NewLRUSet gets a capacity <= 0.
const DefaultCapacity = 4096

func NewLRUSet[K comparable](capacity int) *LRUSet[K] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRUSet[K]{cap: capacity, ll: list.New(), m: make(map[K]*list.Element)}
}

// Add inserts k and reports whether it was already present.
func (s *LRUSet[K]) Add(k K) bool {
	if e, ok := s.m[k]; ok {
		s.ll.MoveToFront(e)
		return true
	}
	s.m[k] = s.ll.PushFront(k)
	if s.ll.Len() > s.cap {
		tail := s.ll.Back()
		s.ll.Remove(tail)
		delete(s.m, tail.Value.(K))
	}
	return false
}

// Len is the number of keys currently held.
func (s *LRUSet[K]) Len() int { return s.ll.Len() }
