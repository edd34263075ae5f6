package datastruct

import "iter"

func MakeSet[T comparable](vs ...T) Set[T] {
	set := make(Set[T], len(vs))
	set.Add(vs...)
	return set
}

// Set is the native hash table based set.
type Set[T comparable] map[T]struct{}

var _ MutableSet[string] = (Set[string])(nil)

func (s Set[T]) Add(vs ...T) {
	for _, v := range vs {
		s[v] = struct{}{}
	}
}

func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Delete(v T) { delete(s, v) }

func (s Set[T]) Len() int { return len(s) }

func (s Set[T]) ToSlice() []T {
	var out []T
	for v := range s {
		out = append(out, v)
	}
	return out
}

func (s Set[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// OrderedSet is a set that iterates in insertion order.
type OrderedSet[T comparable] struct {
	index map[T]int
	vs    []T
}

var _ MutableSet[string] = (*OrderedSet[string])(nil)

func (s *OrderedSet[T]) Add(vs ...T) {
	for _, v := range vs {
		s.add(v)
	}
}

func (s *OrderedSet[T]) add(v T) {
	if s.index == nil {
		s.index = make(map[T]int)
	}
	if _, ok := s.index[v]; ok {
		return
	}
	s.index[v] = len(s.vs)
	s.vs = append(s.vs, v)
}

func (s *OrderedSet[T]) Has(v T) bool {
	if s == nil || s.index == nil {
		return false
	}
	_, ok := s.index[v]
	return ok
}

func (s *OrderedSet[T]) Delete(v T) {
	if s == nil || s.index == nil {
		return
	}
	i, ok := s.index[v]
	if !ok {
		return
	}
	delete(s.index, v)
	s.vs = append(s.vs[:i], s.vs[i+1:]...)
	for j := i; j < len(s.vs); j++ {
		s.index[s.vs[j]] = j
	}
}

func (s *OrderedSet[T]) ToSlice() []T {
	if s == nil {
		return nil
	}
	return append([]T(nil), s.vs...)
}

func (s *OrderedSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.vs)
}

func (s *OrderedSet[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for _, v := range s.vs {
			if !yield(v) {
				return
			}
		}
	}
}
