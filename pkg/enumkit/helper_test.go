package enumkit_test

import (
	"iter"

	"go.llib.dev/fastenum/pkg/datastruct"
)

// Seq is an Iterable of unknown shape: no length, no positional access.
type Seq[T any] iter.Seq[T]

func (s Seq[T]) Iter() iter.Seq[T] { return iter.Seq[T](s) }

// Counted is an Iterable that knows its length, but offers no positional access.
type Counted[T any] struct {
	Values []T
}

func (c Counted[T]) Len() int { return len(c.Values) }

func (c Counted[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range c.Values {
			if !yield(v) {
				return
			}
		}
	}
}

// WriteOnlyIndexed implements datastruct.List, but not datastruct.ReadOnlyList.
type WriteOnlyIndexed[T any] struct {
	Values []T
}

var _ datastruct.List[int] = (*WriteOnlyIndexed[int])(nil)

func (l *WriteOnlyIndexed[T]) Len() int { return len(l.Values) }

func (l *WriteOnlyIndexed[T]) Lookup(index int) (T, bool) {
	if index < 0 || len(l.Values) <= index {
		var zero T
		return zero, false
	}
	return l.Values[index], true
}

func (l *WriteOnlyIndexed[T]) Set(index int, val T) bool {
	if index < 0 || len(l.Values) <= index {
		return false
	}
	l.Values[index] = val
	return true
}

func (l *WriteOnlyIndexed[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.Values {
			if !yield(v) {
				return
			}
		}
	}
}

// Tracked wraps an iter.Seq and records whether the producer side was released.
type Tracked[T any] struct {
	Values   []T
	Released bool
	Started  bool
}

func (tr *Tracked[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		tr.Started = true
		defer func() { tr.Released = true }()
		for _, v := range tr.Values {
			if !yield(v) {
				return
			}
		}
	}
}

type cursor[T any] interface {
	HasNext() bool
	Next() bool
	Value() T
	Close() error
}

func drain[T any](c cursor[T]) []T {
	defer c.Close()
	var vs []T
	for c.Next() {
		vs = append(vs, c.Value())
	}
	return vs
}

func collect[T any](i iter.Seq[T]) []T {
	var vs []T
	for v := range i {
		vs = append(vs, v)
	}
	return vs
}
