package enumkit

import (
	"iter"

	"go.llib.dev/fastenum/pkg/datastruct"
)

// OfReadOnlyList wraps a collection already known to have O(1) positional reads.
// No type detection is needed, the cursor always reads through At.
func OfReadOnlyList[T any](list datastruct.ReadOnlyList[T]) ReadOnlyListEnumerable[T] {
	return ReadOnlyListEnumerable[T]{list: list}
}

type ReadOnlyListEnumerable[T any] struct {
	list datastruct.ReadOnlyList[T]
}

func (e ReadOnlyListEnumerable[T]) Cursor() ListCursor[T] {
	return ListCursor[T]{
		strategy: StrategyIndexable,
		rol:      e.list,
		limit:    lenOf(e.list) - 1,
		index:    -1,
	}
}

func (e ReadOnlyListEnumerable[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, n := 0, lenOf(e.list); i < n; i++ {
			if !yield(e.list.At(i)) {
				return
			}
		}
	}
}

// OfList wraps a collection already known to have O(1) positional reads and writes.
func OfList[T any](list datastruct.List[T]) ListEnumerable[T] {
	return ListEnumerable[T]{list: list}
}

type ListEnumerable[T any] struct {
	list datastruct.List[T]
}

func (e ListEnumerable[T]) Cursor() ListCursor[T] {
	return ListCursor[T]{
		strategy: StrategyList,
		list:     e.list,
		limit:    lenOf(e.list) - 1,
		index:    -1,
	}
}

func (e ListEnumerable[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, n := 0, lenOf(e.list); i < n; i++ {
			v, _ := e.list.Lookup(i)
			if !yield(v) {
				return
			}
		}
	}
}

// ListCursor is a positional cursor over an indexed list.
// A nil list starts with a limit of -1, so it is exhausted from the start.
type ListCursor[T any] struct {
	strategy Strategy
	rol      datastruct.ReadOnlyList[T]
	list     datastruct.List[T]
	limit    int
	index    int
}

func (c *ListCursor[T]) Strategy() Strategy { return c.strategy }

func (c *ListCursor[T]) HasNext() bool { return c.index < c.limit }

func (c *ListCursor[T]) Next() bool {
	if c.index < c.limit {
		c.index++
		return true
	}
	return false
}

func (c *ListCursor[T]) Value() T {
	if c.index < 0 {
		panic(ErrInvalidState)
	}
	if c.strategy == StrategyIndexable {
		return c.rol.At(c.index)
	}
	v, _ := c.list.Lookup(c.index)
	return v
}

func (c *ListCursor[T]) Err() error { return nil }

func (c *ListCursor[T]) Close() error { return nil }

func lenOf(s datastruct.Sizer) int {
	if s == nil {
		return 0
	}
	return s.Len()
}
