package enumkit

import (
	"iter"

	"go.llib.dev/fastenum/pkg/datastruct"
	"go.llib.dev/frameless/pkg/iterkit"
)

// Of wraps any Iterable for accelerated iteration.
// A nil seq is accepted and iterates as an empty sequence.
func Of[T any](seq datastruct.Iterable[T]) Enumerable[T] {
	return Enumerable[T]{seq: seq}
}

// Enumerable is the entry point for iterating a datastruct.Iterable.
// It only borrows the wrapped collection, and it can start any number of independent traversals.
type Enumerable[T any] struct {
	seq datastruct.Iterable[T]
}

// StrategyOf reports the Strategy a Cursor would use for seq.
func StrategyOf[T any](seq datastruct.Iterable[T]) Strategy {
	return probe(seq).strategy
}

// shape is the outcome of probing an Iterable for the capabilities a cursor can exploit.
type shape[T any] struct {
	strategy Strategy
	array    datastruct.Array[T]
	rol      datastruct.ReadOnlyList[T]
	list     datastruct.List[T]
	length   int
}

// probe checks the capabilities in order of decreasing access cost certainty.
// The order decides which strategy wins for types that satisfy more than one capability.
func probe[T any](seq datastruct.Iterable[T]) shape[T] {
	switch seq := seq.(type) {
	case nil:
		return shape[T]{strategy: StrategyEmpty}
	case datastruct.Array[T]:
		return shape[T]{strategy: StrategyArray, array: seq, length: len(seq)}
	case datastruct.ReadOnlyList[T]:
		return shape[T]{strategy: StrategyIndexable, rol: seq, length: seq.Len()}
	case datastruct.List[T]:
		return shape[T]{strategy: StrategyList, list: seq, length: seq.Len()}
	case datastruct.Sizer:
		if seq.Len() == 0 {
			return shape[T]{strategy: StrategyEmpty}
		}
	}
	return shape[T]{strategy: StrategyDelegated}
}

// Cursor starts a new traversal.
// The caller owns the returned Cursor and should Close it when it abandons a delegated traversal early.
func (e Enumerable[T]) Cursor() Cursor[T] {
	sh := probe(e.seq)
	c := Cursor[T]{
		strategy: sh.strategy,
		array:    sh.array,
		rol:      sh.rol,
		list:     sh.list,
		limit:    sh.length - 1,
		index:    -1,
	}
	switch sh.strategy {
	case StrategyEmpty:
		c.fallback = Empty[T]()
	case StrategyDelegated:
		c.fallback = pull(e.seq.Iter())
	}
	return c
}

// All returns the elements as a range-over-func sequence.
// The strategy is resolved when the iteration starts,
// and the delegated case ranges over the collection's own Iter without a pull iterator.
func (e Enumerable[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		sh := probe(e.seq)
		switch sh.strategy {
		case StrategyArray:
			for _, v := range sh.array {
				if !yield(v) {
					return
				}
			}
		case StrategyIndexable:
			for i := 0; i < sh.length; i++ {
				if !yield(sh.rol.At(i)) {
					return
				}
			}
		case StrategyList:
			for i := 0; i < sh.length; i++ {
				v, _ := sh.list.Lookup(i)
				if !yield(v) {
					return
				}
			}
		case StrategyDelegated:
			for v := range e.seq.Iter() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Cursor is a single traversal over an Enumerable.
//
// Exactly one access path is active per Cursor:
// a positional one (array, indexable, list) with a limit fixed at creation,
// or a fallback PullIter for the delegated and empty cases.
// Cursor is a value type meant to live in the caller's stack frame,
// and it must not be shared between goroutines.
type Cursor[T any] struct {
	strategy Strategy

	array datastruct.Array[T]
	rol   datastruct.ReadOnlyList[T]
	list  datastruct.List[T]
	limit int
	index int

	fallback PullIter[T]
}

var _ iterkit.PullIter[int] = (*Cursor[int])(nil)

func (c *Cursor[T]) Strategy() Strategy { return c.strategy }

// HasNext reports whether Next would advance the cursor.
func (c *Cursor[T]) HasNext() bool {
	if c.strategy.positional() {
		return c.index < c.limit
	}
	return c.fallback != nil && c.fallback.HasNext()
}

// Next advances the cursor to the next element, if there is one.
func (c *Cursor[T]) Next() bool {
	if c.strategy.positional() {
		if c.index < c.limit {
			c.index++
			return true
		}
		return false
	}
	return c.fallback != nil && c.fallback.Next()
}

// Value returns the element the cursor is positioned on.
// It panics with ErrInvalidState when called before the first successful Next.
func (c *Cursor[T]) Value() T {
	switch c.strategy {
	case StrategyArray:
		return c.array[c.position()]
	case StrategyIndexable:
		return c.rol.At(c.position())
	case StrategyList:
		v, _ := c.list.Lookup(c.position())
		return v
	default:
		if c.fallback == nil {
			panic(ErrInvalidState)
		}
		return c.fallback.Value()
	}
}

func (c *Cursor[T]) position() int {
	if c.index < 0 {
		panic(ErrInvalidState)
	}
	return c.index
}

func (c *Cursor[T]) Err() error { return nil }

// Close releases the delegated iterator.
// It is a no-op for every other strategy, and safe to call more than once.
func (c *Cursor[T]) Close() error {
	if c.fallback == nil {
		return nil
	}
	return c.fallback.Close()
}
