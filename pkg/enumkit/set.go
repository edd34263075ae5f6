package enumkit

import (
	"iter"
	"reflect"

	"go.llib.dev/fastenum/pkg/datastruct"
)

// OfSet wraps a set for accelerated iteration.
// A nil set is accepted and iterates as an empty one.
func OfSet[T comparable](set datastruct.MutableSet[T]) SetEnumerable[T] {
	return SetEnumerable[T]{set: set}
}

// SetEnumerable starts traversals over a MutableSet.
type SetEnumerable[T comparable] struct {
	set datastruct.MutableSet[T]
}

func (e SetEnumerable[T]) Cursor() SetCursor[T] { return newSetCursor[T](e.set) }

// All returns the members as a range-over-func sequence.
func (e SetEnumerable[T]) All() iter.Seq[T] { return allSet[T](e.set) }

// OfReadOnlySet is OfSet for sets that are only known to be readable.
func OfReadOnlySet[T comparable](set datastruct.ReadOnlySet[T]) ReadOnlySetEnumerable[T] {
	return ReadOnlySetEnumerable[T]{set: set}
}

// ReadOnlySetEnumerable starts traversals over a ReadOnlySet.
type ReadOnlySetEnumerable[T comparable] struct {
	set datastruct.ReadOnlySet[T]
}

func (e ReadOnlySetEnumerable[T]) Cursor() SetCursor[T] { return newSetCursor[T](e.set) }

func (e ReadOnlySetEnumerable[T]) All() iter.Seq[T] { return allSet[T](e.set) }

func newSetCursor[T comparable](set datastruct.ReadOnlySet[T]) SetCursor[T] {
	if set == nil || set.Len() == 0 {
		return SetCursor[T]{strategy: StrategyEmpty, fallback: Empty[T]()}
	}
	if s, ok := set.(datastruct.Set[T]); ok {
		var c = SetCursor[T]{strategy: StrategyHashSlots, val: new(T)}
		c.holder = reflect.ValueOf(c.val).Elem()
		c.native.Reset(reflect.ValueOf(map[T]struct{}(s)))
		return c
	}
	return SetCursor[T]{strategy: StrategyDelegated, fallback: pull(set.Iter())}
}

func allSet[T comparable](set datastruct.ReadOnlySet[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if set == nil || set.Len() == 0 {
			return
		}
		if s, ok := set.(datastruct.Set[T]); ok {
			for v := range s {
				if !yield(v) {
					return
				}
			}
			return
		}
		for v := range set.Iter() {
			if !yield(v) {
				return
			}
		}
	}
}

// SetCursor is a single traversal over a set.
// datastruct.Set is walked with the runtime's map iterator,
// copying each member into a holder allocated once per cursor.
// Any other set is read through its own Iter.
type SetCursor[T comparable] struct {
	strategy Strategy

	native reflect.MapIter
	holder reflect.Value
	more   bool
	peeked bool
	ok     bool
	val    *T

	fallback PullIter[T]
}

func (c *SetCursor[T]) Strategy() Strategy { return c.strategy }

func (c *SetCursor[T]) HasNext() bool {
	if c.strategy != StrategyHashSlots {
		return c.fallback != nil && c.fallback.HasNext()
	}
	if !c.peeked {
		c.more = c.native.Next()
		c.peeked = true
	}
	return c.more
}

func (c *SetCursor[T]) Next() bool {
	if c.strategy != StrategyHashSlots {
		return c.fallback != nil && c.fallback.Next()
	}
	if !c.HasNext() {
		return false
	}
	c.peeked = false
	c.holder.SetIterKey(&c.native)
	c.ok = true
	return true
}

func (c *SetCursor[T]) Value() T {
	if c.strategy != StrategyHashSlots {
		if c.fallback == nil {
			panic(ErrInvalidState)
		}
		return c.fallback.Value()
	}
	if !c.ok {
		panic(ErrInvalidState)
	}
	return *c.val
}

func (c *SetCursor[T]) Err() error { return nil }

func (c *SetCursor[T]) Close() error {
	if c.strategy == StrategyHashSlots {
		c.native.Reset(reflect.Value{})
		c.more, c.peeked = false, true
		return nil
	}
	if c.fallback == nil {
		return nil
	}
	return c.fallback.Close()
}
