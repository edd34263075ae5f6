// Package enumkit iterates generic collections through the cheapest access path their concrete type allows.
//
// # Summary
//
// Walking a datastruct.Iterable through its Iter method is always correct,
// but for the common containers it is also the slow path:
// a closure per element, and a coroutine when a pull style cursor is needed.
// Most collections in practice are plain arrays, slices or hash maps,
// and those can be read by position or through the runtime's own map iterator instead.
//
// An Enumerable wraps a capability reference and, when a Cursor is requested,
// inspects the concrete type once to pick a Strategy.
// From then on every step is a switch over a fixed tag and a direct read.
// Unknown representations fall back to the collection's own iterator,
// so the observable sequence is always the one that Iter would produce.
//
//	for c := enumkit.Of(seq).Cursor(); c.Next(); {
//		_ = c.Value()
//	}
//
// or with the range-over-func form:
//
//	for v := range enumkit.Of(seq).All() {
//		_ = v
//	}
//
// # Hazards
//
// The length of positional containers is read once, when the Cursor is made.
// Mutating the container while a traversal is in progress is not detected,
// and reading from a shrunk container will fail the same way an out of range index does.
package enumkit

import (
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
)

// ErrInvalidState is raised when a cursor is read while it is not positioned on an element.
const ErrInvalidState errorkit.Error = "enumkit: cursor is not positioned on an element"

// Strategy is the access path a cursor uses to read elements.
type Strategy uint8

const (
	// StrategyEmpty means there is nothing to iterate.
	StrategyEmpty Strategy = iota
	// StrategyArray reads a datastruct.Array directly by index.
	StrategyArray
	// StrategyIndexable reads through datastruct.ReadOnlyList's At.
	StrategyIndexable
	// StrategyList reads through datastruct.List's Lookup.
	StrategyList
	// StrategyHashSlots walks a native map with the runtime's map iterator.
	StrategyHashSlots
	// StrategyDelegated pulls from the collection's own iterator.
	StrategyDelegated
)

func (s Strategy) String() string {
	switch s {
	case StrategyEmpty:
		return "empty"
	case StrategyArray:
		return "direct-array"
	case StrategyIndexable:
		return "direct-indexable"
	case StrategyList:
		return "direct-growable-list"
	case StrategyHashSlots:
		return "direct-hash-slots"
	case StrategyDelegated:
		return "delegated-generic"
	default:
		return "unknown"
	}
}

func (s Strategy) positional() bool {
	return s == StrategyArray || s == StrategyIndexable || s == StrategyList
}

// PullIter is the pull iterator a cursor falls back to
// when it can't read the container directly.
type PullIter[T any] interface {
	iterkit.PullIter[T]
	// HasNext reports whether Next would advance.
	// It doesn't move the iterator, so calling it repeatedly yields the same answer.
	HasNext() bool
}

// PullIter2 is the key-value pair variant of PullIter.
type PullIter2[K, V any] interface {
	HasNext() bool
	Next() bool
	Key() K
	Value() V
	Err() error
	Close() error
}
