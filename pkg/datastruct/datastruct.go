// Package datastruct holds the collection capabilities that fastenum knows how to iterate,
// together with the concrete container types that implement them.
//
// A capability is a small interface describing what a collection can do,
// independent of how it stores its elements.
// Consumers should accept capabilities, and only the concrete containers
// know whether they are backed by a contiguous array, a hash table or something else.
package datastruct

import "iter"

// Iterable is the most general capability: something that can be walked from start to end.
type Iterable[T any] interface {
	Iter() iter.Seq[T]
}

type Sizer interface {
	Len() int
}

// ReadOnlyList is an Iterable with O(1) positional read access.
type ReadOnlyList[T any] interface {
	Iterable[T]
	Sizer
	// At returns the element at the given zero based index.
	// Reading outside of [0, Len()) is a contract violation.
	At(index int) T
}

// List is an Iterable with O(1) positional read and write access.
type List[T any] interface {
	Iterable[T]
	Sizer
	Lookup(index int) (T, bool)
	Set(index int, val T) bool
}

type ReadOnlyKVS[K comparable, V any] interface {
	Lookup(key K) (V, bool)
	Iter() iter.Seq2[K, V]
	Sizer
}

// KVS stands for Key Value Store, and a common interface for map[K]V types.
type KVS[K comparable, V any] interface {
	ReadOnlyKVS[K, V]
	Get(key K) V
	Set(key K, val V)
	Delete(key K)
	Keys() []K
	ToMap() map[K]V
}

type ReadOnlySet[T comparable] interface {
	Has(v T) bool
	Iter() iter.Seq[T]
	Sizer
}

type MutableSet[T comparable] interface {
	ReadOnlySet[T]
	Add(vs ...T)
	Delete(v T)
}
