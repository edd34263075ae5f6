package enumkit

import (
	"reflect"
	"sync"
)

// empties holds the shared empty iterators, one per type instantiation.
var empties sync.Map // map[reflect.Type]any

// Empty returns the shared empty PullIter for T.
// The same instance is returned on every call for a given T,
// and it is safe to use from any number of goroutines, as it has no state to advance.
func Empty[T any]() PullIter[T] {
	key := reflect.TypeFor[emptyIter[T]]()
	if v, ok := empties.Load(key); ok {
		return v.(PullIter[T])
	}
	v, _ := empties.LoadOrStore(key, PullIter[T](&emptyIter[T]{}))
	return v.(PullIter[T])
}

// Empty2 returns the shared empty PullIter2 for the K-V pair.
func Empty2[K, V any]() PullIter2[K, V] {
	key := reflect.TypeFor[emptyIter2[K, V]]()
	if v, ok := empties.Load(key); ok {
		return v.(PullIter2[K, V])
	}
	v, _ := empties.LoadOrStore(key, PullIter2[K, V](&emptyIter2[K, V]{}))
	return v.(PullIter2[K, V])
}

type emptyIter[T any] struct{}

func (*emptyIter[T]) HasNext() bool { return false }
func (*emptyIter[T]) Next() bool    { return false }
func (*emptyIter[T]) Value() T      { panic(ErrInvalidState) }
func (*emptyIter[T]) Err() error    { return nil }
func (*emptyIter[T]) Close() error  { return nil }

type emptyIter2[K, V any] struct{}

func (*emptyIter2[K, V]) HasNext() bool { return false }
func (*emptyIter2[K, V]) Next() bool    { return false }
func (*emptyIter2[K, V]) Key() K        { panic(ErrInvalidState) }
func (*emptyIter2[K, V]) Value() V      { panic(ErrInvalidState) }
func (*emptyIter2[K, V]) Err() error    { return nil }
func (*emptyIter2[K, V]) Close() error  { return nil }
