package enumkit

import (
	"iter"
	"reflect"

	"go.llib.dev/fastenum/pkg/datastruct"
	"go.llib.dev/frameless/pkg/iterkit"
)

// OfKVS wraps a key-value store for accelerated iteration.
// A nil store is accepted and iterates as an empty one.
func OfKVS[K comparable, V any](kvs datastruct.KVS[K, V]) KVSEnumerable[K, V] {
	return KVSEnumerable[K, V]{kvs: kvs}
}

// KVSEnumerable starts traversals over a KVS.
type KVSEnumerable[K comparable, V any] struct {
	kvs datastruct.KVS[K, V]
}

// Cursor starts a new traversal over the store.
func (e KVSEnumerable[K, V]) Cursor() KVSCursor[K, V] {
	return newKVSCursor[K, V](e.kvs)
}

// All returns the pairs as a range-over-func sequence.
func (e KVSEnumerable[K, V]) All() iter.Seq2[K, V] {
	return allKVS[K, V](e.kvs)
}

// OfReadOnlyKVS is OfKVS for stores that are only known to be readable.
func OfReadOnlyKVS[K comparable, V any](kvs datastruct.ReadOnlyKVS[K, V]) ReadOnlyKVSEnumerable[K, V] {
	return ReadOnlyKVSEnumerable[K, V]{kvs: kvs}
}

// ReadOnlyKVSEnumerable starts traversals over a ReadOnlyKVS.
type ReadOnlyKVSEnumerable[K comparable, V any] struct {
	kvs datastruct.ReadOnlyKVS[K, V]
}

func (e ReadOnlyKVSEnumerable[K, V]) Cursor() KVSCursor[K, V] {
	return newKVSCursor[K, V](e.kvs)
}

func (e ReadOnlyKVSEnumerable[K, V]) All() iter.Seq2[K, V] {
	return allKVS[K, V](e.kvs)
}

func newKVSCursor[K comparable, V any](kvs datastruct.ReadOnlyKVS[K, V]) KVSCursor[K, V] {
	if kvs == nil || kvs.Len() == 0 {
		return KVSCursor[K, V]{strategy: StrategyEmpty, fallback: Empty2[K, V]()}
	}
	if m, ok := kvs.(datastruct.Map[K, V]); ok {
		var c = KVSCursor[K, V]{strategy: StrategyHashSlots, key: new(K), val: new(V)}
		c.keyHolder = reflect.ValueOf(c.key).Elem()
		c.valHolder = reflect.ValueOf(c.val).Elem()
		c.native.Reset(reflect.ValueOf(map[K]V(m)))
		return c
	}
	return KVSCursor[K, V]{strategy: StrategyDelegated, fallback: pull2(kvs.Iter())}
}

func allKVS[K comparable, V any](kvs datastruct.ReadOnlyKVS[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if kvs == nil || kvs.Len() == 0 {
			return
		}
		if m, ok := kvs.(datastruct.Map[K, V]); ok {
			for k, v := range m {
				if !yield(k, v) {
					return
				}
			}
			return
		}
		for k, v := range kvs.Iter() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// KVSCursor is a single traversal over a key-value store.
//
// For datastruct.Map it walks the hash table with the runtime's map iterator,
// held by value, and copies each slot into a key and a value holder
// allocated once per cursor, so advancing allocates nothing.
// Every other KVS is read through its own Iter.
type KVSCursor[K comparable, V any] struct {
	strategy Strategy

	native    reflect.MapIter
	keyHolder reflect.Value
	valHolder reflect.Value
	more      bool
	peeked    bool
	ok        bool
	key       *K
	val       *V

	fallback PullIter2[K, V]
}

func (c *KVSCursor[K, V]) Strategy() Strategy { return c.strategy }

func (c *KVSCursor[K, V]) HasNext() bool {
	if c.strategy != StrategyHashSlots {
		return c.fallback != nil && c.fallback.HasNext()
	}
	if !c.peeked {
		c.more = c.native.Next()
		c.peeked = true
	}
	return c.more
}

func (c *KVSCursor[K, V]) Next() bool {
	if c.strategy != StrategyHashSlots {
		return c.fallback != nil && c.fallback.Next()
	}
	if !c.HasNext() {
		return false
	}
	c.peeked = false
	c.keyHolder.SetIterKey(&c.native)
	c.valHolder.SetIterValue(&c.native)
	c.ok = true
	return true
}

func (c *KVSCursor[K, V]) Key() K {
	if c.strategy != StrategyHashSlots {
		if c.fallback == nil {
			panic(ErrInvalidState)
		}
		return c.fallback.Key()
	}
	if !c.ok {
		panic(ErrInvalidState)
	}
	return *c.key
}

func (c *KVSCursor[K, V]) Value() V {
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

// Pair returns the current key and value together.
func (c *KVSCursor[K, V]) Pair() iterkit.KV[K, V] {
	return iterkit.KV[K, V]{K: c.Key(), V: c.Value()}
}

func (c *KVSCursor[K, V]) Err() error { return nil }

func (c *KVSCursor[K, V]) Close() error {
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
