package datastruct

import "iter"

// Map is the native hash table based KVS.
type Map[K comparable, V any] map[K]V

var _ KVS[any, any] = (Map[any, any])(nil)

func (m Map[K, V]) Lookup(key K) (V, bool) {
	val, ok := m[key]
	return val, ok
}

func (m Map[K, V]) Get(key K) V {
	return m[key]
}

func (m Map[K, V]) Set(key K, val V) { m[key] = val }

func (m Map[K, V]) Delete(key K) { delete(m, key) }

func (m Map[K, V]) Len() int { return len(m) }

func (m Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func (m Map[K, V]) ToMap() map[K]V {
	return m
}

func (m Map[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m {
			if !yield(k, v) {
				return
			}
		}
	}
}

// OrderedMap is a KVS that remembers the insertion order of its keys.
// Iteration visits the keys in the order they were first set.
type OrderedMap[K comparable, V any] struct {
	vs   map[K]V
	keys []K
}

var _ KVS[any, any] = (*OrderedMap[any, any])(nil)

func (m *OrderedMap[K, V]) Lookup(key K) (V, bool) {
	if m == nil || m.vs == nil {
		var zero V
		return zero, false
	}
	val, ok := m.vs[key]
	return val, ok
}

func (m *OrderedMap[K, V]) Get(key K) V {
	val, _ := m.Lookup(key)
	return val
}

func (m *OrderedMap[K, V]) Set(key K, val V) {
	if m.vs == nil {
		m.vs = make(map[K]V)
	}
	if _, ok := m.vs[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vs[key] = val
}

func (m *OrderedMap[K, V]) Delete(key K) {
	if m == nil || m.vs == nil {
		return
	}
	if _, ok := m.vs[key]; !ok {
		return
	}
	delete(m.vs, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

func (m *OrderedMap[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *OrderedMap[K, V]) Keys() []K {
	if m == nil {
		return []K{}
	}
	return append(make([]K, 0, len(m.keys)), m.keys...)
}

func (m *OrderedMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, m.Len())
	for k, v := range m.Iter() {
		out[k] = v
	}
	return out
}

func (m *OrderedMap[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.vs[k]) {
				return
			}
		}
	}
}
