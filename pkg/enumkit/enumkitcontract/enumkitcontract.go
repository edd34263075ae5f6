// Package enumkitcontract holds reusable test suites that check a container type
// iterates the same way through enumkit as it does through its own Iter.
//
// Implementers of new capability types run them from their own tests:
//
//	func TestMyList(t *testing.T) {
//		enumkitcontract.Sequence(func(tb testing.TB, vs []int) *MyList[int] {
//			return NewMyList(vs...)
//		}).Test(t)
//	}
package enumkitcontract

import (
	"fmt"
	"testing"

	"go.llib.dev/fastenum/pkg/datastruct"
	"go.llib.dev/fastenum/pkg/enumkit"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

// Make creates the container under test, populated with the given elements in order.
type Make[Subject, E any] func(tb testing.TB, vs []E) Subject

func Sequence[T any, Subject datastruct.Iterable[T]](mk Make[Subject, T], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	subject := func(t *testcase.T, n int) Subject {
		return mk(t, random.Slice(n, func() T { return c.makeElem(t) }))
	}

	s.Test("the cursor yields what the container's own iterator yields", func(t *testcase.T) {
		for _, n := range []int{0, 1, t.Random.IntBetween(2, 7), t.Random.IntBetween(64, 256)} {
			seq := subject(t, n)
			exp := iterkit.Collect(seq.Iter())
			cur := enumkit.Of[T](seq).Cursor()
			got, err := collect[T](&cur)
			assert.NoError(t, err)
			assert.Equal(t, exp, got, assert.MessageF("length: %d", n))
		}
	})

	s.Test("All yields what the container's own iterator yields", func(t *testcase.T) {
		seq := subject(t, t.Random.IntBetween(0, 7))
		assert.Equal(t, iterkit.Collect(seq.Iter()), iterkit.Collect(enumkit.Of[T](seq).All()))
	})

	s.Test("the strategy is the expected one", func(t *testcase.T) {
		if c.Strategy == nil {
			t.Skip("no expected strategy is configured")
		}
		n := t.Random.IntBetween(0, 7)
		assert.Equal(t, c.Strategy(n), enumkit.StrategyOf[T](subject(t, n)))
	})

	s.Test("HasNext is idempotent", func(t *testcase.T) {
		seq := subject(t, t.Random.IntBetween(1, 7))
		exp := iterkit.Collect(seq.Iter())
		cur := enumkit.Of[T](seq).Cursor()
		defer cur.Close()
		for _, v := range exp {
			t.Random.Repeat(1, 3, func() { assert.True(t, cur.HasNext()) })
			assert.True(t, cur.Next())
			assert.Equal(t, v, cur.Value())
		}
		t.Random.Repeat(1, 3, func() { assert.False(t, cur.HasNext()) })
	})

	s.Test("an exhausted cursor stays exhausted", func(t *testcase.T) {
		cur := enumkit.Of[T](subject(t, t.Random.IntBetween(0, 3))).Cursor()
		defer cur.Close()
		for cur.Next() {
		}
		t.Random.Repeat(2, 5, func() {
			assert.False(t, cur.Next())
			assert.False(t, cur.HasNext())
		})
	})

	s.Test("a cursor can be abandoned early", func(t *testcase.T) {
		cur := enumkit.Of[T](subject(t, t.Random.IntBetween(2, 7))).Cursor()
		assert.True(t, cur.Next())
		assert.NoError(t, cur.Close())
		assert.NoError(t, cur.Close())
	})

	return s.AsSuite(fmt.Sprintf("Sequence[%T]", *new(T)))
}

func KVS[K comparable, V any, Subject datastruct.ReadOnlyKVS[K, V]](mk Make[Subject, iterkit.KV[K, V]], opts ...KVSOption[K, V]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	subject := func(t *testcase.T, n int) Subject {
		var (
			keys []K
			kvs  []iterkit.KV[K, V]
		)
		for range n {
			k := random.Unique(func() K { return c.makeK(t) }, keys...)
			keys = append(keys, k)
			kvs = append(kvs, iterkit.KV[K, V]{K: k, V: c.makeV(t)})
		}
		return mk(t, kvs)
	}

	s.Test("every pair of the store is yielded once", func(t *testcase.T) {
		for _, n := range []int{0, 1, t.Random.IntBetween(2, 7), t.Random.IntBetween(64, 256)} {
			kvs := subject(t, n)
			cur := enumkit.OfReadOnlyKVS[K, V](kvs).Cursor()
			var got = make([]iterkit.KV[K, V], 0)
			for cur.Next() {
				got = append(got, cur.Pair())
			}
			assert.NoError(t, errorkit.Merge(cur.Err(), cur.Close()))
			assert.ContainsExactly(t, iterkit.CollectKV(kvs.Iter()), got)
		}
	})

	s.Test("All yields every pair of the store", func(t *testcase.T) {
		kvs := subject(t, t.Random.IntBetween(0, 7))
		assert.ContainsExactly(t,
			iterkit.CollectKV(kvs.Iter()),
			iterkit.CollectKV(enumkit.OfReadOnlyKVS[K, V](kvs).All()))
	})

	s.Test("an empty store is iterated as the empty sequence", func(t *testcase.T) {
		cur := enumkit.OfReadOnlyKVS[K, V](subject(t, 0)).Cursor()
		assert.Equal(t, enumkit.StrategyEmpty, cur.Strategy())
		assert.False(t, cur.HasNext())
		assert.False(t, cur.Next())
	})

	s.Test("HasNext is idempotent", func(t *testcase.T) {
		n := t.Random.IntBetween(1, 7)
		cur := enumkit.OfReadOnlyKVS[K, V](subject(t, n)).Cursor()
		defer cur.Close()
		for range n {
			t.Random.Repeat(1, 3, func() { assert.True(t, cur.HasNext()) })
			assert.True(t, cur.Next())
		}
		t.Random.Repeat(1, 3, func() { assert.False(t, cur.HasNext()) })
		assert.False(t, cur.Next())
	})

	return s.AsSuite(fmt.Sprintf("KVS[%T, %T]", *new(K), *new(V)))
}

func Set[T comparable, Subject datastruct.ReadOnlySet[T]](mk Make[Subject, T], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	subject := func(t *testcase.T, n int) ([]T, Subject) {
		vs := random.Slice(n, func() T { return c.makeElem(t) }, random.UniqueValues)
		return vs, mk(t, vs)
	}

	s.Test("every member of the set is yielded once", func(t *testcase.T) {
		for _, n := range []int{0, 1, t.Random.IntBetween(2, 7), t.Random.IntBetween(64, 256)} {
			vs, set := subject(t, n)
			cur := enumkit.OfReadOnlySet[T](set).Cursor()
			got, err := collect[T](&cur)
			assert.NoError(t, err)
			assert.ContainsExactly(t, vs, got)
		}
	})

	s.Test("All yields every member of the set", func(t *testcase.T) {
		vs, set := subject(t, t.Random.IntBetween(0, 7))
		assert.ContainsExactly(t, vs, iterkit.Collect(enumkit.OfReadOnlySet[T](set).All()))
	})

	s.Test("an empty set is iterated as the empty sequence", func(t *testcase.T) {
		_, set := subject(t, 0)
		cur := enumkit.OfReadOnlySet[T](set).Cursor()
		assert.Equal(t, enumkit.StrategyEmpty, cur.Strategy())
		assert.False(t, cur.HasNext())
	})

	s.Test("an exhausted cursor stays exhausted", func(t *testcase.T) {
		_, set := subject(t, t.Random.IntBetween(1, 7))
		cur := enumkit.OfReadOnlySet[T](set).Cursor()
		defer cur.Close()
		for cur.Next() {
		}
		t.Random.Repeat(2, 5, func() {
			assert.False(t, cur.HasNext())
			assert.False(t, cur.Next())
		})
	})

	return s.AsSuite(fmt.Sprintf("Set[%T]", *new(T)))
}

type pullIter[T any] interface {
	iterkit.PullIter[T]
	HasNext() bool
}

func collect[T any](cur pullIter[T]) ([]T, error) {
	var vs = make([]T, 0)
	for cur.Next() {
		vs = append(vs, cur.Value())
	}
	return vs, errorkit.Merge(cur.Err(), cur.Close())
}
