package enumkit_test

import (
	"testing"

	"github.com/samber/lo"

	"go.llib.dev/fastenum/pkg/datastruct"
	"go.llib.dev/fastenum/pkg/enumkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func TestOfSet(t *testing.T) {
	s := testcase.NewSpec(t)

	values := let.Var(s, func(t *testcase.T) []string {
		return random.Slice(t.Random.IntBetween(1, 7), t.Random.String, random.UniqueValues)
	})
	set := testcase.Let[datastruct.MutableSet[string]](s, nil)
	cursor := let.Var(s, func(t *testcase.T) *enumkit.SetCursor[string] {
		c := enumkit.OfSet(set.Get(t)).Cursor()
		t.Defer(c.Close)
		return &c
	})

	s.When("the set is a native hash set", func(s *testcase.Spec) {
		set.Let(s, func(t *testcase.T) datastruct.MutableSet[string] {
			return datastruct.MakeSet(values.Get(t)...)
		})

		s.Then("the hash slots are walked directly", func(t *testcase.T) {
			assert.Equal(t, enumkit.StrategyHashSlots, cursor.Get(t).Strategy())
		})

		s.Then("each member is yielded exactly once", func(t *testcase.T) {
			assert.ContainsExactly(t, values.Get(t), drain[string](cursor.Get(t)))
		})

		s.Then("All yields the same members", func(t *testcase.T) {
			assert.ContainsExactly(t, values.Get(t), collect(enumkit.OfSet(set.Get(t)).All()))
		})

		s.Then("HasNext is idempotent", func(t *testcase.T) {
			c := cursor.Get(t)
			t.Random.Repeat(2, 5, func() { assert.True(t, c.HasNext()) })
			assert.True(t, c.Next())
			assert.True(t, set.Get(t).Has(c.Value()))
		})

		s.Then("reading before the first advance is an invalid state", func(t *testcase.T) {
			pv := assert.Panic(t, func() { cursor.Get(t).Value() })
			err, ok := pv.(error)
			assert.True(t, ok)
			assert.ErrorIs(t, err, enumkit.ErrInvalidState)
		})

		s.Then("after Close the cursor is exhausted", func(t *testcase.T) {
			c := cursor.Get(t)
			assert.NoError(t, c.Close())
			assert.False(t, c.HasNext())
			assert.False(t, c.Next())
		})
	})

	s.When("the set keeps insertion order", func(s *testcase.Spec) {
		set.Let(s, func(t *testcase.T) datastruct.MutableSet[string] {
			var ordered datastruct.OrderedSet[string]
			ordered.Add(values.Get(t)...)
			return &ordered
		})

		s.Then("the set's own iterator is used", func(t *testcase.T) {
			assert.Equal(t, enumkit.StrategyDelegated, cursor.Get(t).Strategy())
		})

		s.Then("the members come in insertion order", func(t *testcase.T) {
			assert.Equal(t, values.Get(t), drain[string](cursor.Get(t)))
			assert.Equal(t, values.Get(t), collect(enumkit.OfSet(set.Get(t)).All()))
		})
	})

	s.When("the set is empty", func(s *testcase.Spec) {
		set.Let(s, func(t *testcase.T) datastruct.MutableSet[string] {
			return datastruct.MakeSet[string]()
		})

		s.Then("it has the same strategy as a nil set", func(t *testcase.T) {
			assert.Equal(t, enumkit.StrategyEmpty, cursor.Get(t).Strategy())
			assert.False(t, cursor.Get(t).HasNext())
		})
	})

	s.When("the set is nil", func(s *testcase.Spec) {
		set.Let(s, func(t *testcase.T) datastruct.MutableSet[string] { return nil })

		s.Then("nothing is yielded", func(t *testcase.T) {
			assert.Equal(t, enumkit.StrategyEmpty, cursor.Get(t).Strategy())
			assert.Empty(t, drain[string](cursor.Get(t)))
			assert.Empty(t, collect(enumkit.OfSet(set.Get(t)).All()))
		})
	})
}

func TestOfReadOnlySet(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	vs := random.Slice(rnd.IntBetween(3, 12), rnd.Int, random.UniqueValues)

	c := enumkit.OfReadOnlySet[int](datastruct.MakeSet(vs...)).Cursor()
	assert.Equal(t, enumkit.StrategyHashSlots, c.Strategy())
	assert.ContainsExactly(t, vs, drain[int](&c))

	var ordered datastruct.OrderedSet[int]
	ordered.Add(vs...)
	oc := enumkit.OfReadOnlySet[int](&ordered).Cursor()
	assert.Equal(t, enumkit.StrategyDelegated, oc.Strategy())
	assert.Equal(t, vs, drain[int](&oc))
}

func TestOfSet_allocations(t *testing.T) {
	allocs := func(n int) float64 {
		e := enumkit.OfSet[int](datastruct.MakeSet(lo.Range(n)...))
		return testing.AllocsPerRun(64, func() {
			c := e.Cursor()
			for c.Next() {
				sink += c.Value()
			}
			_ = c.Close()
		})
	}

	small, large := allocs(10), allocs(100)
	assert.True(t, large <= small,
		assert.MessageF("walking the hash slots should not allocate per member (10 members: %v, 100 members: %v)", small, large))
}
