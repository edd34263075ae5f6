package datastruct_test

import (
	"testing"

	"go.llib.dev/fastenum/pkg/datastruct"
	"go.llib.dev/frameless/pkg/iterkit"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

var _ datastruct.KVS[string, int] = (datastruct.Map[string, int])(nil)

func TestMap(t *testing.T) {
	s := testcase.NewSpec(t)

	m := let.Var(s, func(t *testcase.T) datastruct.Map[string, int] {
		return datastruct.Map[string, int]{}
	})

	s.Test("smoke", func(t *testcase.T) {
		var (
			key  string = t.Random.String()
			val1 int    = t.Random.Int()
			val2 int    = t.Random.Int()
		)

		_, ok := m.Get(t).Lookup(key)
		assert.False(t, ok)
		assert.Empty(t, m.Get(t).Keys())
		assert.Equal(t, 0, m.Get(t).Len())

		m.Get(t).Set(key, val1)
		got, ok := m.Get(t).Lookup(key)
		assert.True(t, ok)
		assert.Equal(t, val1, got)
		assert.Equal(t, val1, m.Get(t).Get(key))
		assert.Contains(t, m.Get(t).Keys(), key)
		assert.Equal(t, 1, m.Get(t).Len())

		m.Get(t).Set(key, val2)
		got, ok = m.Get(t).Lookup(key)
		assert.True(t, ok)
		assert.Equal(t, val2, got)
		assert.Equal(t, val2, m.Get(t).Get(key))
		assert.Contains(t, m.Get(t).Keys(), key)
		assert.Equal(t, 1, m.Get(t).Len())

		m.Get(t).Delete(key)
		_, ok = m.Get(t).Lookup(key)
		assert.False(t, ok)
		assert.Empty(t, m.Get(t).Keys())
		assert.Equal(t, 0, m.Get(t).Len())
	})

	s.Test("#ToMap", func(t *testcase.T) {
		exp := map[string]int{}
		m := datastruct.Map[string, int]{}
		t.Random.Repeat(3, 7, func() {
			k := t.Random.HexN(5)
			v := t.Random.Int()
			exp[k] = v
			m.Set(k, v)
		})
		assert.Equal(t, exp, m.ToMap())
	})

	s.Test("#Iter", func(t *testcase.T) {
		exp := map[string]int{}
		t.Random.Repeat(3, 7, func() {
			k := t.Random.HexN(5)
			v := t.Random.Int()
			exp[k] = v
			m.Get(t).Set(k, v)
		})
		assert.Equal(t, exp, iterkit.Collect2Map(m.Get(t).Iter()))
	})
}

func TestOrderedMap(t *testing.T) {
	s := testcase.NewSpec(t)

	m := let.Var(s, func(t *testcase.T) *datastruct.OrderedMap[string, int] {
		return &datastruct.OrderedMap[string, int]{}
	})

	s.Test("keys keep their insertion order", func(t *testcase.T) {
		m.Get(t).Set("c", 3)
		m.Get(t).Set("a", 1)
		m.Get(t).Set("b", 2)
		m.Get(t).Set("a", 10)

		assert.Equal(t, []string{"c", "a", "b"}, m.Get(t).Keys())
		assert.Equal(t, 3, m.Get(t).Len())
		assert.Equal(t, 10, m.Get(t).Get("a"))

		var (
			keys []string
			vals []int
		)
		for k, v := range m.Get(t).Iter() {
			keys = append(keys, k)
			vals = append(vals, v)
		}
		assert.Equal(t, []string{"c", "a", "b"}, keys)
		assert.Equal(t, []int{3, 10, 2}, vals)
	})

	s.Test("Delete", func(t *testcase.T) {
		m.Get(t).Set("a", 1)
		m.Get(t).Set("b", 2)
		m.Get(t).Delete("a")
		m.Get(t).Delete("unknown")

		_, ok := m.Get(t).Lookup("a")
		assert.False(t, ok)
		assert.Equal(t, []string{"b"}, m.Get(t).Keys())
		assert.Equal(t, map[string]int{"b": 2}, m.Get(t).ToMap())
	})

	s.When("map is nil", func(s *testcase.Spec) {
		m.Let(s, func(t *testcase.T) *datastruct.OrderedMap[string, int] { return nil })

		s.Then("it reads as an empty map", func(t *testcase.T) {
			assert.Equal(t, 0, m.Get(t).Len())
			assert.Empty(t, m.Get(t).Keys())
			_, ok := m.Get(t).Lookup("foo")
			assert.False(t, ok)
			assert.Empty(t, iterkit.Collect2Map(m.Get(t).Iter()))
		})
	})
}
