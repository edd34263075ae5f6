package enumkitcontract

import (
	"testing"

	"go.llib.dev/fastenum/pkg/enumkit"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
)

type Option[T any] interface {
	option.Option[Config[T]]
}

type Config[T any] struct {
	// MakeElem makes an element to populate the container with.
	// Defaults to a random value of T.
	MakeElem func(testing.TB) T
	// Strategy, when set, is the access path the container is expected to get for n elements.
	Strategy func(n int) enumkit.Strategy
}

var _ Option[int] = Config[int]{}

func (c Config[T]) Configure(o *Config[T]) {
	if c.MakeElem != nil {
		o.MakeElem = c.MakeElem
	}
	if c.Strategy != nil {
		o.Strategy = c.Strategy
	}
}

func (c Config[T]) makeElem(tb testing.TB) T {
	if c.MakeElem != nil {
		return c.MakeElem(tb)
	}
	return makeValue[T](tb)
}

// ExpectStrategy is a shorthand for a Config that only sets the expected Strategy.
func ExpectStrategy[T any](fn func(n int) enumkit.Strategy) Option[T] {
	return Config[T]{Strategy: fn}
}

type KVSOption[K comparable, V any] interface {
	option.Option[KVSConfig[K, V]]
}

type KVSConfig[K comparable, V any] struct {
	MakeK func(testing.TB) K
	MakeV func(testing.TB) V
}

var _ KVSOption[string, int] = KVSConfig[string, int]{}

func (c KVSConfig[K, V]) Configure(o *KVSConfig[K, V]) {
	if c.MakeK != nil {
		o.MakeK = c.MakeK
	}
	if c.MakeV != nil {
		o.MakeV = c.MakeV
	}
}

func (c KVSConfig[K, V]) makeK(tb testing.TB) K {
	if c.MakeK != nil {
		return c.MakeK(tb)
	}
	return makeValue[K](tb)
}

func (c KVSConfig[K, V]) makeV(tb testing.TB) V {
	if c.MakeV != nil {
		return c.MakeV(tb)
	}
	return makeValue[V](tb)
}

func makeValue[T any](tb testing.TB) T {
	return testcase.ToT(&tb).Random.Make(*new(T)).(T)
}
