// Package linqkit connects go-linq queries with datastruct collections.
//
// A query handed to enumkit is an unknown shape and is always iterated through its own iterator,
// while a collection turned into a query is walked with an enumkit cursor.
package linqkit

import (
	"iter"

	"github.com/ahmetb/go-linq/v3"

	"go.llib.dev/fastenum/pkg/datastruct"
	"go.llib.dev/fastenum/pkg/enumkit"
	"go.llib.dev/frameless/pkg/iterkit"
)

// Query is a go-linq query viewed as a datastruct.Iterable of T.
// Items that are not of type T are skipped.
type Query[T any] struct {
	Query linq.Query
}

var _ datastruct.Iterable[int] = Query[int]{}

func Iterable[T any](q linq.Query) Query[T] {
	return Query[T]{Query: q}
}

func (q Query[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if q.Query.Iterate == nil {
			return
		}
		next := q.Query.Iterate()
		for item, ok := next(); ok; item, ok = next() {
			v, isT := item.(T)
			if !isT {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// From makes a query out of a collection.
//
// Positional and empty collections are read lazily through an enumkit cursor.
// linq.Iterator has no release hook, so a delegated collection is collected
// when the query starts iterating, and no pull iterator is left running
// when the query stops early.
func From[T any](seq datastruct.Iterable[T]) linq.Query {
	return linq.Query{
		Iterate: func() linq.Iterator {
			if enumkit.StrategyOf(seq) == enumkit.StrategyDelegated {
				return fromSlice(iterkit.Collect(seq.Iter()))
			}
			c := enumkit.Of(seq).Cursor()
			return func() (any, bool) {
				if !c.Next() {
					return nil, false
				}
				return c.Value(), true
			}
		},
	}
}

func fromSlice[T any](vs []T) linq.Iterator {
	var i int
	return func() (any, bool) {
		if len(vs) <= i {
			return nil, false
		}
		v := vs[i]
		i++
		return v, true
	}
}
