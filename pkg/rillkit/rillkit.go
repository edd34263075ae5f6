// Package rillkit feeds datastruct collections into rill channel pipelines.
package rillkit

import (
	"github.com/destel/rill"

	"go.llib.dev/fastenum/pkg/datastruct"
	"go.llib.dev/fastenum/pkg/enumkit"
)

// Stream sends the elements of seq to a rill stream in iteration order.
// A non nil err is sent as the only item of the stream.
//
// Like every rill source, the returned channel must be drained,
// or the sending goroutine is left blocked.
func Stream[T any](seq datastruct.Iterable[T], err error) <-chan rill.Try[T] {
	if err != nil {
		return rill.FromSlice[T](nil, err)
	}
	if arr, ok := seq.(datastruct.Array[T]); ok {
		return rill.FromSlice([]T(arr), nil)
	}
	out := make(chan rill.Try[T])
	go func() {
		defer close(out)
		c := enumkit.Of(seq).Cursor()
		defer c.Close()
		for c.Next() {
			out <- rill.Try[T]{Value: c.Value()}
		}
	}()
	return out
}

// Collect gathers a stream into an Array.
// It stops at the first error, and drains the rest of the stream in the background.
func Collect[T any](in <-chan rill.Try[T]) (datastruct.Array[T], error) {
	vs, err := rill.ToSlice(in)
	return datastruct.Array[T](vs), err
}
