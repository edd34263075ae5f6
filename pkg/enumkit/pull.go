package enumkit

import "iter"

// pullIter turns a push style iter.Seq into a PullIter with one element of look-ahead.
// The look-ahead is what lets HasNext answer without consuming the element.
type pullIter[T any] struct {
	next func() (T, bool)
	stop func()

	val T
	ok  bool

	peek   T
	more   bool
	peeked bool
	done   bool
}

func pull[T any](seq iter.Seq[T]) *pullIter[T] {
	next, stop := iter.Pull(seq)
	return &pullIter[T]{next: next, stop: stop}
}

func (i *pullIter[T]) HasNext() bool {
	if i.done {
		return false
	}
	if !i.peeked {
		i.peek, i.more = i.next()
		i.peeked = true
		if !i.more {
			i.release()
		}
	}
	return i.more
}

func (i *pullIter[T]) Next() bool {
	if !i.HasNext() {
		return false
	}
	i.val, i.ok = i.peek, true
	i.peeked = false
	return true
}

func (i *pullIter[T]) Value() T {
	if !i.ok {
		panic(ErrInvalidState)
	}
	return i.val
}

func (i *pullIter[T]) Err() error { return nil }

func (i *pullIter[T]) Close() error {
	i.release()
	return nil
}

func (i *pullIter[T]) release() {
	if i.done {
		return
	}
	i.done = true
	i.more = false
	i.stop()
}

type pullIter2[K, V any] struct {
	next func() (K, V, bool)
	stop func()

	key K
	val V
	ok  bool

	peekKey K
	peekVal V
	more    bool
	peeked  bool
	done    bool
}

func pull2[K, V any](seq iter.Seq2[K, V]) *pullIter2[K, V] {
	next, stop := iter.Pull2(seq)
	return &pullIter2[K, V]{next: next, stop: stop}
}

func (i *pullIter2[K, V]) HasNext() bool {
	if i.done {
		return false
	}
	if !i.peeked {
		i.peekKey, i.peekVal, i.more = i.next()
		i.peeked = true
		if !i.more {
			i.release()
		}
	}
	return i.more
}

func (i *pullIter2[K, V]) Next() bool {
	if !i.HasNext() {
		return false
	}
	i.key, i.val, i.ok = i.peekKey, i.peekVal, true
	i.peeked = false
	return true
}

func (i *pullIter2[K, V]) Key() K {
	if !i.ok {
		panic(ErrInvalidState)
	}
	return i.key
}

func (i *pullIter2[K, V]) Value() V {
	if !i.ok {
		panic(ErrInvalidState)
	}
	return i.val
}

func (i *pullIter2[K, V]) Err() error { return nil }

func (i *pullIter2[K, V]) Close() error {
	i.release()
	return nil
}

func (i *pullIter2[K, V]) release() {
	if i.done {
		return
	}
	i.done = true
	i.more = false
	i.stop()
}
