package datastruct

import "iter"

// LinkedList is a singly linked, append only list.
// It knows its length, but reaching an element by position walks the nodes,
// so it is not a List.
type LinkedList[T any] struct {
	head, tail *node[T]
	length     int
}

type node[T any] struct {
	value T
	next  *node[T]
}

var _ Iterable[any] = (*LinkedList[any])(nil)

func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		n := &node[T]{value: v}
		if ll.tail == nil {
			ll.head = n
		} else {
			ll.tail.next = n
		}
		ll.tail = n
		ll.length++
	}
}

func (ll *LinkedList[T]) Len() int {
	if ll == nil {
		return 0
	}
	return ll.length
}

// Lookup walks to the element at index.
func (ll *LinkedList[T]) Lookup(index int) (T, bool) {
	if index < 0 || ll.Len() <= index {
		var zero T
		return zero, false
	}
	n := ll.head
	for ; 0 < index; index-- {
		n = n.next
	}
	return n.value, true
}

func (ll *LinkedList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ll == nil {
			return
		}
		for n := ll.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}
