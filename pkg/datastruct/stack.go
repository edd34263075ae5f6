package datastruct

import "iter"

// Stack is a LIFO container. It knows its length, but offers no positional access.
type Stack[T any] []T

var _ Iterable[any] = (Stack[any])(nil)

func (s *Stack[T]) Push(v T) {
	*s = append(*s, v)
}

func (s Stack[T]) Len() int { return len(s) }

// Iter walks the stack from the top element to the bottom one.
func (s Stack[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s) - 1; 0 <= i; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}
