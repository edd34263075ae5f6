package datastruct

import "iter"

// Array is a fixed size contiguous sequence of elements.
// It can be read and overwritten by index, but it never grows.
type Array[T any] []T

var (
	_ ReadOnlyList[any] = (Array[any])(nil)
	_ List[any]         = (Array[any])(nil)
)

func (a Array[T]) Len() int { return len(a) }

func (a Array[T]) At(index int) T { return a[index] }

func (a Array[T]) Lookup(index int) (T, bool) {
	if index < 0 || len(a) <= index {
		var zero T
		return zero, false
	}
	return a[index], true
}

func (a Array[T]) Set(index int, val T) bool {
	if index < 0 || len(a) <= index {
		return false
	}
	a[index] = val
	return true
}

func (a Array[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice is a growable list backed by a Go slice.
// Use it through a pointer, since Append may reallocate the backing array.
type Slice[T any] []T

var (
	_ ReadOnlyList[any] = (*Slice[any])(nil)
	_ List[any]         = (*Slice[any])(nil)
)

func (s *Slice[T]) Append(vs ...T) {
	*s = append(*s, vs...)
}

func (s *Slice[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(*s)
}

func (s *Slice[T]) At(index int) T { return (*s)[index] }

func (s *Slice[T]) Lookup(index int) (T, bool) {
	if index < 0 || s.Len() <= index {
		var zero T
		return zero, false
	}
	return (*s)[index], true
}

func (s *Slice[T]) Set(index int, val T) bool {
	if index < 0 || s.Len() <= index {
		return false
	}
	(*s)[index] = val
	return true
}

func (s *Slice[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for _, v := range *s {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *Slice[T]) ToSlice() []T {
	if s == nil {
		return nil
	}
	return append([]T(nil), *s...)
}
