package list

import "cmp"

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	for x, y := a.head.next, b.head.next; x != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}
	return true
}

// Compare compares a and b lexicographically. A list that is a prefix of
// the other is the smaller one. Elements are ordered by cmp.Compare, so a
// NaN sorts before every other float and equal to another NaN.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

func CompareFunc[T, U any](a *List[T], b *List[U], compare func(T, U) int) int {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if c := compare(x.value, y.value); c != 0 {
			return c
		}
	}

	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	default:
		return 1
	}
}

// Less reports whether a sorts before b lexicographically, ordering
// elements with <. Elements neither less nor greater than each other, such
// as a NaN against any float, count as equivalent.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if x.value < y.value {
			return true
		}
		if y.value < x.value {
			return false
		}
	}
	return x == nil && y != nil
}

func NotEqual[T comparable](a, b *List[T]) bool        { return !Equal(a, b) }
func LessOrEqual[T cmp.Ordered](a, b *List[T]) bool    { return !Less(b, a) }
func Greater[T cmp.Ordered](a, b *List[T]) bool        { return Less(b, a) }
func GreaterOrEqual[T cmp.Ordered](a, b *List[T]) bool { return !Less(a, b) }

// Swap exchanges the elements of a and b.
func Swap[T any](a, b *List[T]) { a.Swap(b) }
