package list

// Position addresses the sentinel of a List, one of its elements, or the
// end of the sequence. Positions compare equal with == exactly when they
// address the same node, and the zero Position equals End.
//
// Read-only and mutating code share the one type.
type Position[T any] struct {
	n *node[T]
}

// Next returns the position following p. p must not be End.
func (p Position[T]) Next() Position[T] { return Position[T]{p.n.next} }

// Inc advances p and returns the position it held before.
func (p *Position[T]) Inc() Position[T] {
	old := *p
	p.n = p.n.next
	return old
}

// Value returns the element at p. p must address an element.
func (p Position[T]) Value() T { return p.n.value }

// Ptr returns a pointer to the element at p for in-place updates.
func (p Position[T]) Ptr() *T { return &p.n.value }

func (p Position[T]) Equal(o Position[T]) bool { return p.n == o.n }
func (p Position[T]) IsEnd() bool              { return p.n == nil }
