// Package list implements a generic singly linked list.
//
// A List owns a chain of nodes hanging off a value-less sentinel. Positions
// returned by BeforeBegin, Begin and End address the sentinel, an element or
// the end of the chain, and InsertAfter/EraseAfter splice nodes in and out
// after any of them. List is not safe for concurrent use, see SyncList.
package list

import (
	"fmt"
	"iter"
	"strings"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked list. The zero value is an empty list ready to use.
//
// A List must not be copied by value after first use, use Clone or Assign.
type List[T any] struct {
	head node[T]
	len  int
}

func New[T any]() *List[T] { return &List[T]{} }

// Of returns a list holding values in order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	l.assign(func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	})
	return l
}

// Collect returns a list holding the values of seq in order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	l.assign(seq)
	return l
}

func (l *List[T]) Len() int      { return l.len }
func (l *List[T]) IsEmpty() bool { return l.len == 0 }

func (l *List[T]) Front() (T, bool) {
	if l.head.next == nil {
		return *new(T), false
	}
	return l.head.next.value, true
}

func (l *List[T]) PushFront(v T) {
	l.head.next = &node[T]{value: v, next: l.head.next}
	l.len++
}

// PopFront removes the first element and returns it.
// It is a no-op on an empty list.
func (l *List[T]) PopFront() (T, bool) {
	n := l.head.next
	if n == nil {
		return *new(T), false
	}

	l.head.next = n.next
	n.next = nil
	l.len--
	return n.value, true
}

// InsertAfter links a new element holding v right after pos and returns
// its position.
//
// pos must be BeforeBegin or an element of l. No other position is checked.
func (l *List[T]) InsertAfter(pos Position[T], v T) Position[T] {
	n := &node[T]{value: v, next: pos.n.next}
	pos.n.next = n
	l.len++
	return Position[T]{n}
}

// EraseAfter unlinks the element following pos and returns the position
// now following pos. Without a following element it does nothing and
// returns End.
//
// pos must be BeforeBegin or an element of l. Positions on the erased
// element are invalid afterwards.
func (l *List[T]) EraseAfter(pos Position[T]) Position[T] {
	n := pos.n.next
	if n == nil {
		return Position[T]{}
	}

	pos.n.next = n.next
	n.next = nil
	l.len--
	return Position[T]{pos.n.next}
}

// Clear removes every element.
func (l *List[T]) Clear() {
	for n := l.head.next; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	l.head.next = nil
	l.len = 0
}

// BeforeBegin returns the position of the sentinel preceding the first
// element. It may only be passed to InsertAfter and EraseAfter.
func (l *List[T]) BeforeBegin() Position[T] { return Position[T]{&l.head} }
func (l *List[T]) Begin() Position[T]       { return Position[T]{l.head.next} }
func (l *List[T]) End() Position[T]         { return Position[T]{} }

// Swap exchanges the elements of l and other without copying them.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.len, other.len = other.len, l.len
}

// Clone returns an independent copy of l.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	c.assign(l.All())
	return c
}

// CloneFunc returns a copy of l whose elements are produced by clone.
// The first error returned by clone aborts the clone.
func (l *List[T]) CloneFunc(clone func(T) (T, error)) (*List[T], error) {
	c := New[T]()
	tail := &c.head
	for n := l.head.next; n != nil; n = n.next {
		v, err := clone(n.value)
		if err != nil {
			return nil, fmt.Errorf("copy element %d failed: %w", c.len, err)
		}
		tail.next = &node[T]{value: v}
		tail = tail.next
		c.len++
	}
	return c, nil
}

// Assign replaces the elements of l with a copy of the elements of src.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}
	c := src.Clone()
	l.Swap(c)
}

// AssignFunc is Assign with a fallible element copy. On error l is left
// unchanged.
func (l *List[T]) AssignFunc(src *List[T], clone func(T) (T, error)) error {
	if l == src {
		return nil
	}
	c, err := src.CloneFunc(clone)
	if err != nil {
		return err
	}
	l.Swap(c)
	return nil
}

// AssignSeq replaces the elements of l with the values of seq. If seq
// panics, l is left unchanged.
func (l *List[T]) AssignSeq(seq iter.Seq[T]) { l.assign(seq) }

func (l *List[T]) assign(seq iter.Seq[T]) {
	var tmp List[T]
	tail := &tmp.head
	for v := range seq {
		tail.next = &node[T]{value: v}
		tail = tail.next
		tmp.len++
	}
	l.Swap(&tmp)
}

func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Positions yields the position of every element, front to back.
func (l *List[T]) Positions() iter.Seq[Position[T]] {
	return func(yield func(Position[T]) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(Position[T]{n}) {
				return
			}
		}
	}
}

func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.len)
	for v := range l.All() {
		s = append(s, v)
	}
	return s
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head.next; n != nil; n = n.next {
		if n != l.head.next {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, n.value)
	}
	b.WriteByte(']')
	return b.String()
}
