// Package list implements persistent list.
package list

import (
	"errors"
	"fmt"
	"strings"
)

// List is a persistent singly-linked list. Lists are immutable; operations
// that "modify" a list return a new one that shares as much of the receiver as
// possible. Because no node is ever mutated, lists are safe for concurrent use.
type List[T any] interface {
	// Len returns the number of values in the list.
	Len() int
	// IsEmpty returns whether the list has no values.
	IsEmpty() bool
	// First returns the first value in the list, and whether it exists.
	First() (T, bool)
	// Rest returns the list after the first value. The Rest of an empty list
	// is an empty list.
	Rest() List[T]
	// Cons returns a new list with an additional value in the front.
	Cons(val T) List[T]
	// SetHead returns a list with the first value replaced by val. It returns
	// ErrEmptyList if the list is empty.
	SetHead(val T) (List[T], error)
	// Drop returns the list with the first n values removed. It returns the
	// receiver when n <= 0 and an empty list when n >= Len().
	Drop(n int) List[T]
	// DropWhile returns the list with the longest prefix of values satisfying
	// p removed.
	DropWhile(p func(T) bool) List[T]
	// Reverse returns a list with the values in reverse order.
	Reverse() List[T]
	// Concat returns a list with the values of the receiver followed by those
	// of other. The result shares other as its tail.
	Concat(other List[T]) List[T]
	// Init returns the list without its last value.
	Init() List[T]
	// Iterator returns an iterator over the list.
	Iterator() Iterator[T]
	// String renders the list like "[1, 2, 3, NIL]".
	String() string
}

// Iterator is an iterator over list values. It can be used like this:
//
//	for it := l.Iterator(); it.HasElem(); it.Next() {
//	    val := it.Elem()
//	    // do something with val...
//	}
type Iterator[T any] interface {
	// Elem returns the value at the current position.
	Elem() T
	// HasElem returns whether the iterator is pointing to a value.
	HasElem() bool
	// Next moves the iterator to the next position.
	Next()
}

// ErrEmptyList is returned when an operation needs a first value but the list
// is empty.
var ErrEmptyList = errors.New("list is empty")

// The nil *list is the empty list.
type list[T any] struct {
	first T
	rest  *list[T]
	count int
}

// Empty returns an empty list.
func Empty[T any]() List[T] {
	return (*list[T])(nil)
}

// New returns a list containing vals, in the same order.
func New[T any](vals ...T) List[T] {
	var l *list[T]
	for i := len(vals) - 1; i >= 0; i-- {
		l = l.cons(vals[i])
	}
	return l
}

// Equal reports whether two lists contain the same values in the same order.
func Equal[T comparable](a, b List[T]) bool {
	x, y := unwrap(a), unwrap(b)
	if x.Len() != y.Len() {
		return false
	}
	for ; x != y; x, y = x.rest, y.rest {
		if x.first != y.first {
			return false
		}
	}
	return true
}

// Slice returns the values of l in order.
func Slice[T any](l List[T]) []T {
	return unwrap(l).slice()
}

// unwrap converts any List implementation into a *list. Lists from this
// package are returned as is; other implementations are copied.
func unwrap[T any](l List[T]) *list[T] {
	switch l := l.(type) {
	case nil:
		return nil
	case *list[T]:
		return l
	}
	var vals []T
	for it := l.Iterator(); it.HasElem(); it.Next() {
		vals = append(vals, it.Elem())
	}
	return New(vals...).(*list[T])
}

func (l *list[T]) cons(val T) *list[T] {
	return &list[T]{val, l, l.Len() + 1}
}

func (l *list[T]) slice() []T {
	vals := make([]T, 0, l.Len())
	for ; l != nil; l = l.rest {
		vals = append(vals, l.first)
	}
	return vals
}

func (l *list[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.count
}

func (l *list[T]) IsEmpty() bool {
	return l == nil
}

func (l *list[T]) First() (T, bool) {
	if l == nil {
		var zero T
		return zero, false
	}
	return l.first, true
}

func (l *list[T]) Rest() List[T] {
	if l == nil {
		return l
	}
	return l.rest
}

func (l *list[T]) Cons(val T) List[T] {
	return l.cons(val)
}

func (l *list[T]) SetHead(val T) (List[T], error) {
	if l == nil {
		return nil, ErrEmptyList
	}
	return l.rest.cons(val), nil
}

func (l *list[T]) Drop(n int) List[T] {
	if n >= l.Len() {
		return (*list[T])(nil)
	}
	for ; n > 0; n-- {
		l = l.rest
	}
	return l
}

func (l *list[T]) DropWhile(p func(T) bool) List[T] {
	for l != nil && p(l.first) {
		l = l.rest
	}
	return l
}

func (l *list[T]) Reverse() List[T] {
	var acc *list[T]
	for ; l != nil; l = l.rest {
		acc = acc.cons(l.first)
	}
	return acc
}

func (l *list[T]) Concat(other List[T]) List[T] {
	tail := unwrap(other)
	if l == nil {
		return tail
	}
	if tail == nil {
		return l
	}
	// Consing each value onto the concatenation of the rest recurses as deep
	// as l is long. Buffer the values and rebuild from the back instead.
	vals := l.slice()
	for i := len(vals) - 1; i >= 0; i-- {
		tail = tail.cons(vals[i])
	}
	return tail
}

func (l *list[T]) Init() List[T] {
	return l.Reverse().Drop(1).Reverse()
}

func (l *list[T]) Iterator() Iterator[T] {
	return &iterator[T]{l}
}

func (l *list[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for ; l != nil; l = l.rest {
		fmt.Fprint(&sb, l.first)
		sb.WriteString(", ")
	}
	sb.WriteString("NIL]")
	return sb.String()
}

type iterator[T any] struct {
	current *list[T]
}

func (it *iterator[T]) Elem() T {
	return it.current.first
}

func (it *iterator[T]) HasElem() bool {
	return it.current != nil
}

func (it *iterator[T]) Next() {
	it.current = it.current.rest
}
