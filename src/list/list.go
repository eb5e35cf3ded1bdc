package list

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOutOfRange = errors.New("List: index out of range")
	ErrEmpty      = errors.New("List: empty list")
)

// List is a growable, contiguous sequence of T that exclusively owns its
// backing buffer. The buffer always spans exactly Cap() slots; slots at or
// past Len() hold no live values and are never read. The zero List is an
// empty list ready for use.
//
// A List is not safe for concurrent use. Mutating a list while iterating
// over a slice obtained from Data or StealData is the caller's problem.
type List[T any] struct {
	data     []T
	size     int
	capacity int
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// NewWithCapacity creates an empty list with exactly n preallocated slots.
func NewWithCapacity[T any](n int) *List[T] {
	if n <= 0 {
		return &List[T]{}
	}
	return &List[T]{
		data:     make([]T, n),
		capacity: n,
	}
}

// Of creates a list holding the given values. The variadic slice is
// adopted, not copied.
func Of[T any](values ...T) *List[T] {
	return FromSlice(values)
}

// FromSlice adopts s as the list's backing buffer: size is len(s),
// capacity is cap(s). Ownership transfers to the list; the caller must
// not use s afterward.
func FromSlice[T any](s []T) *List[T] {
	return &List[T]{
		data:     s[:cap(s)],
		size:     len(s),
		capacity: cap(s),
	}
}

// Clone creates an independent element-wise copy with the same capacity.
// Note: this is a shallow copy of the elements themselves. If T contains
// pointers, slices, or maps, both lists will see mutations through them.
func (l *List[T]) Clone() *List[T] {
	clone := &List[T]{
		data:     make([]T, l.capacity),
		size:     l.size,
		capacity: l.capacity,
	}
	copy(clone.data, l.data[:l.size])
	return clone
}

func (l *List[T]) Len() int {
	return l.size
}

func (l *List[T]) Cap() int {
	return l.capacity
}

func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Data returns the live elements as a slice sharing the list's buffer.
// It is a read/write view, not a transfer of ownership.
func (l *List[T]) Data() []T {
	if l.size == 0 {
		return nil
	}
	return l.data[:l.size]
}

// At returns the element at index i. Negative indices count from the end.
func (l *List[T]) At(i int) (T, error) {
	var zero T
	i = normIndex(i, l.size)
	if i < 0 || i >= l.size {
		return zero, ErrOutOfRange
	}
	return l.data[i], nil
}

// SetAt replaces the element at index i. Negative indices count from the
// end.
func (l *List[T]) SetAt(i int, value T) error {
	i = normIndex(i, l.size)
	if i < 0 || i >= l.size {
		return ErrOutOfRange
	}
	l.data[i] = value
	return nil
}

/// Get is the unchecked counterpart of At: negative indices are
// normalized, but an index that is still out of range panics.
func (l *List[T]) Get(i int) T {
	return l.data[:l.size][normIndex(i, l.size)]
}

// Set is the unchecked counterpart of SetAt.
func (l *List[T]) Set(i int, value T) {
	l.data[:l.size][normIndex(i, l.size)] = value
}

func (l *List[T]) Front() (T, error) {
	var zero T
	if l.size == 0 {
		return zero, ErrEmpty
	}
	return l.data[0], nil
}

func (l *List[T]) Back() (T, error) {
	var zero T
	if l.size == 0 {
		return zero, ErrEmpty
	}
	return l.data[l.size-1], nil
}

// Reserve guarantees capacity for at least n elements. It never shrinks:
// if the current capacity already covers n it does nothing, otherwise it
// reallocates to exactly n slots and moves the live elements over.
func (l *List[T]) Reserve(n int) {
	if n <= l.capacity {
		return
	}
	l.realloc(n)
}

// Append adds value at the end. When the buffer is full it grows to
// twice the current capacity, with a floor of one slot.
func (l *List[T]) Append(value T) {
	if l.size == l.capacity {
		newCap := 1
		if l.capacity > 0 {
			newCap = l.capacity * 2
		}
		l.realloc(newCap)
	}
	l.data[l.size] = value
	l.size++
}

// AppendAll adds the given values at the end with a single reallocation,
// doubling capacity until they fit.
func (l *List[T]) AppendAll(values ...T) {
	if len(values) == 0 {
		return
	}
	if n := l.size + len(values); n > l.capacity {
		newCap := l.capacity
		if newCap == 0 {
			newCap = 1
		}
		for newCap < n {
			newCap *= 2
		}
		l.realloc(newCap)
	}
	copy(l.data[l.size:], values)
	l.size += len(values)
}

// Insert places value at index i, shifting the elements at and past i one
// slot toward the end. Valid indices are [0, Len()] after normalization;
// inserting at Len() is an append. It reuses the append growth path:
// the value lands at the end first and is then swapped backward into
// position.
func (l *List[T]) Insert(i int, value T) error {
	i = normIndex(i, l.size)
	if i < 0 || i > l.size {
		return ErrOutOfRange
	}
	l.Append(value)
	for j := l.size - 1; j > i; j-- {
		l.data[j], l.data[j-1] = l.data[j-1], l.data[j]
	}
	return nil
}

// Pop removes and returns the element at index i, shifting the tail one
// slot toward the front. Use Pop(-1) for the last element. After the
// removal, if the live count has fallen below a quarter of the capacity,
// the buffer is reallocated to half its size (a single halving per pop;
// capacity never drops below one).
func (l *List[T]) Pop(i int) (T, error) {
	var zero T
	if l.size == 0 {
		return zero, ErrEmpty
	}
	i = normIndex(i, l.size)
	if i < 0 || i >= l.size {
		return zero, ErrOutOfRange
	}
	value := l.data[i]
	copy(l.data[i:l.size-1], l.data[i+1:l.size])
	l.size--
	l.data[l.size] = zero
	if l.size*4 < l.capacity && l.capacity > 1 {
		l.realloc(l.capacity / 2)
	}
	return value, nil
}

// Extend moves every element of other to the end of l, leaving other
// empty. Other's buffer and capacity are untouched; only its contents
// transfer. Extending a list with itself panics.
func (l *List[T]) Extend(other *List[T]) {
	if other == l {
		panic("List: cannot extend a list with itself")
	}
	if other.size == 0 {
		return
	}
	l.Reserve(l.size + other.size)
	copy(l.data[l.size:], other.data[:other.size])
	l.size += other.size
	var zero T
	for i := 0; i < other.size; i++ {
		other.data[i] = zero
	}
	other.size = 0
}

// Clear removes every element, zeroing the vacated slots so the buffer
// does not pin them. Capacity is retained.
func (l *List[T]) Clear() {
	var zero T
	for i := 0; i < l.size; i++ {
		l.data[i] = zero
	}
	l.size = 0
}

// StealData hands the backing buffer to the caller, truncated to the live
// elements (the slice's capacity still spans the whole buffer), and
// resets the list to the empty zero state.
func (l *List[T]) StealData() []T {
	d := l.data[:l.size]
	l.data = nil
	l.size = 0
	l.capacity = 0
	return d
}

// Resize grows the list to n elements by appending copies of fill, or
// truncates it when n is smaller than the current length.
func (l *List[T]) Resize(n int, fill T) error {
	if n < 0 {
		return ErrOutOfRange
	}
	if n <= l.size {
		return l.Truncate(n)
	}
	l.Reserve(n)
	for i := l.size; i < n; i++ {
		l.data[i] = fill
	}
	l.size = n
	return nil
}

// Truncate shortens the list to n elements, zeroing the dropped slots.
// n must be in [0, Len()].
func (l *List[T]) Truncate(n int) error {
	if n < 0 || n > l.size {
		return ErrOutOfRange
	}
	var zero T
	for i := n; i < l.size; i++ {
		l.data[i] = zero
	}
	l.size = n
	return nil
}

// Reverse reverses the list in place.
func (l *List[T]) Reverse() {
	l.reverse(0)
}

// ReverseFrom reverses the elements from index i (normalizable, valid in
// [0, Len()]) through the end, leaving [0, i) untouched.
func (l *List[T]) ReverseFrom(i int) error {
	i = normIndex(i, l.size)
	if i < 0 || i > l.size {
		return ErrOutOfRange
	}
	l.reverse(i)
	return nil
}

func (l *List[T]) reverse(start int) {
	for i, j := start, l.size-1; i < j; i, j = i+1, j-1 {
		l.data[i], l.data[j] = l.data[j], l.data[i]
	}
}

// String formats the list as "[e1, e2, e3]" using %v per element.
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < l.size; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", l.data[i])
	}
	b.WriteByte(']')
	return b.String()
}

// realloc moves the live elements into a fresh buffer of exactly n slots.
func (l *List[T]) realloc(n int) {
	newData := make([]T, n)
	copy(newData, l.data[:l.size])
	l.data = newData
	l.capacity = n
}

// normIndex applies the negative-index convention shared by every indexed
// entry point: an index below zero counts from the end.
func normIndex(i, size int) int {
	if i < 0 {
		i += size
	}
	return i
}
