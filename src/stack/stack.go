package stack

import (
	"errors"

	"github.com/hyperbolic-timechamber/collections-go/src/list"
)

var ErrEmptyStack = errors.New("Stack: empty stack")

// Stack is a LIFO container backed by a list.List.
type Stack[T any] struct {
	items list.List[T]
}

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Push(value T) {
	s.items.Append(value)
}

func (s *Stack[T]) Pop() (T, error) {
	value, err := s.items.Pop(-1)
	if err != nil {
		var zero T
		return zero, ErrEmptyStack
	}
	return value, nil
}

func (s *Stack[T]) Top() (T, error) {
	value, err := s.items.Back()
	if err != nil {
		var zero T
		return zero, ErrEmptyStack
	}
	return value, nil
}

func (s *Stack[T]) Size() int {
	return s.items.Len()
}

// Cap is the backing list's capacity, which grows by doubling on push
// and halves as pops drain the stack below quarter occupancy.
func (s *Stack[T]) Cap() int {
	return s.items.Cap()
}

func (s *Stack[T]) IsEmpty() bool {
	return s.items.IsEmpty()
}

func (s *Stack[T]) Clear() {
	s.items.Clear()
}

func (s *Stack[T]) Clone() *Stack[T] {
	return &Stack[T]{items: *s.items.Clone()}
}
