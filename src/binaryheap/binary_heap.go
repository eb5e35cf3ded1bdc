package binaryheap

import (
	"cmp"
	"errors"

	"github.com/hyperbolic-timechamber/collections-go/src/list"
)

var ErrEmptyHeap = errors.New("BinaryHeap: heap is empty")

// BinaryHeap is a min-heap backed by a list.List, so the buffer grows
// and shrinks with the list's capacity policy as values flow through.
type BinaryHeap[T cmp.Ordered] struct {
	data list.List[T]
}

func New[T cmp.Ordered]() *BinaryHeap[T] {
	return &BinaryHeap[T]{}
}

// FromSlice heapifies a copy of arr.
func FromSlice[T cmp.Ordered](arr []T) *BinaryHeap[T] {
	h := &BinaryHeap[T]{}
	h.data.AppendAll(arr...)
	for i := h.data.Len()/2 - 1; i >= 0; i-- {
		h.heapifyDown(i)
	}
	return h
}

func (h *BinaryHeap[T]) Push(value T) {
	h.data.Append(value)
	h.heapifyUp(h.data.Len() - 1)
}

func (h *BinaryHeap[T]) Pop() (T, error) {
	var zero T
	if h.data.IsEmpty() {
		return zero, ErrEmptyHeap
	}
	min := h.data.Get(0)
	last, err := h.data.Pop(-1)
	if err != nil {
		return zero, ErrEmptyHeap
	}
	if !h.data.IsEmpty() {
		h.data.Set(0, last)
		h.heapifyDown(0)
	}
	return min, nil
}

func (h *BinaryHeap[T]) Peek() (T, error) {
	value, err := h.data.Front()
	if err != nil {
		var zero T
		return zero, ErrEmptyHeap
	}
	return value, nil
}

func (h *BinaryHeap[T]) Size() int {
	return h.data.Len()
}

// Cap is the backing list's capacity, which grows by doubling on push
// and halves as pops drain the heap below quarter occupancy.
func (h *BinaryHeap[T]) Cap() int {
	return h.data.Cap()
}

func (h *BinaryHeap[T]) IsEmpty() bool {
	return h.data.IsEmpty()
}

func (h *BinaryHeap[T]) Clear() {
	h.data.Clear()
}

func (h *BinaryHeap[T]) Clone() *BinaryHeap[T] {
	return &BinaryHeap[T]{data: *h.data.Clone()}
}

func (h *BinaryHeap[T]) heapifyUp(i int) {
	d := h.data.Data()
	for i > 0 {
		parent := (i - 1) / 2
		if d[i] >= d[parent] {
			break
		}
		d[i], d[parent] = d[parent], d[i]
		i = parent
	}
}

func (h *BinaryHeap[T]) heapifyDown(i int) {
	d := h.data.Data()
	n := len(d)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && d[left] < d[smallest] {
			smallest = left
		}
		if right < n && d[right] < d[smallest] {
			smallest = right
		}
		if smallest == i {
			break
		}
		d[i], d[smallest] = d[smallest], d[i]
		i = smallest
	}
}
