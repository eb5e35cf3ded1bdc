package binaryheap_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/hyperbolic-timechamber/collections-go/src/binaryheap"
)

func TestNewHeapIsEmpty(t *testing.T) {
	h := binaryheap.New[int]()
	if h.Size() != 0 {
		t.Fatalf("expected size 0, got %d", h.Size())
	}
	if !h.IsEmpty() {
		t.Fatal("expected empty")
	}
	if h.Cap() != 0 {
		t.Fatalf("expected capacity 0, got %d", h.Cap())
	}
}

func TestEmptyHeapErrors(t *testing.T) {
	h := binaryheap.New[int]()
	if _, err := h.Pop(); !errors.Is(err, binaryheap.ErrEmptyHeap) {
		t.Fatalf("expected ErrEmptyHeap from Pop, got %v", err)
	}
	if _, err := h.Peek(); !errors.Is(err, binaryheap.ErrEmptyHeap) {
		t.Fatalf("expected ErrEmptyHeap from Peek, got %v", err)
	}
}

func TestPopsInSortedOrder(t *testing.T) {
	h := binaryheap.New[int]()
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 64; i++ {
		h.Push(r.Intn(1000))
	}
	prev, err := h.Pop()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for !h.IsEmpty() {
		v, err := h.Pop()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v < prev {
			t.Fatalf("popped %d after %d", v, prev)
		}
		prev = v
	}
}

func TestDuplicateValues(t *testing.T) {
	h := binaryheap.New[int]()
	for _, v := range []int{5, 1, 5, 1, 5} {
		h.Push(v)
	}
	want := []int{1, 1, 5, 5, 5}
	for i, w := range want {
		v, err := h.Pop()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != w {
			t.Fatalf("pop %d: expected %d, got %d", i, w, v)
		}
	}
}

func TestFromSlice(t *testing.T) {
	arr := []int{9, 4, 7, 1, 8, 2}
	h := binaryheap.FromSlice(arr)
	if h.Size() != 6 {
		t.Fatalf("expected size 6, got %d", h.Size())
	}
	v, err := h.Peek()
	if err != nil || v != 1 {
		t.Fatalf("expected minimum 1 at root, got (%d, %v)", v, err)
	}
	want := []int{1, 2, 4, 7, 8, 9}
	for i, w := range want {
		v, _ := h.Pop()
		if v != w {
			t.Fatalf("pop %d: expected %d, got %d", i, w, v)
		}
	}
}

func TestFromSliceCopiesInput(t *testing.T) {
	arr := []int{3, 1, 2}
	h := binaryheap.FromSlice(arr)
	if arr[0] != 3 || arr[1] != 1 || arr[2] != 2 {
		t.Fatalf("heapify reordered the input slice: %v", arr)
	}
	arr[0] = 100
	v, _ := h.Pop()
	if v != 1 {
		t.Fatalf("expected 1, got %d", v)
	}
}

func TestPeekDoesNotRemove(t *testing.T) {
	h := binaryheap.New[int]()
	h.Push(3)
	h.Push(1)
	for i := 0; i < 3; i++ {
		v, err := h.Peek()
		if err != nil || v != 1 {
			t.Fatalf("expected (1, nil), got (%d, %v)", v, err)
		}
	}
	if h.Size() != 2 {
		t.Fatalf("expected size 2 after peeks, got %d", h.Size())
	}
}

func TestPushGrowsByDoubling(t *testing.T) {
	h := binaryheap.New[int]()
	wantCaps := []int{1, 2, 4, 4, 8, 8, 8, 8, 16}
	for i, want := range wantCaps {
		h.Push(i)
		if h.Cap() != want {
			t.Fatalf("after push %d: expected capacity %d, got %d", i+1, want, h.Cap())
		}
	}
}

func TestDrainShrinksStorage(t *testing.T) {
	h := binaryheap.New[int]()
	for i := 0; i < 16; i++ {
		h.Push(i)
	}
	if h.Cap() != 16 {
		t.Fatalf("expected capacity 16, got %d", h.Cap())
	}
	// 13 pops leave 3 live elements: 3*4 < 16 halves the buffer once.
	for i := 0; i < 13; i++ {
		if _, err := h.Pop(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if h.Size() != 3 {
		t.Fatalf("expected size 3, got %d", h.Size())
	}
	if h.Cap() != 8 {
		t.Fatalf("expected capacity 8 after drain, got %d", h.Cap())
	}
}

func TestDrainBoundsOverhead(t *testing.T) {
	h := binaryheap.New[int]()
	for i := 0; i < 64; i++ {
		h.Push(i)
	}
	for !h.IsEmpty() {
		if _, err := h.Pop(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h.Size() > 0 && h.Size()*4 < h.Cap() {
			t.Fatalf("capacity %d exceeds 4x size %d", h.Cap(), h.Size())
		}
	}
}

func TestClear(t *testing.T) {
	h := binaryheap.New[int]()
	h.Push(1)
	h.Push(2)
	h.Clear()
	if !h.IsEmpty() {
		t.Fatal("expected empty after clear")
	}
	h.Push(5)
	v, err := h.Pop()
	if err != nil || v != 5 {
		t.Fatalf("expected (5, nil) after reuse, got (%d, %v)", v, err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	h := binaryheap.New[int]()
	for _, v := range []int{3, 1, 2} {
		h.Push(v)
	}
	clone := h.Clone()
	h.Push(0)
	if clone.Size() != 3 {
		t.Fatalf("expected clone size 3, got %d", clone.Size())
	}
	v, _ := clone.Pop()
	if v != 1 {
		t.Fatalf("expected clone minimum 1, got %d", v)
	}
	v, _ = h.Pop()
	if v != 0 {
		t.Fatalf("expected original minimum 0, got %d", v)
	}
	if h.Size() != 3 {
		t.Fatalf("expected original size 3, got %d", h.Size())
	}
}
