package hashmap

import (
	"fmt"

	"github.com/hyperbolic-timechamber/collections-go/src/list"
)

const (
	defaultCapacity = 16
	loadFactorLimit = 0.75
	fnvOffsetBasis  = 14695981039346656037
	fnvPrime        = 1099511628211
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// HashMap is a chained hash table whose buckets are contiguous
// list.Lists of entries rather than linked nodes.
type HashMap[K comparable, V any] struct {
	buckets  []list.List[entry[K, V]]
	size     int
	capacity int
}

func New[K comparable, V any]() *HashMap[K, V] {
	return &HashMap[K, V]{
		buckets:  make([]list.List[entry[K, V]], defaultCapacity),
		capacity: defaultCapacity,
	}
}

// fnvHash implements FNV-1a hash algorithm
func fnvHash(s string) uint64 {
	h := uint64(fnvOffsetBasis)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime
	}
	return h
}

func (m *HashMap[K, V]) hash(key K) int {
	h := fnvHash(fmt.Sprintf("%v", key))
	return int(h % uint64(m.capacity))
}

func (m *HashMap[K, V]) Put(key K, value V) {
	if float64(m.size+1)/float64(m.capacity) > loadFactorLimit {
		m.rehash()
	}
	bucket := &m.buckets[m.hash(key)]
	i, ok := bucket.IndexFunc(func(e entry[K, V]) bool { return e.key == key })
	if ok {
		bucket.Set(i, entry[K, V]{key: key, value: value})
		return
	}
	bucket.Append(entry[K, V]{key: key, value: value})
	m.size++
}

func (m *HashMap[K, V]) Get(key K) (V, bool) {
	var zero V
	bucket := &m.buckets[m.hash(key)]
	i, ok := bucket.IndexFunc(func(e entry[K, V]) bool { return e.key == key })
	if !ok {
		return zero, false
	}
	return bucket.Get(i).value, true
}

func (m *HashMap[K, V]) Remove(key K) (V, bool) {
	var zero V
	bucket := &m.buckets[m.hash(key)]
	i, ok := bucket.IndexFunc(func(e entry[K, V]) bool { return e.key == key })
	if !ok {
		return zero, false
	}
	e, err := bucket.Pop(i)
	if err != nil {
		return zero, false
	}
	m.size--
	return e.value, true
}

func (m *HashMap[K, V]) Contains(key K) bool {
	_, found := m.Get(key)
	return found
}

func (m *HashMap[K, V]) Size() int {
	return m.size
}

func (m *HashMap[K, V]) IsEmpty() bool {
	return m.size == 0
}

func (m *HashMap[K, V]) Clear() {
	m.buckets = make([]list.List[entry[K, V]], m.capacity)
	m.size = 0
}

func (m *HashMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for i := range m.buckets {
		for _, e := range m.buckets[i].Data() {
			keys = append(keys, e.key)
		}
	}
	return keys
}

func (m *HashMap[K, V]) Values() []V {
	values := make([]V, 0, m.size)
	for i := range m.buckets {
		for _, e := range m.buckets[i].Data() {
			values = append(values, e.value)
		}
	}
	return values
}

func (m *HashMap[K, V]) Capacity() int {
	return m.capacity
}

// Clone creates a copy of this HashMap.
// Note: This performs a shallow copy of values. If values are mutable
// objects (pointers, slices, maps), modifications to them will be visible
// in both the original and cloned HashMap.
func (m *HashMap[K, V]) Clone() *HashMap[K, V] {
	clone := &HashMap[K, V]{
		buckets:  make([]list.List[entry[K, V]], m.capacity),
		size:     m.size,
		capacity: m.capacity,
	}
	for i := range m.buckets {
		clone.buckets[i] = *m.buckets[i].Clone()
	}
	return clone
}

func (m *HashMap[K, V]) rehash() {
	oldBuckets := m.buckets
	m.capacity *= 2
	m.buckets = make([]list.List[entry[K, V]], m.capacity)
	m.size = 0
	for i := range oldBuckets {
		for _, e := range oldBuckets[i].Data() {
			m.Put(e.key, e.value)
		}
	}
}
