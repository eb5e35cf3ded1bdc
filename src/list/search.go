package list

// Index returns the position of the first element equal to value, or
// (-1, false) if the list does not contain it.
func Index[T comparable](l *List[T], value T) (int, bool) {
	for i := 0; i < l.size; i++ {
		if l.data[i] == value {
			return i, true
		}
	}
	return -1, false
}

// IndexFunc returns the position of the first element satisfying f, or
// (-1, false) if none does.
func (l *List[T]) IndexFunc(f func(T) bool) (int, bool) {
	for i := 0; i < l.size; i++ {
		if f(l.data[i]) {
			return i, true
		}
	}
	return -1, false
}

// Count returns the number of elements equal to value.
func Count[T comparable](l *List[T], value T) int {
	n := 0
	for i := 0; i < l.size; i++ {
		if l.data[i] == value {
			n++
		}
	}
	return n
}

// Contains reports whether the list holds an element equal to value.
func Contains[T comparable](l *List[T], value T) bool {
	_, ok := Index(l, value)
	return ok
}
