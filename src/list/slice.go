package list

// Range describes a start/stop/step selection over a list, with
// Python-style semantics: bounds may be negative (counted from the end)
// or omitted entirely, and the step may be negative to walk backward.
// The zero Range selects everything with step 1.
type Range struct {
	start, stop       int
	step              int
	hasStart, hasStop bool
}

// All selects the full list.
func All() Range {
	return Range{step: 1}
}

// From selects [start, end of list).
func From(start int) Range {
	return Range{start: start, hasStart: true, step: 1}
}

// To selects [0, stop).
func To(stop int) Range {
	return Range{stop: stop, hasStop: true, step: 1}
}

// Between selects [start, stop).
func Between(start, stop int) Range {
	return Range{start: start, stop: stop, hasStart: true, hasStop: true, step: 1}
}

// By sets the step. A negative step walks from start down toward stop;
// an omitted start then defaults to the last element and an omitted stop
// to one before the first. By panics on a zero step.
func (r Range) By(step int) Range {
	if step == 0 {
		panic("List: slice step cannot be zero")
	}
	r.step = step
	return r
}

// normalize resolves the range against a concrete length: negative bounds
// are offset by size, omitted bounds take their per-direction defaults,
// and out-of-range bounds are clamped so that iteration stays in
// [0, size). The result is always safe to iterate directly.
func (r Range) normalize(size int) (start, stop, step int) {
	step = r.step
	if step == 0 {
		step = 1
	}
	if r.hasStart {
		start = clampIndex(r.start, step, size)
	} else if step > 0 {
		start = 0
	} else {
		start = size - 1
	}
	if r.hasStop {
		stop = clampIndex(r.stop, step, size)
	} else if step > 0 {
		stop = size
	} else {
		stop = -1
	}
	return start, stop, step
}

func clampIndex(k, step, size int) int {
	if k < 0 {
		k += size
		if k < 0 {
			if step < 0 {
				return -1
			}
			return 0
		}
	} else if k >= size {
		if step < 0 {
			return size - 1
		}
		return size
	}
	return k
}

// Slice copies the elements selected by r into a new, independently
// owned list. An empty selection yields an empty list.
func (l *List[T]) Slice(r Range) *List[T] {
	start, stop, step := r.normalize(l.size)
	var n int
	if step > 0 {
		n = (stop - start + step - 1) / step
	} else {
		n = (stop - start + step + 1) / step
	}
	if n <= 0 {
		return New[T]()
	}
	out := NewWithCapacity[T](n)
	if step > 0 {
		for i := start; i < stop; i += step {
			out.Append(l.data[i])
		}
	} else {
		for i := start; i > stop; i += step {
			out.Append(l.data[i])
		}
	}
	return out
}
