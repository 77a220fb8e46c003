package bigseq

import "iter"

// All returns an iterator over index/value pairs in order.
//
// Iteration stops early if a segment cannot be loaded; check Err afterwards.
func (s *Sequence) All() iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		s.iterErr = nil
		for i := 0; i < s.size; i++ {
			v, err := s.Get(i)
			if err != nil {
				s.iterErr = err
				return
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in order.
//
// Iteration stops early if a segment cannot be loaded; check Err afterwards.
func (s *Sequence) Values() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for _, v := range s.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// AppendAll appends vs in order. On error the values before the failing
// one remain appended.
func (s *Sequence) AppendAll(vs ...int64) error {
	for _, v := range vs {
		if err := s.Append(v); err != nil {
			return err
		}
	}
	return nil
}

// Slice copies the elements in [from, to) into a new slice.
func (s *Sequence) Slice(from, to int) ([]int64, error) {
	if err := s.usable(); err != nil {
		return nil, err
	}
	if from < 0 || from > s.size {
		return nil, &IndexOutOfRangeError{Index: from, Size: s.size}
	}
	if to < from || to > s.size {
		return nil, &IndexOutOfRangeError{Index: to, Size: s.size}
	}

	out := make([]int64, 0, to-from)
	c := cursor{p: s.pager}
	for i := from; i < to; i++ {
		if err := c.seek(i); err != nil {
			return nil, err
		}
		out = append(out, c.value())
	}
	return out, nil
}
