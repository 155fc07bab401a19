package scanner

// PageCount returns ceil(MismatchCount / size). It is 0 when there are no
// mismatches or size is not positive.
func (s *Session) PageCount(size int) int {
	return pageCount(s.MismatchCount(), size)
}

// Page returns the mismatches on the zero-based page index. Out of range
// pages are empty.
func (s *Session) Page(index, size int) []Mismatch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start, end, ok := pageBounds(len(s.mismatches), index, size)
	if !ok {
		return nil
	}
	out := make([]Mismatch, end-start)
	copy(out, s.mismatches[start:end])
	return out
}

func pageCount(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

func pageBounds(count, index, size int) (int, int, bool) {
	if size <= 0 || index < 0 {
		return 0, 0, false
	}
	start := index * size
	if start >= count {
		return 0, 0, false
	}
	end := start + size
	if end > count {
		end = count
	}
	return start, end, true
}
