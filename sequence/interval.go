package sequence

// interval represents a closed interval of logical positions.
type interval struct {
	start int
	end   int
}

// len returns the number of positions in the interval.
func (x interval) len() int {
	return x.end - x.start + 1
}

// gaps returns the runs of consecutive absent positions of the sequence,
// in order.
func (s *Sequence[T]) gaps() []interval {
	var gaps []interval
	if s.lead > 0 {
		gaps = append(gaps, interval{start: 0, end: s.lead - 1})
	}
	p := s.lead
	for i := 0; i < s.slots.Len(); i++ {
		run := s.slots.At(i).run
		if run > 0 {
			gaps = append(gaps, interval{start: p + 1, end: p + run})
		}
		p += 1 + run
	}
	return gaps
}
