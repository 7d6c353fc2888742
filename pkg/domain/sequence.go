package domain

// Sequence is an ordered list of generated terms.
type Sequence []float64

// Last returns the final term, or 0 for an empty sequence.
func (s Sequence) Last() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// Range returns max(s) - min(s), or 0 for an empty sequence.
func (s Sequence) Range() float64 {
	if len(s) == 0 {
		return 0
	}
	min, max := s[0], s[0]
	for _, t := range s[1:] {
		if t < min {
			min = t
		}
		if t > max {
			max = t
		}
	}
	return max - min
}

// Sum returns the direct summation of the terms. It is kept independent of
// the closed-form series sum so the two can be shown side by side as a
// verification value.
func (s Sequence) Sum() float64 {
	var total float64
	for _, t := range s {
		total += t
	}
	return total
}
