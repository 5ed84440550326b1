package disk

import "sort"

// FCFS services requests strictly in arrival order.
func (s *Scheduler) FCFS() Result {
	var res Result
	current := s.initial
	for _, r := range s.requests {
		res.Sequence = append(res.Sequence, r)
		res.TotalSeek += abs(r - current)
		current = r
	}
	return res
}

// SSTF greedily services the request closest to the current head
// position. Equidistant candidates are broken by insertion order: the
// earliest-added request wins.
func (s *Scheduler) SSTF() Result {
	var res Result
	current := s.initial
	done := make([]bool, len(s.requests))

	for n := 0; n < len(s.requests); n++ {
		closest := -1
		for i, r := range s.requests {
			if done[i] {
				continue
			}
			if closest == -1 || abs(r-current) < abs(s.requests[closest]-current) {
				closest = i
			}
		}
		r := s.requests[closest]
		done[closest] = true
		res.Sequence = append(res.Sequence, r)
		res.TotalSeek += abs(r - current)
		current = r
	}
	return res
}

// SCAN sweeps toward the given direction servicing every request on the
// way, touches the boundary if that side had any requests, then reverses
// and services the remainder. No boundary point is appended when the head
// already sits on the boundary after the first sweep.
func (s *Scheduler) SCAN(direction Direction) (Result, error) {
	if direction != DirectionLeft && direction != DirectionRight {
		return Result{}, &DirectionError{Value: direction}
	}

	var res Result
	current := s.initial
	sorted := append([]int(nil), s.requests...)
	sort.Ints(sorted)

	visit := func(pos int) {
		res.Sequence = append(res.Sequence, pos)
		res.TotalSeek += abs(pos - current)
		current = pos
	}

	// Split around the initial position. sorted is ascending, so the
	// first index with sorted[i] >= initial divides the two sweeps.
	split := sort.SearchInts(sorted, s.initial)
	// Requests equal to the initial position belong to the first sweep.
	eqEnd := split
	for eqEnd < len(sorted) && sorted[eqEnd] == s.initial {
		eqEnd++
	}

	if direction == DirectionRight {
		right := sorted[split:] // >= initial, ascending
		left := sorted[:split]  // < initial, serviced descending

		for _, r := range right {
			visit(r)
		}
		if len(right) > 0 && current != s.maxCylinder {
			visit(s.maxCylinder)
		}
		for i := len(left) - 1; i >= 0; i-- {
			visit(left[i])
		}
	} else {
		left := sorted[:eqEnd]  // <= initial, serviced descending
		right := sorted[eqEnd:] // > initial, ascending

		for i := len(left) - 1; i >= 0; i-- {
			visit(left[i])
		}
		if len(left) > 0 && current != 0 {
			visit(0)
		}
		for _, r := range right {
			visit(r)
		}
	}
	return res, nil
}

// CSCAN sweeps right servicing requests at or beyond the head, always
// runs to the last cylinder, wraps to cylinder 0, and services the rest
// ascending. Unlike SCAN the boundary and the wrap are visited even when
// one side had no requests, so every non-empty run costs a full sweep.
func (s *Scheduler) CSCAN() Result {
	var res Result
	if len(s.requests) == 0 {
		return res
	}

	current := s.initial
	sorted := append([]int(nil), s.requests...)
	sort.Ints(sorted)
	split := sort.SearchInts(sorted, s.initial)

	visit := func(pos int) {
		res.Sequence = append(res.Sequence, pos)
		res.TotalSeek += abs(pos - current)
		current = pos
	}

	for _, r := range sorted[split:] { // >= initial, ascending
		visit(r)
	}
	visit(s.maxCylinder)
	visit(0)
	for _, r := range sorted[:split] { // < initial, ascending after wrap
		visit(r)
	}
	return res
}
