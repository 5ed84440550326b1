// Package disk implements classic disk-head-scheduling algorithms.
//
// A Scheduler holds an initial head position, the addressable cylinder
// range [0, maxCylinder], and a list of pending requests. Each policy
// (FCFS, SSTF, SCAN, C-SCAN) computes the order in which the pending
// requests are serviced and the total head movement that order costs.
// Policies never mutate the scheduler's request list, so one Scheduler
// can be run through several policies for comparison.
package disk

import "fmt"

// Policy identifies a scheduling algorithm.
type Policy string

const (
	PolicyFCFS  Policy = "fcfs"
	PolicySSTF  Policy = "sstf"
	PolicySCAN  Policy = "scan"
	PolicyCSCAN Policy = "cscan"
)

// ParsePolicy maps a user-supplied name to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyFCFS, PolicySSTF, PolicySCAN, PolicyCSCAN:
		return Policy(s), nil
	}
	return "", fmt.Errorf("unknown algorithm %q (want fcfs, sstf, scan or cscan)", s)
}

// DisplayName returns the conventional name of the policy.
func (p Policy) DisplayName() string {
	switch p {
	case PolicyFCFS:
		return "FCFS (First-Come-First-Served)"
	case PolicySSTF:
		return "SSTF (Shortest Seek Time First)"
	case PolicySCAN:
		return "SCAN (Elevator)"
	case PolicyCSCAN:
		return "C-SCAN (Circular SCAN)"
	}
	return string(p)
}

// NeedsDirection reports whether the policy takes a sweep direction.
func (p Policy) NeedsDirection() bool {
	return p == PolicySCAN
}

// Direction is the initial sweep direction for SCAN.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Scheduler owns one simulation run: a head position, a cylinder range,
// and the pending requests added through AddRequest.
type Scheduler struct {
	initial     int
	maxCylinder int
	requests    []int
}

// New creates a Scheduler. maxCylinder must be at least 1 and the initial
// head position must lie in [0, maxCylinder].
func New(initialPosition, maxCylinder int) (*Scheduler, error) {
	if maxCylinder < 1 {
		return nil, fmt.Errorf("max cylinder must be positive, got %d", maxCylinder)
	}
	if initialPosition < 0 || initialPosition > maxCylinder {
		return nil, &RangeError{Field: "initial position", Value: initialPosition, Max: maxCylinder}
	}
	return &Scheduler{initial: initialPosition, maxCylinder: maxCylinder}, nil
}

// AddRequest appends a pending request. It is the single validation gate:
// a cylinder outside [0, maxCylinder] is rejected and the request list is
// left unchanged. Duplicates are allowed and serviced once per occurrence.
func (s *Scheduler) AddRequest(cylinder int) error {
	if cylinder < 0 || cylinder > s.maxCylinder {
		return &RangeError{Field: "request", Value: cylinder, Max: s.maxCylinder}
	}
	s.requests = append(s.requests, cylinder)
	return nil
}

// InitialPosition returns the head position the simulation starts from.
func (s *Scheduler) InitialPosition() int { return s.initial }

// MaxCylinder returns the upper bound of the cylinder range.
func (s *Scheduler) MaxCylinder() int { return s.maxCylinder }

// Requests returns a copy of the pending requests in insertion order.
func (s *Scheduler) Requests() []int {
	out := make([]int, len(s.requests))
	copy(out, s.requests)
	return out
}

// Result is the outcome of running one policy: the cylinders visited
// after the initial position (including synthetic boundary visits for
// SCAN/C-SCAN) and the total head movement of that walk.
type Result struct {
	Sequence  []int
	TotalSeek int
}

// AverageSeek is TotalSeek divided by the number of visited positions,
// 0 when the sequence is empty.
func (r Result) AverageSeek() float64 {
	if len(r.Sequence) == 0 {
		return 0
	}
	return float64(r.TotalSeek) / float64(len(r.Sequence))
}

// Run dispatches to the named policy. direction is only consulted for
// SCAN and must then be left or right.
func (s *Scheduler) Run(policy Policy, direction Direction) (Result, error) {
	switch policy {
	case PolicyFCFS:
		return s.FCFS(), nil
	case PolicySSTF:
		return s.SSTF(), nil
	case PolicySCAN:
		return s.SCAN(direction)
	case PolicyCSCAN:
		return s.CSCAN(), nil
	}
	return Result{}, fmt.Errorf("unknown algorithm %q", policy)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
