package disk

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNew_InitialPositionOutOfRange(t *testing.T) {
	tests := []struct {
		initial, maxCyl int
	}{
		{-1, 200},
		{201, 200},
		{1000, 200},
	}
	for _, tt := range tests {
		_, err := New(tt.initial, tt.maxCyl)
		if err == nil {
			t.Errorf("New(%d, %d): expected error", tt.initial, tt.maxCyl)
			continue
		}
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("New(%d, %d): error = %T, want *RangeError", tt.initial, tt.maxCyl, err)
			continue
		}
		if rangeErr.Value != tt.initial || rangeErr.Max != tt.maxCyl {
			t.Errorf("RangeError = %+v, want Value=%d Max=%d", rangeErr, tt.initial, tt.maxCyl)
		}
	}
}

func TestNew_InvalidMaxCylinder(t *testing.T) {
	for _, maxCyl := range []int{0, -5} {
		if _, err := New(0, maxCyl); err == nil {
			t.Errorf("New(0, %d): expected error", maxCyl)
		}
	}
}

func TestAddRequest_Validation(t *testing.T) {
	s, err := New(50, 200)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.AddRequest(82); err != nil {
		t.Fatalf("AddRequest(82): %v", err)
	}

	// Out-of-range values are rejected and leave the list unchanged.
	for _, bad := range []int{-1, 201, 500} {
		err := s.AddRequest(bad)
		if err == nil {
			t.Errorf("AddRequest(%d): expected error", bad)
			continue
		}
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("AddRequest(%d): error = %T, want *RangeError", bad, err)
			continue
		}
		if rangeErr.Value != bad || rangeErr.Max != 200 {
			t.Errorf("RangeError = %+v, want Value=%d Max=200", rangeErr, bad)
		}
	}
	if got := s.Requests(); !reflect.DeepEqual(got, []int{82}) {
		t.Errorf("Requests = %v, want [82] after rejected inserts", got)
	}
}

func TestRangeError_Message(t *testing.T) {
	err := &RangeError{Field: "request", Value: 201, Max: 200}
	want := "request 201 out of range [0, 200]"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestRequests_ReturnsCopy(t *testing.T) {
	s, _ := New(50, 200)
	s.AddRequest(10)
	s.AddRequest(20)

	got := s.Requests()
	got[0] = 999

	if !reflect.DeepEqual(s.Requests(), []int{10, 20}) {
		t.Errorf("Requests = %v, caller mutation leaked into scheduler", s.Requests())
	}
}

func TestPolicies_DoNotMutateRequests(t *testing.T) {
	s, _ := New(50, 200)
	for _, r := range []int{82, 170, 43, 140, 24, 16, 190} {
		s.AddRequest(r)
	}
	before := s.Requests()

	s.FCFS()
	s.SSTF()
	s.SCAN(DirectionLeft)
	s.SCAN(DirectionRight)
	s.CSCAN()

	if got := s.Requests(); !reflect.DeepEqual(got, before) {
		t.Errorf("Requests = %v, want %v (policies must not reorder)", got, before)
	}
}

func TestParsePolicy(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Policy
	}{
		{"fcfs", PolicyFCFS},
		{"sstf", PolicySSTF},
		{"scan", PolicySCAN},
		{"cscan", PolicyCSCAN},
	} {
		got, err := ParsePolicy(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParsePolicy(%q) = (%v, %v), want (%v, nil)", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParsePolicy("look"); err == nil {
		t.Error("ParsePolicy(\"look\"): expected error")
	} else if !strings.Contains(err.Error(), "look") {
		t.Errorf("error %q should name the offending value", err)
	}
}

func TestAverageSeek(t *testing.T) {
	res := Result{Sequence: []int{10, 20}, TotalSeek: 30}
	if got := res.AverageSeek(); got != 15 {
		t.Errorf("AverageSeek = %v, want 15", got)
	}
	if got := (Result{}).AverageSeek(); got != 0 {
		t.Errorf("empty AverageSeek = %v, want 0", got)
	}
}
