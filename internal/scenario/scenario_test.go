package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/me/seeksim/pkg/disk"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeScenario(t, `
name: textbook
initial_position: 50
max_cylinder: 200
requests: [82, 170, 43, 140, 24, 16, 190]
algorithm: scan
direction: right
`)

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sc.Name != "textbook" || sc.InitialPosition != 50 || sc.MaxCylinder != 200 {
		t.Errorf("header = %q/%d/%d, want textbook/50/200", sc.Name, sc.InitialPosition, sc.MaxCylinder)
	}
	if want := []int{82, 170, 43, 140, 24, 16, 190}; !reflect.DeepEqual(sc.Requests, want) {
		t.Errorf("Requests = %v, want %v", sc.Requests, want)
	}

	policy, direction, err := sc.Policy()
	if err != nil {
		t.Fatalf("Policy: %v", err)
	}
	if policy != disk.PolicySCAN || direction != disk.DirectionRight {
		t.Errorf("Policy = (%v, %v), want (scan, right)", policy, direction)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeScenario(t, "requests: [82, 170\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestPolicy_DefaultsScanDirection(t *testing.T) {
	sc := &Scenario{Algorithm: "scan"}
	_, direction, err := sc.Policy()
	if err != nil {
		t.Fatalf("Policy: %v", err)
	}
	if direction != disk.DirectionRight {
		t.Errorf("direction = %v, want right default", direction)
	}
}

func TestPolicy_UnknownAlgorithm(t *testing.T) {
	sc := &Scenario{Algorithm: "elevator"}
	if _, _, err := sc.Policy(); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
}

func TestBuild_ValidatesRequests(t *testing.T) {
	sc := &Scenario{InitialPosition: 50, MaxCylinder: 200, Requests: []int{82, 500}}
	_, err := sc.Build()
	if err == nil {
		t.Fatal("expected error for out-of-range request")
	}
	var rangeErr *disk.RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("error = %T, want *disk.RangeError", err)
	}
	if rangeErr.Value != 500 {
		t.Errorf("Value = %d, want 500", rangeErr.Value)
	}
}

func TestBuild_RunsEndToEnd(t *testing.T) {
	sc := &Scenario{
		InitialPosition: 50,
		MaxCylinder:     200,
		Requests:        []int{82, 170, 43, 140, 24, 16, 190},
		Algorithm:       "sstf",
	}
	s, err := sc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	policy, direction, err := sc.Policy()
	if err != nil {
		t.Fatalf("Policy: %v", err)
	}
	res, err := s.Run(policy, direction)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.TotalSeek != 208 {
		t.Errorf("TotalSeek = %d, want 208", res.TotalSeek)
	}
}
