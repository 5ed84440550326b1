package ui

import (
	"reflect"
	"testing"
)

func TestParseRequestList(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"82, 170, 43", []int{82, 170, 43}, false},
		{"82 170 43", []int{82, 170, 43}, false},
		{"82,170,,  43", []int{82, 170, 43}, false},
		{"", nil, false},
		{"82, x", nil, true},
		{"12.5", nil, true},
	}
	for _, tt := range tests {
		got, err := ParseRequestList(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRequestList(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseRequestList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
