package table

import (
	"testing"
	"time"
)

type level int

func (l level) String() string { return []string{"low", "high"}[l] }

func TestDisplay(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "string", value: "Dr. Robert Chen", want: "Dr. Robert Chen"},
		{name: "bool", value: true, want: "true"},
		{name: "int", value: 42, want: "42"},
		{name: "int64", value: int64(-7), want: "-7"},
		{name: "float", value: 1500.5, want: "1500.5"},
		{name: "whole float", value: 95.0, want: "95"},
		{name: "date", value: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), want: "2024-01-15"},
		{name: "datetime", value: time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC), want: "2024-01-15 09:30"},
		{name: "zero time", value: time.Time{}, want: ""},
		{name: "strings", value: []string{"Math", "Physics"}, want: "Math, Physics"},
		{name: "stringer", value: level(1), want: "high"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Display(tt.value); got != tt.want {
				t.Errorf("Display() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComparatorFor(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name string
		kind Kind
		a, b interface{}
		want int
	}{
		{name: "strings", kind: KindString, a: "Alice", b: "Bob", want: -1},
		{name: "strings equal", kind: KindString, a: "Alice", b: "Alice", want: 0},
		{name: "numbers not lexical", kind: KindNumber, a: 9, b: 10, want: -1},
		{name: "mixed numbers", kind: KindNumber, a: 10.5, b: int64(10), want: 1},
		{name: "numeric strings", kind: KindNumber, a: "100", b: "20", want: 1},
		{name: "dates", kind: KindDate, a: day(2), b: day(1), want: 1},
		{name: "date strings", kind: KindDate, a: "2023-12-31", b: "2024-01-01", want: -1},
		{name: "date and string", kind: KindDate, a: day(1), b: "2024-01-01", want: 0},
		{name: "bools", kind: KindBool, a: false, b: true, want: -1},
		{name: "missing first", kind: KindNumber, a: nil, b: 0, want: -1},
		{name: "missing last", kind: KindString, a: "a", b: nil, want: 1},
		{name: "both missing", kind: KindDate, a: nil, b: nil, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComparatorFor(tt.kind)(tt.a, tt.b)
			if sign(got) != tt.want {
				t.Errorf("ComparatorFor(%v)(%v, %v) = %v, want %v", tt.kind, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
