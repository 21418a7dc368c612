package main

import "testing"

func TestPointAdd(t *testing.T) {
	p := Point{X: 3, Y: 4}
	q := Point{X: 1, Y: 2}
	got := p.Add(q)
	if got != (Point{X: 4, Y: 6}) {
		t.Fatalf("Add = %v, want (4, 6)", got)
	}
	// Add must not mutate its operands.
	if p != (Point{X: 3, Y: 4}) || q != (Point{X: 1, Y: 2}) {
		t.Fatalf("Add mutated an operand: p=%v q=%v", p, q)
	}
}

func TestPointString(t *testing.T) {
	tests := []struct {
		point Point
		want  string
	}{
		{Point{X: 3, Y: 4}, "(3, 4)"},
		{Point{X: 0.5, Y: -1.25}, "(0.5, -1.25)"},
		{Point{}, "(0, 0)"},
	}
	for _, tt := range tests {
		if got := tt.point.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}
