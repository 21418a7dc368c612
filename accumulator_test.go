package main

import "testing"

func TestAccumulatorSum(t *testing.T) {
	acc := NewAccumulator(0)
	acc.Add(10).Add(20).Add(30)
	if got := acc.Value(); got != 60 {
		t.Fatalf("Value() = %d, want 60", got)
	}
}

func TestAccumulatorInitialValue(t *testing.T) {
	acc := NewAccumulator(3.14)
	acc.Add(2.86)
	if got := acc.Value(); got != 3.14+2.86 {
		t.Fatalf("Value() = %g, want %g", got, 3.14+2.86)
	}
}

func TestAccumulatorChainingReturnsReceiver(t *testing.T) {
	acc := NewAccumulator(1)
	if acc.Add(2) != acc || acc.Scale(3) != acc {
		t.Fatalf("Add/Scale must return the receiver for chaining")
	}
}

func TestAccumulatorScale(t *testing.T) {
	if got := NewAccumulator(2).Add(3).Scale(4).Value(); got != 20 {
		t.Fatalf("Value() = %d, want 20", got)
	}
}

func TestMultiply(t *testing.T) {
	if got := Multiply(6, 7); got != 42 {
		t.Fatalf("Multiply(6, 7) = %d, want 42", got)
	}
	if got := Multiply(1.5, 2.0); got != 3.0 {
		t.Fatalf("Multiply(1.5, 2.0) = %g, want 3", got)
	}
}
