package main

// Number constrains Accumulator to the built-in numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Accumulator wraps a running numeric value. The stored value always equals
// the initial value with every Add and Scale applied in call order.
type Accumulator[T Number] struct {
	value T
}

// NewAccumulator returns an accumulator seeded with initial.
func NewAccumulator[T Number](initial T) *Accumulator[T] {
	return &Accumulator[T]{value: initial}
}

// Add folds v into the running value. It returns the receiver so calls chain.
func (a *Accumulator[T]) Add(v T) *Accumulator[T] {
	a.value += v
	return a
}

// Scale multiplies the running value by v. It returns the receiver so calls
// chain.
func (a *Accumulator[T]) Scale(v T) *Accumulator[T] {
	a.value *= v
	return a
}

// Value reports the current running value.
func (a *Accumulator[T]) Value() T {
	return a.value
}

// Multiply returns the product of a and b.
func Multiply[T Number](a, b T) T {
	return a * b
}
