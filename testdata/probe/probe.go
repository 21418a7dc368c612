// Package probe is a tiny package with a known construct census, used to
// test the inventory command.
package probe

// Pair holds two values of the same type.
type Pair[T any] struct {
	First, Second T
}

// Phase tracks probe lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseDone
)

// Counter accumulates increments.
type Counter struct {
	n int
}

// Inc bumps the counter.
func (c *Counter) Inc() {
	c.n++
}

// Transform applies f to every element of in.
func Transform[T, U any](in []T, f func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

// Describe names the dynamic type of v.
func Describe(v any) string {
	defer func() {}()
	switch v.(type) {
	case string:
		return "string"
	case int:
		return "int"
	default:
		return "other"
	}
}
