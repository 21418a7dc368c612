package main

import "fmt"

// Status is the outcome of a demonstration run.
type Status int

const (
	StatusSuccess Status = iota
	StatusError
	StatusPending
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	case StatusPending:
		return "pending"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}
