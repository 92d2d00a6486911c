package storage

import "fmt"

// Status classifies the outcome of a persistence call.
type Status int

const (
	// StatusOK means the value was written or read and decoded.
	StatusOK Status = iota
	// StatusEmpty means nothing was stored under the key yet.
	StatusEmpty
	// StatusFailed means the backend or the stored value was unusable. Loads
	// still hand back an empty collection.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result reports what a Save or Load did without failing the caller.
type Result struct {
	Status Status
	Reason string
	Err    error
	// Skipped counts loaded entries dropped because they could not be decoded.
	Skipped int
}

// OK reports whether the call fully succeeded.
func (r Result) OK() bool { return r.Status == StatusOK }

// Failed reports whether the backend or data was unusable.
func (r Result) Failed() bool { return r.Status == StatusFailed }

func ok() Result { return Result{Status: StatusOK} }

func empty(reason string) Result { return Result{Status: StatusEmpty, Reason: reason} }

func failed(reason string, err error) Result {
	return Result{Status: StatusFailed, Reason: reason, Err: err}
}
