package oeis

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrNotFound matches any *NotFoundError with errors.Is
	ErrNotFound = errors.New("not found")

	// ErrIndex matches any *IndexError with errors.Is
	ErrIndex = errors.New("index out of range")

	// ErrNilTerm is returned for a nil *big.Int where a term is needed, or no terms at all
	ErrNilTerm = errors.New("missing term")

	// ErrNoClient is returned by ReplaceWithFull on a Sequence made without a Client
	ErrNoClient = errors.New("sequence has no client")

	// ErrInvalidID is returned by ParseID for ids that aren't positive A-numbers
	ErrInvalidID = errors.New("invalid sequence id")
)

// TransportError is a failed network round-trip or a non-2xx response.
type TransportError struct {
	URL        string
	StatusCode int // zero if no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to GET %s: unexpected response status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("failed to GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError is a response body that doesn't have the expected shape.
type ParseError struct {
	URL  string
	Line int // 1-based line of the offending b-file row, zero otherwise
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("failed to parse %s, line %d: %s", e.URL, e.Line, msg)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.URL, msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NotFoundError is a sequence id with no upstream entry, or an
// item missing from the loaded terms of a sequence.
type NotFoundError struct {
	ID   ID
	Item *big.Int // nil when the sequence itself wasn't found
}

func (e *NotFoundError) Error() string {
	if e.Item == nil {
		return fmt.Sprintf("sequence %s not found", e.ID)
	}
	return fmt.Sprintf("%s not found in the loaded terms of %s", e.Item, e.ID)
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// IndexError is an index or range outside the loaded terms.
type IndexError struct {
	Index int
	Len   int
	Msg   string
}

func (e *IndexError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Index < 0 {
		return fmt.Sprintf("the index passed (%d) is negative", e.Index)
	}
	return fmt.Sprintf("%d is higher than the number of loaded terms (%d)", e.Index, e.Len)
}

// Is lets errors.Is(err, ErrIndex) match.
func (e *IndexError) Is(target error) bool { return target == ErrIndex }
