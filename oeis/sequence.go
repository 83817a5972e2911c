package oeis

import (
	"context"
	"fmt"
	"math/big"
)

// Sequence wraps one fetched Record and answers queries about its terms.
//
// Queries only see the terms currently loaded: the short list from the
// brief fetch, or the b-file after ReplaceWithFull. An item that only
// appears beyond the loaded terms is reported as absent.
//
// Distinct Sequences share no state. A single Sequence must not be
// used from other goroutines while ReplaceWithFull is running.
type Sequence struct {
	client *Client
	record *Record
	terms  []*big.Int
	full   bool
}

// Fetch makes a Sequence from the brief lookup of id.
func Fetch(ctx context.Context, client *Client, id ID) (*Sequence, error) {
	rec, err := client.FetchBrief(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewSequence(client, rec), nil
}

// Search makes a Sequence for each entry that contains terms.
// See Client.Search for start and limit.
func Search(ctx context.Context, client *Client, terms []*big.Int, start, limit int) ([]*Sequence, error) {
	recs, err := client.Search(ctx, terms, start, limit)
	if err != nil {
		return nil, err
	}

	seqs := make([]*Sequence, len(recs))
	for i, rec := range recs {
		seqs[i] = NewSequence(client, rec)
	}
	return seqs, nil
}

// NewSequence wraps an already fetched record. client is only
// used by ReplaceWithFull, and may be nil if that's never called.
func NewSequence(client *Client, rec *Record) *Sequence {
	rec = rec.copy()
	return &Sequence{
		client: client,
		record: rec,
		terms:  rec.Terms,
	}
}

// ID is the sequence's OEIS number.
func (s *Sequence) ID() ID {
	return s.record.ID
}

// Record returns a copy of the sequence's metadata and short term list.
func (s *Sequence) Record() *Record {
	return s.record.copy()
}

// Len is the number of loaded terms.
func (s *Sequence) Len() int {
	return len(s.terms)
}

// Full reports whether the b-file has replaced the short term list.
func (s *Sequence) Full() bool {
	return s.full
}

// Terms returns a copy of the loaded terms.
func (s *Sequence) Terms() []*big.Int {
	return copyTerms(s.terms)
}

// Contains reports whether item is one of the loaded terms. A nil item
// is never contained.
func (s *Sequence) Contains(item *big.Int) bool {
	return s.index(item) >= 0
}

// Find returns the indices of the first instances occurrences of item,
// in ascending order. There are fewer if the loaded terms run out.
func (s *Sequence) Find(item *big.Int, instances int) []int {
	indices := []int{}
	if item == nil {
		return indices
	}
	for i, term := range s.terms {
		if len(indices) >= instances {
			break
		}
		if term.Cmp(item) == 0 {
			indices = append(indices, i)
		}
	}
	return indices
}

// Next returns the term after the first occurrence of item.
func (s *Sequence) Next(item *big.Int) (*big.Int, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, ErrNilTerm)
	}
	i := s.index(item)
	if i < 0 {
		return nil, &NotFoundError{ID: s.ID(), Item: new(big.Int).Set(item)}
	}
	if i == len(s.terms)-1 {
		return nil, &IndexError{Index: i + 1, Len: len(s.terms), Msg: fmt.Sprintf("%s is the last loaded term, it has no successor", item)}
	}
	return new(big.Int).Set(s.terms[i+1]), nil
}

// Prev returns the term before the first occurrence of item.
func (s *Sequence) Prev(item *big.Int) (*big.Int, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, ErrNilTerm)
	}
	i := s.index(item)
	if i < 0 {
		return nil, &NotFoundError{ID: s.ID(), Item: new(big.Int).Set(item)}
	}
	if i == 0 {
		return nil, &IndexError{Index: -1, Len: len(s.terms), Msg: fmt.Sprintf("%s is the first term, it has no predecessor", item)}
	}
	return new(big.Int).Set(s.terms[i-1]), nil
}

// NthTerm returns the term at index, counting from zero.
func (s *Sequence) NthTerm(index int) (*big.Int, error) {
	if index < 0 || index >= len(s.terms) {
		return nil, &IndexError{Index: index, Len: len(s.terms)}
	}
	return new(big.Int).Set(s.terms[index]), nil
}

// Subsequence returns every step'th term in [start, stop). Both
// bounds must be in [0, Len()] and step must be positive.
func (s *Sequence) Subsequence(start, stop, step int) ([]*big.Int, error) {
	if err := s.checkBound(start); err != nil {
		return nil, err
	}
	if err := s.checkBound(stop); err != nil {
		return nil, err
	}
	if step <= 0 {
		return nil, &IndexError{Index: step, Len: len(s.terms), Msg: fmt.Sprintf("the step passed (%d) is not positive", step)}
	}

	sub := []*big.Int{}
	for i := start; i < stop; i += step {
		sub = append(sub, new(big.Int).Set(s.terms[i]))
	}
	return sub, nil
}

// First returns the first n terms.
func (s *Sequence) First(n int) ([]*big.Int, error) {
	return s.Subsequence(0, n, 1)
}

// ReplaceWithFull swaps the short term list for every term in the
// entry's b-file. The loaded terms are unchanged if the fetch fails.
func (s *Sequence) ReplaceWithFull(ctx context.Context) error {
	if s.client == nil {
		return ErrNoClient
	}
	terms, err := s.client.FetchFull(ctx, s.ID())
	if err != nil {
		return err
	}

	s.terms = terms
	s.full = true
	return nil
}

// index returns the position of the first occurrence of item, or -1
func (s *Sequence) index(item *big.Int) int {
	if item == nil {
		return -1
	}
	for i, term := range s.terms {
		if term.Cmp(item) == 0 {
			return i
		}
	}
	return -1
}

// checkBound errors if i can't be a slice bound of the loaded terms
func (s *Sequence) checkBound(i int) error {
	if i < 0 || i > len(s.terms) {
		return &IndexError{Index: i, Len: len(s.terms)}
	}
	return nil
}
