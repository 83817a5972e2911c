package oeis

import (
	"bytes"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ugorji/go/codec"
)

// Record is the metadata and short term list of one OEIS entry.
type Record struct {
	// ID is the entry's number, ex: 45 for A000045
	ID ID `codec:"id"`

	// Name is the one-line description of the sequence
	Name string `codec:"name"`

	// Terms are the first few values, as listed on the entry's page
	Terms []*big.Int `codec:"terms"`

	// Offset is the index of the first term
	Offset int `codec:"offset"`

	Formula    string `codec:"formula,omitempty"`
	Comments   string `codec:"comments,omitempty"`
	Example    string `codec:"example,omitempty"`
	Crossrefs  string `codec:"crossrefs,omitempty"`
	References string `codec:"references,omitempty"`
	Links      string `codec:"links,omitempty"`
	Programs   string `codec:"programs,omitempty"`
	Extensions string `codec:"extensions,omitempty"`

	// Keywords are the entry's tags, ex: "core", "nonn", sorted
	Keywords []string `codec:"keywords"`

	Author string `codec:"author,omitempty"`

	// Created is when the entry was first submitted (UTC)
	Created time.Time `codec:"created"`

	// Modified is when the entry was last edited (UTC)
	Modified time.Time `codec:"modified"`

	// Revision is the entry's edit count
	Revision int `codec:"revision"`

	// URL is the canonical page of the entry
	URL string `codec:"url"`
}

// HasKeyword reports whether the record is tagged with keyword.
func (r *Record) HasKeyword(keyword string) bool {
	i := sort.SearchStrings(r.Keywords, keyword)
	return i < len(r.Keywords) && r.Keywords[i] == keyword
}

// copy returns a deep copy so callers can't reach the owner's terms
func (r *Record) copy() *Record {
	c := *r
	c.Terms = copyTerms(r.Terms)
	c.Keywords = append([]string(nil), r.Keywords...)
	return &c
}

// entry is a single result in an OEIS fmt=json response
type entry struct {
	Number    int      `codec:"number"`
	Name      *string  `codec:"name"`
	Data      *string  `codec:"data"`
	Offset    string   `codec:"offset"`
	Formula   []string `codec:"formula"`
	Comment   []string `codec:"comment"`
	Example   []string `codec:"example"`
	Xref      []string `codec:"xref"`
	Reference []string `codec:"reference"`
	Link      []string `codec:"link"`
	Program   []string `codec:"program"`
	Ext       []string `codec:"ext"`
	Keyword   string   `codec:"keyword"`
	Author    string   `codec:"author"`
	Created   string   `codec:"created"`
	Time      string   `codec:"time"`
	Revision  int      `codec:"revision"`
}

// envelope is the older response shape, where results are nested
type envelope struct {
	Count   int     `codec:"count"`
	Start   int     `codec:"start"`
	Results []entry `codec:"results"`
}

// jsonHandle is shared by all decoders, it's safe for concurrent use once configured
var jsonHandle codec.JsonHandle

// decodeResults reads either response shape: a bare array of entries,
// an envelope with a results array, or null. count is the total number
// of matches upstream when the envelope reports it, -1 otherwise.
func decodeResults(url string, body []byte) (entries []entry, count int, err error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, 0, &ParseError{URL: url, Msg: "empty response body"}
	}

	switch trimmed[0] {
	case '[':
		if err := codec.NewDecoderBytes(trimmed, &jsonHandle).Decode(&entries); err != nil {
			return nil, 0, &ParseError{URL: url, Msg: "malformed results array", Err: err}
		}
		return entries, -1, nil
	case '{':
		var env envelope
		if err := codec.NewDecoderBytes(trimmed, &jsonHandle).Decode(&env); err != nil {
			return nil, 0, &ParseError{URL: url, Msg: "malformed results object", Err: err}
		}
		return env.Results, env.Count, nil
	}

	if string(trimmed) == "null" {
		return nil, 0, nil
	}
	return nil, 0, &ParseError{URL: url, Msg: "response is not a JSON result list"}
}

// record converts a decoded entry into a Record. Missing optional
// sections become empty, a missing number, name or data is an error.
func (e *entry) record(url, base string) (*Record, error) {
	if e.Number <= 0 {
		return nil, &ParseError{URL: url, Msg: "result has no sequence number"}
	}
	id := ID(e.Number)
	if e.Name == nil {
		return nil, &ParseError{URL: url, Msg: fmt.Sprintf("%s has no name", id)}
	}
	if e.Data == nil {
		return nil, &ParseError{URL: url, Msg: fmt.Sprintf("%s has no data", id)}
	}

	terms, err := parseTerms(*e.Data)
	if err != nil {
		return nil, &ParseError{URL: url, Msg: fmt.Sprintf("%s has malformed data", id), Err: err}
	}

	offset := 0
	if e.Offset != "" {
		first := strings.SplitN(e.Offset, ",", 2)[0]
		if offset, err = strconv.Atoi(strings.TrimSpace(first)); err != nil {
			return nil, &ParseError{URL: url, Msg: fmt.Sprintf("%s has malformed offset %q", id, e.Offset)}
		}
	}

	created, err := parseTime(e.Created)
	if err != nil {
		return nil, &ParseError{URL: url, Msg: fmt.Sprintf("%s has malformed created time", id), Err: err}
	}
	modified, err := parseTime(e.Time)
	if err != nil {
		return nil, &ParseError{URL: url, Msg: fmt.Sprintf("%s has malformed modified time", id), Err: err}
	}

	return &Record{
		ID:         id,
		Name:       *e.Name,
		Terms:      terms,
		Offset:     offset,
		Formula:    strings.Join(e.Formula, "\n"),
		Comments:   strings.Join(e.Comment, "\n"),
		Example:    strings.Join(e.Example, "\n"),
		Crossrefs:  strings.Join(e.Xref, "\n"),
		References: strings.Join(e.Reference, "\n"),
		Links:      strings.Join(e.Link, "\n"),
		Programs:   strings.Join(e.Program, "\n"),
		Extensions: strings.Join(e.Ext, "\n"),
		Keywords:   parseKeywords(e.Keyword),
		Author:     e.Author,
		Created:    created,
		Modified:   modified,
		Revision:   e.Revision,
		URL:        id.URL(base),
	}, nil
}

// parseTerms reads a comma separated list of integers, ex: "0,1,1,2,3"
func parseTerms(data string) ([]*big.Int, error) {
	terms := []*big.Int{}
	for _, field := range strings.Split(data, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		term, ok := new(big.Int).SetString(field, 10)
		if !ok {
			return nil, fmt.Errorf("%q is not an integer", field)
		}
		terms = append(terms, term)
	}
	return terms, nil
}

// parseKeywords splits the comma separated keyword field into a sorted set
func parseKeywords(keyword string) []string {
	seen := make(map[string]bool)
	keywords := []string{}
	for _, k := range strings.Split(keyword, ",") {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	return keywords
}

// parseTime reads an RFC 3339 timestamp as UTC, empty is the zero time
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func copyTerms(terms []*big.Int) []*big.Int {
	c := make([]*big.Int, len(terms))
	for i, t := range terms {
		c[i] = new(big.Int).Set(t)
	}
	return c
}
