package oeis

import (
	"bufio"
	"io"
	"math/big"
	"strings"
)

// parseBFile reads the values from a b-file: zero or more comment lines
// starting with '#', then one "<index> <value>" line per term. The index
// column is assumed contiguous and isn't checked. Blank lines are skipped.
func parseBFile(url string, r io.Reader) ([]*big.Int, error) {
	terms := []*big.Int{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024) // some terms have thousands of digits
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, &ParseError{URL: url, Line: line, Msg: "expected an index and a value"}
		}

		term, ok := new(big.Int).SetString(fields[1], 10)
		if !ok {
			return nil, &ParseError{URL: url, Line: line, Msg: "value " + fields[1] + " is not an integer"}
		}
		terms = append(terms, term)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{URL: url, Line: line + 1, Msg: "failed to read b-file", Err: err}
	}

	if len(terms) == 0 {
		return nil, &ParseError{URL: url, Msg: "b-file has no terms"}
	}
	return terms, nil
}
