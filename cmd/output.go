package cmd

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/ugorji/go/codec"
)

// jsonOut writes indented JSON, without escaping the HTML in OEIS links
var jsonOut = &codec.JsonHandle{Indent: 2, HTMLCharsAsIs: true}

// writeJSON encodes v to w, followed by a newline
func writeJSON(w io.Writer, v interface{}) error {
	if err := codec.NewEncoder(w, jsonOut).Encode(v); err != nil {
		return fmt.Errorf("failed to serialize the output data: %v", err)
	}
	_, err := fmt.Fprintln(w)
	return err
}

// joinTerms writes terms in base 10 separated by sep
func joinTerms(terms []*big.Int, sep string) string {
	strs := make([]string, len(terms))
	for i, t := range terms {
		strs[i] = t.String()
	}
	return strings.Join(strs, sep)
}
