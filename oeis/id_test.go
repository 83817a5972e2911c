package oeis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    ID
		wantErr bool
	}{
		{"A000045", 45, false},
		{"a45", 45, false},
		{"45", 45, false},
		{" A1234567 ", 1234567, false},
		{"A000000", 0, true},
		{"-45", 0, true},
		{"+45", 0, true},
		{"B000045", 0, true},
		{"A", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseID(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidID), "ParseID(%q) err = %v", tt.in, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestID_URL(t *testing.T) {
	tests := []struct {
		id       ID
		base     string
		wantStr  string
		wantURL  string
		wantBURL string
	}{
		{45, "https://oeis.org", "A000045", "https://oeis.org/A000045", "https://oeis.org/A000045/b000045.txt"},
		{1, "https://oeis.org/", "A000001", "https://oeis.org/A000001", "https://oeis.org/A000001/b000001.txt"},
		{1234567, "http://localhost:8080", "A1234567", "http://localhost:8080/A1234567", "http://localhost:8080/A1234567/b1234567.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.wantStr, func(t *testing.T) {
			assert.Equal(t, tt.wantStr, tt.id.String())
			assert.Equal(t, tt.wantURL, tt.id.URL(tt.base))
			assert.Equal(t, tt.wantBURL, tt.id.bFileURL(tt.base))
			assert.Contains(t, tt.id.URL(tt.base), tt.id.String())
		})
	}
}
