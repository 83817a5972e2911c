package oeis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_decodeResults(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantIDs   []int
		wantCount int
		wantErr   bool
	}{
		{"bare array", `[{"number": 45}, {"number": 23}]`, []int{45, 23}, -1, false},
		{"envelope", `{"count": 12, "start": 10, "results": [{"number": 1}]}`, []int{1}, 12, false},
		{"envelope with null results", `{"count": 0, "results": null}`, nil, 0, false},
		{"null", " null\n", nil, 0, false},
		{"empty array", "[]", nil, -1, false},
		{"empty body", "  ", nil, 0, true},
		{"html", "<!DOCTYPE html>", nil, 0, true},
		{"truncated", `[{"number": 45`, nil, 0, true},
		{"wrong type", `[{"number": "forty-five"}]`, nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, count, err := decodeResults("u", []byte(tt.body))
			if tt.wantErr {
				var pe *ParseError
				assert.True(t, errors.As(err, &pe), "err = %v", err)
				return
			}

			require.NoError(t, err)
			ids := []int(nil)
			for _, e := range entries {
				ids = append(ids, e.Number)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func Test_entry_record(t *testing.T) {
	name, data := "squares", "0, 1, 4, 9, 16"
	empty := ""

	tests := []struct {
		name    string
		entry   entry
		wantErr string
	}{
		{"complete", entry{Number: 290, Name: &name, Data: &data, Offset: "0,3", Keyword: "nonn,easy,nonn"}, ""},
		{"empty data is allowed", entry{Number: 290, Name: &name, Data: &empty}, ""},
		{"no number", entry{Name: &name, Data: &data}, "no sequence number"},
		{"no name", entry{Number: 290, Data: &data}, "has no name"},
		{"no data", entry{Number: 290, Name: &name}, "has no data"},
		{"bad data", entry{Number: 290, Name: &name, Data: strPtr("1,2,three")}, "malformed data"},
		{"bad offset", entry{Number: 290, Name: &name, Data: &data, Offset: "zero"}, "malformed offset"},
		{"bad created", entry{Number: 290, Name: &name, Data: &data, Created: "yesterday"}, "malformed created"},
		{"bad time", entry{Number: 290, Name: &name, Data: &data, Time: "1991-04-30"}, "malformed modified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := tt.entry.record("u", "https://oeis.org")
			if tt.wantErr != "" {
				var pe *ParseError
				require.True(t, errors.As(err, &pe), "err = %v", err)
				assert.Contains(t, pe.Error(), tt.wantErr)
				assert.Nil(t, rec)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, ID(290), rec.ID)
			assert.Equal(t, "https://oeis.org/A000290", rec.URL)
			assert.Empty(t, rec.Formula)
			assert.Empty(t, rec.Author)
			assert.True(t, rec.Created.IsZero())
		})
	}

	rec, err := tests[0].entry.record("u", "https://oeis.org")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "4", "9", "16"}, strs(rec.Terms))
	assert.Equal(t, []string{"easy", "nonn"}, rec.Keywords)
	assert.Equal(t, 0, rec.Offset)

	rec, err = tests[1].entry.record("u", "https://oeis.org")
	require.NoError(t, err)
	assert.Empty(t, rec.Terms)
	assert.Empty(t, rec.Keywords)
}

func strPtr(s string) *string { return &s }
