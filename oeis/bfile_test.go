package oeis

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseBFile(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		want     []string
		wantLine int
		wantErr  bool
	}{
		{
			"comments and blank lines are skipped",
			"# A000290\n# squares\n\n0 0\n1 1\n\n2 4\n3 9\n",
			[]string{"0", "1", "4", "9"},
			0,
			false,
		},
		{
			"tabs, trailing whitespace and no final newline",
			"1\t1\r\n2\t  2  \n3 6",
			[]string{"1", "2", "6"},
			0,
			false,
		},
		{
			"index column is ignored",
			"5 10\n9 -3\n",
			[]string{"10", "-3"},
			0,
			false,
		},
		{
			"terms past 64 bits",
			"0 170141183460469231731687303715884105727\n",
			[]string{"170141183460469231731687303715884105727"},
			0,
			false,
		},
		{"empty", "", nil, 0, true},
		{"comments only", "# nothing\n", nil, 0, true},
		{"no value", "# x\n0 1\n1\n", nil, 3, true},
		{"not an integer", "0 1\n1 1.5\n", nil, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBFile("b.txt", strings.NewReader(tt.body))
			if tt.wantErr {
				var pe *ParseError
				require.True(t, errors.As(err, &pe), "err = %v", err)
				assert.Equal(t, tt.wantLine, pe.Line)
				assert.Equal(t, "b.txt", pe.URL)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, strs(got))
		})
	}
}

func Test_parseBFile_longLine(t *testing.T) {
	digits := strings.Repeat("7", 200000)

	got, err := parseBFile("b.txt", strings.NewReader("0 "+digits+"\n"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, digits, got[0].String())
}
