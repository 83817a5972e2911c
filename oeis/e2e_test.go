package oeis

import (
	"context"
	"testing"
	"time"

	"github.com/jjtimmons/goeis/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skip the given test if running in short mode, these hit oeis.org
func skipIfShort(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping test against oeis.org in short mode")
	}
}

func Test_e2e(t *testing.T) {
	skipIfShort(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	c := NewClient(config.Default())

	fib, err := Fetch(ctx, c, 45)
	require.NoError(t, err)
	assert.Contains(t, fib.Record().URL, "A000045")

	first, err := fib.First(8)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "1", "2", "3", "5", "8", "13"}, strs(first))

	seqs, err := Search(ctx, c, ints(1, 2, 3, 5, 8), 0, 5)
	require.NoError(t, err)
	require.NotEmpty(t, seqs)
	assert.True(t, len(seqs) <= 5)
	for _, s := range seqs {
		assert.True(t, isSubsequence(ints(1, 2, 3, 5, 8), s.Terms()), "%s", s.ID())
	}

	require.NoError(t, fib.ReplaceWithFull(ctx))
	assert.True(t, fib.Len() > len(first))
}
