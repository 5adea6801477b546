package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("short input is returned as a single line", func(t *testing.T) {
		t.Parallel()
		lines := Wrap("short and sweet", 40)
		require.Equal(t, []string{"short and sweet"}, lines)
	})
	t.Run("empty input yields no lines", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, Wrap("", 40))
		assert.Empty(t, Wrap("   ", 40))
	})
	t.Run("breaks at whitespace before the width", func(t *testing.T) {
		t.Parallel()
		lines := Wrap("one two three four five", 10)
		require.Equal(t, []string{"one two", "three four", "five"}, lines)
		for _, line := range lines {
			assert.LessOrEqual(t, len(line), 10)
		}
	})
	t.Run("overlong word goes out unbroken", func(t *testing.T) {
		t.Parallel()
		lines := Wrap("see supercalifragilistic for details", 10)
		require.Equal(t, []string{"see", "supercalifragilistic", "for", "details"}, lines)
	})
	t.Run("overlong word alone", func(t *testing.T) {
		t.Parallel()
		lines := Wrap("supercalifragilistic", 5)
		require.Equal(t, []string{"supercalifragilistic"}, lines)
	})
	t.Run("trailing words become a final shorter line", func(t *testing.T) {
		t.Parallel()
		lines := Wrap("alpha beta gamma delta", 11)
		require.Equal(t, []string{"alpha beta", "gamma delta"}, lines)
	})
}
