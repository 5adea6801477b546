package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSimilar(t *testing.T) {
	t.Parallel()

	candidates := []string{"status", "start", "stop", "member", "version"}

	t.Run("typo finds the intended command", func(t *testing.T) {
		t.Parallel()
		got := FindSimilar("statsu", candidates, 3)
		assert.Contains(t, got, "status")
	})
	t.Run("prefix ranks high", func(t *testing.T) {
		t.Parallel()
		got := FindSimilar("sta", candidates, 3)
		assert.Contains(t, got, "start")
		assert.Contains(t, got, "status")
	})
	t.Run("nothing similar", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, FindSimilar("xyzzy", candidates, 3))
	})
	t.Run("empty target", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, FindSimilar("", candidates, 3))
	})
	t.Run("respects max results", func(t *testing.T) {
		t.Parallel()
		got := FindSimilar("st", []string{"st1", "st2", "st3", "st4"}, 2)
		assert.Len(t, got, 2)
	})
}
