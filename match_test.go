package cmdtree

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestTree builds the fixture used across matcher tests:
//
//	a (collection)
//	└── x <id>
//	b [...]
func newTestTree() []*Command {
	exec := func(ctx context.Context, s *State) error { return nil }
	return []*Command{
		{
			Name: "a",
			SubCommands: []*Command{
				{Name: "x", Args: []string{"id"}, Exec: exec},
			},
		},
		{Name: "b", Args: []string{Variadic}, Exec: exec},
	}
}

func TestMatchCommands(t *testing.T) {
	t.Parallel()

	t.Run("resolves nested leaf with named slot", func(t *testing.T) {
		t.Parallel()
		res := matchCommands(newTestTree(), []string{"a", "x", "42"})
		require.Equal(t, matchResolved, res.kind)
		require.Equal(t, "x", res.cmd.Name)
		assert.Equal(t, []string{"a"}, res.path)

		id, ok := res.bindings.Arg("id")
		require.True(t, ok)
		assert.Equal(t, "42", id)
	})
	t.Run("variadic captures all remaining tokens", func(t *testing.T) {
		t.Parallel()
		res := matchCommands(newTestTree(), []string{"b", "p", "q", "r"})
		require.Equal(t, matchResolved, res.kind)

		others, ok := res.bindings.Variadic()
		require.True(t, ok)
		assert.Equal(t, []string{"p", "q", "r"}, others)

		v, ok := res.bindings.Lookup(VariadicName)
		require.True(t, ok)
		assert.Equal(t, []string{"p", "q", "r"}, v)
	})
	t.Run("variadic may capture nothing", func(t *testing.T) {
		t.Parallel()
		exec := func(ctx context.Context, s *State) error { return nil }
		cmds := []*Command{
			{Name: "run", Args: []string{"name", Variadic}, Exec: exec},
		}
		res := matchCommands(cmds, []string{"run", "only"})
		require.Equal(t, matchResolved, res.kind)

		name, ok := res.bindings.Arg("name")
		require.True(t, ok)
		assert.Equal(t, "only", name)

		others, ok := res.bindings.Variadic()
		require.True(t, ok)
		assert.Empty(t, others)
	})
	t.Run("trailing tokens reject a fixed-slot leaf", func(t *testing.T) {
		t.Parallel()
		res := matchCommands(newTestTree(), []string{"a", "x", "id1", "extra"})
		require.Equal(t, matchPartial, res.kind)
		assert.Equal(t, "x", res.cmd.Name)
		assert.Equal(t, []string{"a"}, res.path)
	})
	t.Run("missing token for a named slot is a partial match", func(t *testing.T) {
		t.Parallel()
		res := matchCommands(newTestTree(), []string{"a", "x"})
		require.Equal(t, matchPartial, res.kind)
		assert.Equal(t, "x", res.cmd.Name)
	})
	t.Run("bare collection is a partial match", func(t *testing.T) {
		t.Parallel()
		res := matchCommands(newTestTree(), []string{"a"})
		require.Equal(t, matchPartial, res.kind)
		assert.Equal(t, "a", res.cmd.Name)
		assert.Equal(t, []string{"a"}, res.path)
	})
	t.Run("unknown token inside a collection is a partial match", func(t *testing.T) {
		t.Parallel()
		res := matchCommands(newTestTree(), []string{"a", "zzz"})
		require.Equal(t, matchPartial, res.kind)
		assert.Equal(t, "a", res.cmd.Name)
	})
	t.Run("unknown first token is no match", func(t *testing.T) {
		t.Parallel()
		res := matchCommands(newTestTree(), []string{"zzz"})
		require.Equal(t, matchNone, res.kind)
		assert.Nil(t, res.cmd)
	})
	t.Run("no tokens is no match", func(t *testing.T) {
		t.Parallel()
		res := matchCommands(newTestTree(), nil)
		require.Equal(t, matchNone, res.kind)
	})
	t.Run("first declared sibling wins on duplicate names", func(t *testing.T) {
		t.Parallel()
		exec := func(ctx context.Context, s *State) error { return nil }
		first := &Command{Name: "dup", Exec: exec}
		second := &Command{Name: "dup", Args: []string{"id"}, Exec: exec}

		res := matchCommands([]*Command{first, second}, []string{"dup"})
		require.Equal(t, matchResolved, res.kind)
		assert.Same(t, first, res.cmd)

		// The shadowed sibling is unreachable even when its slots would fit.
		res = matchCommands([]*Command{first, second}, []string{"dup", "42"})
		require.Equal(t, matchPartial, res.kind)
		assert.Same(t, first, res.cmd)
	})
}

func TestBindArgs(t *testing.T) {
	t.Parallel()

	t.Run("pairwise binding", func(t *testing.T) {
		t.Parallel()
		b, ok := bindArgs([]string{"src", "dst"}, []string{"here", "there"})
		require.True(t, ok)
		src, _ := b.Arg("src")
		dst, _ := b.Arg("dst")
		assert.Equal(t, "here", src)
		assert.Equal(t, "there", dst)

		_, captured := b.Variadic()
		assert.False(t, captured)
	})
	t.Run("no slots accepts no tokens", func(t *testing.T) {
		t.Parallel()
		_, ok := bindArgs(nil, nil)
		require.True(t, ok)

		_, ok = bindArgs(nil, []string{"extra"})
		require.False(t, ok)
	})
}
