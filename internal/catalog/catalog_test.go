package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"bubble_sort", "quick_sort", "merge_sort", "heap_sort"}, c.IDs())

	bubble, ok := c.Lookup("bubble_sort")
	require.True(t, ok)
	assert.Equal(t, "Bubble Sort", bubble.Name)
	assert.False(t, bubble.Efficient())

	quick, ok := c.Lookup("quick_sort")
	require.True(t, ok)
	assert.True(t, quick.Efficient())
}

func TestParse(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		yaml := `
algorithms:
  - id: linear_search
    complexity: "O(n)"
`
		c, err := Parse([]byte(yaml))
		require.NoError(t, err)
		a, ok := c.Lookup("linear_search")
		require.True(t, ok)
		assert.Equal(t, "linear_search", a.Name)
		assert.Equal(t, "Sorting", a.Category)
	})

	t.Run("no algorithms", func(t *testing.T) {
		_, err := Parse([]byte("algorithms: []"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no algorithms")
	})

	t.Run("missing id", func(t *testing.T) {
		yaml := `
algorithms:
  - name: Nameless
    complexity: "O(n)"
`
		_, err := Parse([]byte(yaml))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no id")
	})

	t.Run("duplicate id", func(t *testing.T) {
		yaml := `
algorithms:
  - id: a
    complexity: "O(n)"
  - id: a
    complexity: "O(n)"
`
		_, err := Parse([]byte(yaml))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "listed twice")
	})

	t.Run("missing complexity", func(t *testing.T) {
		_, err := Parse([]byte("algorithms:\n  - id: a\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no complexity")
	})
}

func TestLookup_Unknown(t *testing.T) {
	a, ok := Default().Lookup("bogo_sort")
	assert.False(t, ok)
	assert.Equal(t, "bogo_sort", a.Name)
	assert.Equal(t, "N/A", a.Complexity)
}

func TestResolve_KeepsOrder(t *testing.T) {
	algos := Default().Resolve([]string{"heap_sort", "bubble_sort", "x"})
	require.Len(t, algos, 3)
	assert.Equal(t, "Heap Sort", algos[0].Name)
	assert.Equal(t, "Bubble Sort", algos[1].Name)
	assert.Equal(t, "x", algos[2].Name)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithms:\n  - id: a\n    complexity: \"O(1)\"\n"), 0o644))

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, c.IDs())

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
