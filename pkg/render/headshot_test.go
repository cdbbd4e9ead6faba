package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateHeadshotDeterministic(t *testing.T) {
	a := GenerateHeadshot("M. Okafor")
	b := GenerateHeadshot("M. Okafor")
	assert.Equal(t, a.Pix, b.Pix)

	other := GenerateHeadshot("L. Virtanen")
	assert.NotEqual(t, a.Pix, other.Pix)
}

func TestWriteHeadshotsSkipsExisting(t *testing.T) {
	dir := t.TempDir()

	written, err := WriteHeadshots(dir, []string{"A", "B"})
	require.NoError(t, err)
	assert.Len(t, written, 2)

	// A real photo dropped into the directory must not be replaced.
	real := filepath.Join(dir, "A.png")
	require.NoError(t, os.WriteFile(real, []byte("photo"), 0o644))
	written, err = WriteHeadshots(dir, []string{"A", "C"})
	require.NoError(t, err)
	assert.Len(t, written, 1)

	raw, err := os.ReadFile(real)
	require.NoError(t, err)
	assert.Equal(t, "photo", string(raw))
}
