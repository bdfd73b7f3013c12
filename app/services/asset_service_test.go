package services

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetServiceStore(t *testing.T) {
	svc, err := NewAssetService(t.TempDir())
	require.NoError(t, err)

	t.Run("stores file under extension-qualified name", func(t *testing.T) {
		ref, err := svc.Store(strings.NewReader("fake image bytes"), "img.png")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(ref, "uploads/"))
		assert.True(t, strings.HasSuffix(ref, ".png"))

		data, err := os.ReadFile(svc.Path(ref))
		require.NoError(t, err)
		assert.Equal(t, "fake image bytes", string(data))
	})

	t.Run("extension is lowercased", func(t *testing.T) {
		ref, err := svc.Store(strings.NewReader("x"), "PHOTO.JPG")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(ref, ".jpg"))
	})

	t.Run("distinct names for identical originals", func(t *testing.T) {
		a, err := svc.Store(strings.NewReader("x"), "img.png")
		require.NoError(t, err)
		b, err := svc.Store(strings.NewReader("x"), "img.png")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("rejects name without extension", func(t *testing.T) {
		_, err := svc.Store(strings.NewReader("x"), "noextension")
		assert.ErrorIs(t, err, ErrNoExtension)
	})

	t.Run("rejects name with trailing dot", func(t *testing.T) {
		_, err := svc.Store(strings.NewReader("x"), "weird.")
		assert.ErrorIs(t, err, ErrNoExtension)
	})
}
