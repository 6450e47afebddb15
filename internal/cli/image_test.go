package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dleutenegger/picsum-go/pkg/picsum"
)

func TestImageFlagsSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f := &imageFlags{width: 400, height: 400, format: "jpg"}
		s, err := f.settings()
		require.NoError(t, err)
		assert.False(t, s.IsGrayscale())
		assert.False(t, s.HasBlur())
	})

	t.Run("jpeg alias", func(t *testing.T) {
		f := &imageFlags{width: 400, height: 400, format: "jpeg"}
		_, err := f.settings()
		assert.NoError(t, err)
	})

	t.Run("render options", func(t *testing.T) {
		f := &imageFlags{width: 640, height: 480, grayscale: true, blur: 15, format: "webp"}
		s, err := f.settings()
		require.NoError(t, err)
		assert.True(t, s.IsGrayscale())
		assert.True(t, s.HasBlur())
		assert.Equal(t, uint8(10), s.EffectiveBlur())
	})

	t.Run("unknown format", func(t *testing.T) {
		f := &imageFlags{width: 400, height: 400, format: "gif"}
		_, err := f.settings()
		assert.Error(t, err)
	})
}

func TestImageFlagsSave(t *testing.T) {
	data := []byte("\xff\xd8\xff\xe0 fetched image bytes")
	img := &picsum.Image{ID: "237", Data: data}

	t.Run("explicit output file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "out.jpg")
		f := &imageFlags{output: out}
		require.NoError(t, f.save(img, picsum.FormatJpeg))

		got, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("default filename is id dot ext", func(t *testing.T) {
		dir := t.TempDir()
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { _ = os.Chdir(wd) })

		f := &imageFlags{}
		require.NoError(t, f.save(img, picsum.FormatWebp))

		got, err := os.ReadFile(filepath.Join(dir, "237.webp"))
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})
}
