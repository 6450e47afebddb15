package picsum

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatExt(t *testing.T) {
	assert.Equal(t, "jpg", FormatJpeg.Ext())
	assert.Equal(t, "webp", FormatWebp.Ext())
	assert.Equal(t, "jpg", Format(42).Ext())
}

func TestEffectiveBlur(t *testing.T) {
	// 1..=10 pass through unchanged
	for b := uint8(1); b <= MaxBlur; b++ {
		s := NewImageSettings(400, 400, WithBlur(b))
		assert.Equal(t, b, s.EffectiveBlur())
		assert.True(t, s.HasBlur())
	}

	// anything above 10 is clamped at use, not rejected
	for _, b := range []uint8{11, 42, 255} {
		s := NewImageSettings(400, 400, WithBlur(b))
		assert.Equal(t, MaxBlur, s.EffectiveBlur(), "blur %d", b)
		assert.True(t, s.HasBlur())
	}

	s := NewImageSettings(400, 400)
	assert.Equal(t, uint8(0), s.EffectiveBlur())
	assert.False(t, s.HasBlur())
}

func TestQueryValues(t *testing.T) {
	t.Run("defaults emit nothing", func(t *testing.T) {
		q := NewImageSettings(400, 400).queryValues()
		assert.Empty(t, q)
	})

	t.Run("grayscale emits only when set", func(t *testing.T) {
		q := NewImageSettings(400, 400, WithGrayscale()).queryValues()
		assert.Equal(t, "true", q.Get("grayscale"))
		assert.False(t, q.Has("blur"))

		q = NewImageSettings(400, 400).queryValues()
		assert.False(t, q.Has("grayscale"))
	})

	t.Run("blur emits the clamped value", func(t *testing.T) {
		for b := uint8(1); b <= MaxBlur; b++ {
			q := NewImageSettings(400, 400, WithBlur(b)).queryValues()
			assert.Equal(t, fmt.Sprint(b), q.Get("blur"))
		}

		q := NewImageSettings(400, 400, WithBlur(15)).queryValues()
		assert.Equal(t, "10", q.Get("blur"))

		q = NewImageSettings(400, 400, WithBlur(0)).queryValues()
		assert.False(t, q.Has("blur"))
	})

	t.Run("round trip is idempotent", func(t *testing.T) {
		s := NewImageSettings(400, 400, WithGrayscale(), WithBlur(15))
		encoded := s.queryValues().Encode()

		decoded, err := url.ParseQuery(encoded)
		assert.NoError(t, err)
		assert.Equal(t, url.Values{
			"grayscale": []string{"true"},
			"blur":      []string{"10"},
		}, decoded)

		// re-encoding the decoded set reproduces the same string
		assert.Equal(t, encoded, decoded.Encode())
	})
}
