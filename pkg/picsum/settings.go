package picsum

import (
	"net/url"

	"github.com/google/go-querystring/query"
)

// MaxBlur is the largest blur level the upstream service accepts. Higher
// values are clamped to this at request time.
const MaxBlur uint8 = 10

// Format identifies the file type of a requested image.
type Format int

const (
	// FormatJpeg requests a JPEG image. This is the default.
	FormatJpeg Format = iota
	// FormatWebp requests a WebP image.
	FormatWebp
)

// Ext returns the canonical file extension for the format, used when
// building image request paths. Unknown values fall back to jpeg.
func (f Format) Ext() string {
	switch f {
	case FormatWebp:
		return "webp"
	default:
		return "jpg"
	}
}

// ImageSettings describes how an image should be rendered by the upstream
// service. It is immutable once constructed; build one per request with
// NewImageSettings.
type ImageSettings struct {
	width     uint16
	height    uint16
	grayscale bool
	blur      uint8
	format    Format
}

// ImageOption configures optional image settings.
type ImageOption func(*ImageSettings)

// WithGrayscale requests a grayscale image.
func WithGrayscale() ImageOption {
	return func(s *ImageSettings) {
		s.grayscale = true
	}
}

// WithBlur sets the blur level. Valid levels are 1 through MaxBlur; larger
// values are not rejected but are clamped to MaxBlur when the request is
// made. Zero means no blur.
func WithBlur(blur uint8) ImageOption {
	return func(s *ImageSettings) {
		s.blur = blur
	}
}

// WithFormat sets the file type of the requested image. Defaults to
// FormatJpeg.
func WithFormat(format Format) ImageOption {
	return func(s *ImageSettings) {
		s.format = format
	}
}

// NewImageSettings creates settings for an image of the given dimensions.
// Dimensions are passed through to the service as requested; no local
// range validation is performed.
func NewImageSettings(width, height uint16, opts ...ImageOption) *ImageSettings {
	s := &ImageSettings{
		width:  width,
		height: height,
		format: FormatJpeg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Format returns the requested file type.
func (s *ImageSettings) Format() Format {
	return s.format
}

// IsGrayscale reports whether a grayscale image was requested.
func (s *ImageSettings) IsGrayscale() bool {
	return s.grayscale
}

// HasBlur reports whether a blur parameter will be sent. It is evaluated
// on the stored value, so any nonzero blur counts even before clamping.
func (s *ImageSettings) HasBlur() bool {
	return s.blur > 0
}

// EffectiveBlur returns the blur level actually sent on the wire,
// clamped to MaxBlur.
func (s *ImageSettings) EffectiveBlur() uint8 {
	if s.blur > MaxBlur {
		return MaxBlur
	}
	return s.blur
}

// imageQuery is the wire form of the optional parameters. Fields at their
// zero value are omitted entirely, so grayscale=false and blur=0 never
// appear in a query string.
type imageQuery struct {
	Grayscale bool  `url:"grayscale,omitempty"`
	Blur      uint8 `url:"blur,omitempty"`
}

// queryValues derives the query parameters for the settings.
func (s *ImageSettings) queryValues() url.Values {
	q, err := query.Values(imageQuery{
		Grayscale: s.grayscale,
		Blur:      s.EffectiveBlur(),
	})
	if err != nil {
		// imageQuery is a fixed struct; encoding it cannot fail.
		return url.Values{}
	}
	return q
}
