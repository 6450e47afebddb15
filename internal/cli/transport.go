package cli

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// loggingTransport wraps an http.RoundTripper and logs every outgoing
// request with its outcome and duration. It is installed by the --verbose
// flag; the library itself never logs.
type loggingTransport struct {
	next   http.RoundTripper
	logger zerolog.Logger
}

func newLoggingTransport(next http.RoundTripper) *loggingTransport {
	return &loggingTransport{
		next:   next,
		logger: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
	}
}

// RoundTrip implements http.RoundTripper.
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	t.logger.Info().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Msg("outgoing request")

	resp, err := t.next.RoundTrip(req)
	duration := fmt.Sprintf("%dms", time.Since(start).Milliseconds())

	if err != nil {
		t.logger.Error().
			Err(err).
			Str("duration", duration).
			Msg("request failed")
		return nil, err
	}

	t.logger.Info().
		Int("status", resp.StatusCode).
		Str("duration", duration).
		Msg("request completed")
	return resp, nil
}
