package picsum

import (
	"fmt"
	"net/http"

	"github.com/dleutenegger/picsum-go/internal/common/apperrors"
	"github.com/dleutenegger/picsum-go/internal/common/httpclient"
)

// The four error kinds every failing operation resolves to. Match them
// with errors.Is; the concrete error carries a descriptive message.
var (
	// ErrInvalidRequest indicates the service rejected the request
	// (HTTP 400).
	ErrInvalidRequest apperrors.Error = apperrors.New("request error").SetStatusCode(http.StatusBadRequest)

	// ErrServerError indicates the service failed internally (HTTP 500).
	ErrServerError apperrors.Error = apperrors.New("server error").SetStatusCode(http.StatusInternalServerError)

	// ErrInvalidResponse indicates a successful response whose body could
	// not be decoded into the expected JSON shape.
	ErrInvalidResponse apperrors.Error = apperrors.New("invalid response")

	// ErrUnexpectedError is the catch-all: any other failing status,
	// transport-level failures, and a missing picsum-id header on an
	// otherwise successful image response.
	ErrUnexpectedError apperrors.Error = apperrors.New("unexpected error")
)

// errMissingField builds the decode failure for a metadata record with an
// absent required field.
func errMissingField(field string) error {
	return ErrInvalidResponse.New(fmt.Sprintf("invalid response: missing field %q", field))
}

// invalidResponse wraps a JSON decode failure.
func invalidResponse(err error) error {
	return ErrInvalidResponse.MsgErr("invalid response: "+err.Error(), err)
}

// mapError converts a failure from the transport layer into one of the
// error kinds. Status 400 and 500 get their dedicated kinds; every other
// failing status and any transport-level failure (connection, timeout,
// body read) falls through to ErrUnexpectedError. The mapping is total.
func mapError(err error) error {
	if httpErr, ok := err.(*httpclient.HTTPError); ok {
		switch httpErr.StatusCode {
		case http.StatusBadRequest:
			return ErrInvalidRequest.MsgErr("request error: "+httpErr.Message, err)
		case http.StatusInternalServerError:
			return ErrServerError.MsgErr("server error: "+httpErr.Message, err)
		default:
			return ErrUnexpectedError.MsgErr("unexpected error: "+httpErr.Message, err)
		}
	}
	return ErrUnexpectedError.MsgErr("unexpected error: "+err.Error(), err)
}
