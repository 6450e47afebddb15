// Package apperrors provides the typed-error foundation used across the
// module. Errors form chains: a root error acts as a template, and derived
// errors keep an errors.Is relationship to every ancestor while carrying
// their own message and HTTP status code.
package apperrors

// Error extends the standard error interface with error chaining and
// status code management. Methods return Error to support chaining.
type Error interface {
	error
	Unwrap() error // support for errors.Is / errors.As

	New(msg string) Error                  // creates a new error using current as template
	Msg(msg string) Error                  // creates a new error with message and wraps original
	MsgErr(msg string, err ...error) Error // creates error with message and wraps extra errors
	Err(err ...error) Error                // attaches additional errors to current error
	SetStatusCode(int) Error               // sets HTTP status code for the error
	StatusCode() int                       // returns the current status code
	UnwrapAll() []error                    // returns all wrapped errors
}
