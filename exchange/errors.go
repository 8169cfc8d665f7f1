package exchange

import "fmt"

//
// CredentialsError represents an error due to a missing or malformed API key pair. It is always
// detected locally – before any request leaves the process.
//
type CredentialsError struct {
	reason string
}

func (o *CredentialsError) Error() string {
	return fmt.Sprintf("invalid credentials: %s", o.reason)
}

//
// ArgumentError represents an error due to a call-site argument that would be rejected by the
// exchange (e.g. an unrecognized symbol or a non-positive quantity). It is always detected
// locally – before any request leaves the process.
//
type ArgumentError struct {
	argument string
	reason   string
}

func (o *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", o.argument, o.reason)
}

//
// HTTPError represents an error due to a non-2xx response from an API endpoint that did not carry
// a first-class error payload. When dealing with cryptocurrency exchange APIs, such a response
// almost always means that something critically wrong has occurred.
//
type HTTPError struct {
	statusCode int
}

func NewHTTPError(statusCode int) *HTTPError {
	return &HTTPError{
		statusCode: statusCode,
	}
}

func (o *HTTPError) StatusCode() int {
	return o.statusCode
}

func (o *HTTPError) Error() string {
	return fmt.Sprintf("server responded with a %d status code", o.statusCode)
}

//
// APIError represents a first-class error provided in the response of a request against the
// exchange's API. The exchange reports either a numeric code with a message, or a bare "error"
// string – both are folded into this structure.
//
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     string `json:"error"`
}

func (o *APIError) ErrorCode() int {
	return o.Code
}

func (o *APIError) ErrorMessage() string {
	if o.Message != "" {
		return o.Message
	}

	return o.Err
}

func (o *APIError) Error() string {
	return fmt.Sprintf(
		"the exchange returned an API error (code: %d, message: %s)",
		o.ErrorCode(), o.ErrorMessage(),
	)
}

//
// populated returns whether or not the structure appears to actually hold an error. This is useful
// when determining whether or not the deserialized response payload was actually an error that fit
// into the structure's model or not.
//
func (o *APIError) populated() bool {
	return o != nil && (o.Message != "" || o.Err != "")
}

//
// DecodeError represents an error due to a response body that could not be parsed as JSON.
//
type DecodeError struct {
	cause error
}

func (o *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode the response body as JSON: %s", o.cause)
}

func (o *DecodeError) Unwrap() error {
	return o.cause
}
