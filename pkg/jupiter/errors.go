package jupiter

import (
	"encoding/json"
	"fmt"
)

// APIError is an error payload reported by the Jupiter API itself, either as
// a non-2xx status or in-band inside an otherwise well-formed response body.
type APIError struct {
	StatusCode int    // HTTP status, 0 when the error arrived in-band
	Code       string // machine-readable errorCode, may be empty
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("jupiter api error %s: %s", e.Code, e.Message)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("jupiter api returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("jupiter api error: %s", e.Message)
}

// DecodeError is a failure to decode a blockchain-specific field: a malformed
// base58 public key, a bad base64 instruction blob, a bincode transaction
// that does not deserialize, or a route-map index out of range.
type DecodeError struct {
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// errorEnvelope matches the error shape the API emits on failures.
type errorEnvelope struct {
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"error"`
}

// apiErrorFromBody extracts an APIError from a response body if the body
// carries the error envelope. Returns nil when the body reports no error.
func apiErrorFromBody(statusCode int, body []byte) *APIError {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil
	}
	if env.ErrorMessage == "" && env.ErrorCode == "" {
		return nil
	}
	return &APIError{
		StatusCode: statusCode,
		Code:       env.ErrorCode,
		Message:    env.ErrorMessage,
	}
}
