package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Configuration errors, raised before any network call
var (
	ErrNoEndpoint = errors.New("api endpoint is not configured")
	ErrEmptyPath  = errors.New("path is required for api requests")
)

// Error codes the backend may attach to failures. Matching on the code is the
// primary classification path; status and body text are fallbacks.
const (
	CodeInsufficientFunds = "INSUFFICIENT_FUNDS"
)

// APIError is a non-2xx response normalized into an error. Status and the raw
// body are always set; Code and Message only when the body carried a
// structured error payload.
type APIError struct {
	Status  int
	Body    string
	Code    string
	Message string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Body != "" {
		return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		Status: status,
		Body:   string(body),
	}

	// Structured error payload: {"error": {"code": ..., "message": ...}}
	var structured struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &structured); err == nil && structured.Error.Code != "" {
		apiErr.Code = structured.Error.Code
		apiErr.Message = structured.Error.Message
		return apiErr
	}

	// FastAPI-style payload: {"detail": "..."}
	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
		apiErr.Message = detail.Detail
	}
	return apiErr
}

// AsAPIError unwraps err into an *APIError if one is in the chain
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus reports whether err is an API error with the given HTTP status
func IsStatus(err error, status int) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == status
}

// IsInsufficientFunds classifies a failed purchase. The structured error code
// is authoritative; HTTP 402 and the "not enough gold" body text are the
// documented compatibility fallbacks for backends that predate error codes.
func IsInsufficientFunds(err error) bool {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return false
	}
	if apiErr.Code == CodeInsufficientFunds {
		return true
	}
	if apiErr.Status == http.StatusPaymentRequired {
		return true
	}
	return strings.Contains(strings.ToLower(apiErr.Body), "not enough gold")
}
