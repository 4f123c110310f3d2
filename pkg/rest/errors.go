package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// APIError is a non-2xx response from the remote API. Callers can use
// errors.As to extract it:
//
//	var apiErr *rest.APIError
//	if errors.As(err, &apiErr) {
//	    if apiErr.Code == rest.ErrCodeInvalidFormBody { ... }
//	}
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"-"`
	// Code is the service's numeric error code (e.g. 50035).
	Code int `json:"code"`
	// Message is the human-readable error description from the server.
	Message string `json:"message"`
	// Errors is the nested per-field error tree, if any.
	Errors map[string]any `json:"errors,omitempty"`
	// Body is the raw response body when it was not a JSON error object.
	Body string `json:"-"`
}

// Well-known service error codes.
const (
	ErrCodeUnknownChannel     = 10003
	ErrCodeUnknownGuild       = 10004
	ErrCodeUnknownEmoji       = 10014
	ErrCodeMaxInvites         = 30016
	ErrCodeUserNotInVoice     = 40032
	ErrCodeMissingAccess      = 50001
	ErrCodeMissingPermissions = 50013
	ErrCodeInvalidFormBody    = 50035
)

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	if err := json.Unmarshal(body, apiErr); err != nil || (apiErr.Code == 0 && apiErr.Message == "") {
		apiErr.Code = 0
		apiErr.Message = ""
		apiErr.Errors = nil
		apiErr.Body = strings.TrimSpace(string(body))
	}
	return apiErr
}

func (e *APIError) Error() string {
	if e.Message == "" {
		text := e.Body
		if text == "" {
			text = http.StatusText(e.StatusCode)
		}
		return fmt.Sprintf("rest: status %d: %s", e.StatusCode, text)
	}

	msg := fmt.Sprintf("rest: %s (status %d, code %d)", e.Message, e.StatusCode, e.Code)
	fields := e.FieldErrors()
	if len(fields) == 0 {
		return msg
	}

	paths := make([]string, 0, len(fields))
	for path := range fields {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	parts := make([]string, 0, len(paths))
	for _, path := range paths {
		parts = append(parts, path+": "+strings.Join(fields[path], "; "))
	}
	return msg + ": " + strings.Join(parts, ", ")
}

// Temporary reports whether the failure is on the server side and the same
// request may succeed later.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= 500
}

// FieldError is one entry of a field's "_errors" list.
type FieldError struct {
	Code    string `mapstructure:"code"`
	Message string `mapstructure:"message"`
}

// FieldErrors flattens the nested error tree into dotted field paths, for
// example "name" or "activities.0.platform", mapped to their messages.
func (e *APIError) FieldErrors() map[string][]string {
	out := make(map[string][]string)
	collectFieldErrors("", e.Errors, out)
	return out
}

func collectFieldErrors(prefix string, node map[string]any, out map[string][]string) {
	for key, value := range node {
		if key == "_errors" {
			var leaf []FieldError
			if err := mapstructure.Decode(value, &leaf); err != nil {
				continue
			}
			for _, fe := range leaf {
				out[prefix] = append(out[prefix], fe.Message)
			}
			continue
		}

		child, ok := value.(map[string]any)
		if !ok {
			continue
		}
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		collectFieldErrors(path, child, out)
	}
}

// IsAPIError checks whether err is an *APIError with the given service code.
func IsAPIError(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}

// StatusCode returns the HTTP status of an *APIError in err's chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
