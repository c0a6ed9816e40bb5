package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// Error is a non-2xx API response. Detail carries the server-provided
// human-readable message when the error body had one.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api: request failed with status %d", e.StatusCode)
}

func newError(resp *resty.Response) *Error {
	detail := gjson.GetBytes(resp.Body(), "detail").String()
	return &Error{StatusCode: resp.StatusCode(), Detail: detail}
}

// Detail returns the structured server message from err when present,
// otherwise the given fallback.
func Detail(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

// IsAuthError reports whether err is a 401 response. Outside of the explicit
// login and register flows a 401 means the session has expired.
func IsAuthError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
