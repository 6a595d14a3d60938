package github

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v68/github"
)

// APIErrorDetail represents individual error details from GitHub
type APIErrorDetail struct {
	Resource string `json:"resource"`
	Field    string `json:"field"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// String renders the detail the way GitHub documents validation errors
func (d APIErrorDetail) String() string {
	if d.Message != "" {
		return fmt.Sprintf("%s.%s: %s (%s)", d.Resource, d.Field, d.Message, d.Code)
	}
	return fmt.Sprintf("%s.%s: %s", d.Resource, d.Field, d.Code)
}

// StatusCode returns the HTTP status code carried by a GitHub API error,
// or 0 when err did not come from an API response.
func StatusCode(err error) int {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode
	}
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return rateErr.Response.StatusCode
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return abuseErr.Response.StatusCode
	}
	return 0
}

// IsNotFoundError returns true if the error is a not found error
func IsNotFoundError(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsForbiddenError returns true if the API refused access to the resource
func IsForbiddenError(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

// ErrorDetails extracts the nested errors[] list GitHub attaches to
// validation failures. It returns nil for any other error.
func ErrorDetails(err error) []APIErrorDetail {
	var errResp *github.ErrorResponse
	if !errors.As(err, &errResp) || len(errResp.Errors) == 0 {
		return nil
	}

	details := make([]APIErrorDetail, 0, len(errResp.Errors))
	for _, e := range errResp.Errors {
		details = append(details, APIErrorDetail{
			Resource: e.Resource,
			Field:    e.Field,
			Code:     e.Code,
			Message:  e.Message,
		})
	}
	return details
}
