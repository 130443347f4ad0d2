// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"newsgrid/core/domain"
	"newsgrid/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if apiErr, ok := errors.AsExternalAPI(err); ok {
		switch {
		case apiErr.StatusCode >= 500:
			return huma.Error503ServiceUnavailable("External service error", err)
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return huma.Error429TooManyRequests("Rate limited by external service")
		case apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden:
			return huma.Error502BadGateway("External service rejected the server credential")
		case apiErr.StatusCode >= 400:
			return huma.Error400BadRequest("External service request error", err)
		default:
			return huma.Error500InternalServerError("Unexpected external service response", err)
		}
	}

	if stderrors.Is(err, context.DeadlineExceeded) {
		return huma.Error504GatewayTimeout("External service timed out")
	}

	return huma.Error500InternalServerError("Internal server error", err)
}

// pageFailure returns the error that made a page fail, or nil
func pageFailure(result domain.PageResult) error {
	if result.Status() != domain.StatusFailed {
		return nil
	}
	if result.Err != nil {
		return result.Err
	}
	if result.Regional.Err != nil {
		return result.Regional.Err
	}
	return result.Default.Err
}

// toPageError maps a failed page to an HTTP error. Branch failures without a
// typed cause are transport failures and map to 502.
func toPageError(result domain.PageResult) error {
	err := pageFailure(result)
	if err == nil {
		return nil
	}
	if result.Err == nil && !errors.IsExternalAPI(err) && !stderrors.Is(err, context.DeadlineExceeded) {
		return huma.Error502BadGateway("News service unreachable", err)
	}
	return toHumaError(err)
}
