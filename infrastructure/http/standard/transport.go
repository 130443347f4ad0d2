package standard

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"newsgrid/core/interfaces"
)

// redactedHeaders are never written to logs
var redactedHeaders = []string{"X-Api-Key", "Authorization"}

// LoggingRoundTripper implements http.RoundTripper with logging
type LoggingRoundTripper struct {
	Transport http.RoundTripper
	Logger    interfaces.Logger
}

// RoundTrip logs outgoing HTTP requests. The URL is logged without
// credentials, which travel in headers only.
func (t *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	requestID := req.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
	}

	t.Logger.Debug("Outgoing HTTP request", map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"url":        req.URL.Redacted(),
		"host":       req.URL.Host,
		"redacted":   presentHeaders(req.Header, redactedHeaders),
	})

	resp, err := t.Transport.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		t.Logger.Warn("Outgoing HTTP request failed", map[string]interface{}{
			"request_id": requestID,
			"method":     req.Method,
			"url":        req.URL.Redacted(),
			"duration":   duration.String(),
			"error":      err.Error(),
		})
		return nil, err
	}

	t.Logger.Debug("Outgoing HTTP response", map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"url":        req.URL.Redacted(),
		"status":     resp.StatusCode,
		"duration":   duration.String(),
	})

	return resp, nil
}

func presentHeaders(h http.Header, names []string) []string {
	present := []string{}
	for _, name := range names {
		if h.Get(name) != "" {
			present = append(present, name)
		}
	}
	return present
}
