package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"newsgrid/api/dto/responses"
	"newsgrid/pkg/featureflags"
	"newsgrid/pkg/utils/duration"
)

// SessionCounter reports live sessions
type SessionCounter interface {
	Count() int
}

// HealthHandler answers liveness probes
type HealthHandler struct {
	started  time.Time
	sessions SessionCounter
	flags    featureflags.Manager
}

// NewHealthHandler creates a health handler. sessions may be nil when the
// session surface is disabled.
func NewHealthHandler(sessions SessionCounter, flags featureflags.Manager) *HealthHandler {
	return &HealthHandler{
		started:  time.Now(),
		sessions: sessions,
		flags:    flags,
	}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Liveness probe",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	resp := responses.HealthResponse{
		Status:   "ok",
		Uptime:   duration.Format(time.Since(h.started)),
		Features: map[string]bool{},
	}
	if h.sessions != nil {
		resp.Sessions = h.sessions.Count()
	}
	if h.flags != nil {
		for flag, on := range h.flags.GetAllFlags() {
			resp.Features[string(flag)] = on
		}
	}
	return &HealthOutput{Body: resp}, nil
}
