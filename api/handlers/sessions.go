// ABOUTME: Session handlers exposing the stateful news controller over HTTP
// ABOUTME: Each session owns its page, loading flag and merged results

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"newsgrid/api/dto/mappers"
	"newsgrid/api/dto/responses"
	"newsgrid/core/news"
)

// DefaultWaitLimit bounds how long a request with wait=true blocks
const DefaultWaitLimit = 10 * time.Second

// SessionStore keeps live controllers by id
type SessionStore interface {
	Add(c *news.Controller) string
	Get(id string) (*news.Controller, error)
	Delete(id string) error
}

// ControllerFactory builds an unstarted controller for a new session
type ControllerFactory func() *news.Controller

// SessionHandler handles session-related HTTP requests
type SessionHandler struct {
	store         SessionStore
	newController ControllerFactory
	loc           *time.Location
	waitLimit     time.Duration
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(store SessionStore, factory ControllerFactory, loc *time.Location) *SessionHandler {
	return &SessionHandler{
		store:         store,
		newController: factory,
		loc:           loc,
		waitLimit:     DefaultWaitLimit,
	}
}

// RegisterRoutes registers all session routes
func (h *SessionHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "createSession",
		Method:        http.MethodPost,
		Path:          "/v1/sessions",
		Summary:       "Start a browsing session",
		Description:   "Creates a session at page 1 and starts its first fetch cycle",
		Tags:          []string{"Sessions"},
		DefaultStatus: http.StatusCreated,
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "getSession",
		Method:      http.MethodGet,
		Path:        "/v1/sessions/{id}",
		Summary:     "Get session state",
		Tags:        []string{"Sessions"},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "nextPage",
		Method:      http.MethodPost,
		Path:        "/v1/sessions/{id}/next",
		Summary:     "Advance to the next page",
		Description: "Increments the page and starts a fetch cycle for it. Any cycle still in flight is abandoned.",
		Tags:        []string{"Sessions"},
	}, h.Next)

	huma.Register(api, huma.Operation{
		OperationID: "previousPage",
		Method:      http.MethodPost,
		Path:        "/v1/sessions/{id}/previous",
		Summary:     "Go back one page",
		Description: "Decrements the page and starts a fetch cycle for it. On page 1 nothing changes and no request is made.",
		Tags:        []string{"Sessions"},
	}, h.Previous)

	huma.Register(api, huma.Operation{
		OperationID:   "deleteSession",
		Method:        http.MethodDelete,
		Path:          "/v1/sessions/{id}",
		Summary:       "End a browsing session",
		Tags:          []string{"Sessions"},
		DefaultStatus: http.StatusNoContent,
	}, h.Delete)
}

// CreateSessionInput defines the input for the Create operation
type CreateSessionInput struct {
	Wait bool `query:"wait" doc:"Block until the first fetch cycle settles"`
}

// SessionInput addresses one session
type SessionInput struct {
	ID   string `path:"id" doc:"Session identifier"`
	Wait bool   `query:"wait" doc:"Block until the current fetch cycle settles"`
}

// SessionOutput carries the session state
type SessionOutput struct {
	Body responses.SessionResponse
}

// Create handles the POST /v1/sessions endpoint
func (h *SessionHandler) Create(ctx context.Context, input *CreateSessionInput) (*SessionOutput, error) {
	c := h.newController()
	// Cycles outlive the request; the store closes the controller on eviction.
	c.Start(context.Background())
	id := h.store.Add(c)

	return h.respond(ctx, id, c, c.State(), input.Wait), nil
}

// Get handles the GET /v1/sessions/{id} endpoint
func (h *SessionHandler) Get(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	c, err := h.store.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return h.respond(ctx, input.ID, c, c.State(), input.Wait), nil
}

// Next handles the POST /v1/sessions/{id}/next endpoint
func (h *SessionHandler) Next(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	c, err := h.store.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return h.respond(ctx, input.ID, c, c.Next(), input.Wait), nil
}

// Previous handles the POST /v1/sessions/{id}/previous endpoint
func (h *SessionHandler) Previous(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	c, err := h.store.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	state, _ := c.Previous()
	return h.respond(ctx, input.ID, c, state, input.Wait), nil
}

// Delete handles the DELETE /v1/sessions/{id} endpoint
func (h *SessionHandler) Delete(ctx context.Context, input *SessionInput) (*struct{}, error) {
	if err := h.store.Delete(input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return nil, nil
}

func (h *SessionHandler) respond(ctx context.Context, id string, c *news.Controller, state news.State, wait bool) *SessionOutput {
	if wait {
		state = waitSettled(ctx, c, h.waitLimit)
	}
	return &SessionOutput{Body: mappers.ToSessionResponse(id, state, h.loc)}
}

// waitSettled blocks until the controller is not loading, the limit passes
// or ctx ends, and returns the latest state.
func waitSettled(ctx context.Context, c *news.Controller, limit time.Duration) news.State {
	updates, unsubscribe := c.Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithTimeout(ctx, limit)
	defer cancel()

	for {
		select {
		case s, ok := <-updates:
			if !ok {
				return c.State()
			}
			if !s.Loading {
				return s
			}
		case <-ctx.Done():
			return c.State()
		}
	}
}
