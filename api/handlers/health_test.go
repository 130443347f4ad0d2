package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsgrid/api/dto/responses"
	"newsgrid/pkg/featureflags"
)

type fixedCounter int

func (c fixedCounter) Count() int { return int(c) }

func TestHealthHandler(t *testing.T) {
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.SessionsEnabled: true,
		featureflags.MetricsEnabled:  false,
	})
	_, api := humatest.New(t)
	NewHealthHandler(fixedCounter(4), flags).RegisterRoutes(api)

	resp := api.Get("/health")

	require.Equal(t, http.StatusOK, resp.Code)
	var body responses.HealthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 4, body.Sessions)
	assert.Equal(t, "00:00", body.Uptime)
	assert.Equal(t, map[string]bool{"sessions_enabled": true, "metrics_enabled": false}, body.Features)
}

func TestHealthHandler_NoSessions(t *testing.T) {
	_, api := humatest.New(t)
	NewHealthHandler(nil, nil).RegisterRoutes(api)

	resp := api.Get("/health")

	require.Equal(t, http.StatusOK, resp.Code)
	var body responses.HealthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Zero(t, body.Sessions)
	assert.Empty(t, body.Features)
}
