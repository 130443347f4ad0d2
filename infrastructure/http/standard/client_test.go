package standard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu      sync.Mutex
	entries []map[string]interface{}
	msgs    []string
}

func (l *recordingLogger) record(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, msg)
	l.entries = append(l.entries, fields)
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.record(msg, fields) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.record(msg, fields) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.record(msg, fields) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.record(msg, fields) }

func TestNewStandardHTTPClient(t *testing.T) {
	client := NewStandardHTTPClient(10*time.Second, nil)

	require.NotNil(t, client)
	assert.Equal(t, 10*time.Second, client.client.Timeout)
	assert.Equal(t, http.DefaultTransport, client.client.Transport)
}

func TestNewStandardHTTPClient_ZeroTimeout(t *testing.T) {
	client := NewStandardHTTPClient(0, nil)

	assert.Zero(t, client.client.Timeout)
}

func TestStandardHTTPClient_Get_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10*time.Second, nil)

	resp, err := client.Get(context.Background(), server.URL, nil)
	require.NoError(t, err)
	defer resp.Body().Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "application/json", resp.Header("content-type"))

	body, err := io.ReadAll(resp.Body())
	require.NoError(t, err)
	assert.Equal(t, `{"status":"ok"}`, string(body))
}

func TestStandardHTTPClient_Get_ForwardsHeaders(t *testing.T) {
	var gotKey, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10*time.Second, nil)
	header := http.Header{}
	header.Set("X-Api-Key", "secret")

	resp, err := client.Get(context.Background(), server.URL, header)
	require.NoError(t, err)
	resp.Body().Close()

	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, userAgent, gotUA)
}

func TestStandardHTTPClient_Get_NoRetryOnServerError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10*time.Second, nil)

	resp, err := client.Get(context.Background(), server.URL, nil)
	require.NoError(t, err)
	resp.Body().Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestStandardHTTPClient_Get_ContextCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewStandardHTTPClient(0, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Get(ctx, server.URL, nil)
	assert.Error(t, err)
}

func TestStandardHTTPClient_Get_InvalidURL(t *testing.T) {
	client := NewStandardHTTPClient(time.Second, nil)

	_, err := client.Get(context.Background(), "://bad", nil)
	assert.Error(t, err)
}

func TestLoggingRoundTripper_DoesNotLogCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := NewStandardHTTPClient(time.Second, logger)
	header := http.Header{}
	header.Set("X-Api-Key", "super-secret")

	resp, err := client.Get(context.Background(), server.URL+"/v2/everything?q=india", header)
	require.NoError(t, err)
	resp.Body().Close()

	logger.mu.Lock()
	defer logger.mu.Unlock()
	require.Len(t, logger.msgs, 2)
	assert.Equal(t, "Outgoing HTTP request", logger.msgs[0])
	assert.Equal(t, "Outgoing HTTP response", logger.msgs[1])
	assert.Equal(t, []string{"X-Api-Key"}, logger.entries[0]["redacted"])
	for _, fields := range logger.entries {
		for _, v := range fields {
			if s, ok := v.(string); ok {
				assert.False(t, strings.Contains(s, "super-secret"))
			}
		}
	}
}
