package news

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"newsgrid/core/domain"
	"newsgrid/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string, header http.Header) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string, header http.Header) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url, header)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	debugFunc func(msg string, fields map[string]interface{})
	infoFunc  func(msg string, fields map[string]interface{})
	warnFunc  func(msg string, fields map[string]interface{})
	errorFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	if m.debugFunc != nil {
		m.debugFunc(msg, fields)
	}
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	if m.infoFunc != nil {
		m.infoFunc(msg, fields)
	}
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if m.errorFunc != nil {
		m.errorFunc(msg, fields)
	}
}

// mockMetrics records observations
type mockMetrics struct {
	mu         sync.Mutex
	branches   []string
	cycles     []string
	superseded int
}

func (m *mockMetrics) ObserveBranch(branch, outcome string, articles int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.branches = append(m.branches, branch+":"+outcome)
}

func (m *mockMetrics) ObserveCycle(status string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cycles = append(m.cycles, status)
}

func (m *mockMetrics) CycleSuperseded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.superseded++
}

func (m *mockMetrics) supersededCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.superseded
}

// mockFetcher is a mock implementation of PageFetcher
type mockFetcher struct {
	fetchFunc func(ctx context.Context, page int) domain.PageResult
}

func (m *mockFetcher) FetchPage(ctx context.Context, page int) domain.PageResult {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, page)
	}
	return domain.PageResult{Page: page, Articles: []domain.Article{}}
}
