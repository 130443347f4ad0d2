package handlers

import (
	"context"
	"fmt"
	"sync"

	"newsgrid/core/domain"
	"newsgrid/core/errors"
	"newsgrid/core/news"
)

// mockFetcher is a mock implementation of news.PageFetcher
type mockFetcher struct {
	mu        sync.Mutex
	pages     []int
	fetchFunc func(ctx context.Context, page int) domain.PageResult
}

func (m *mockFetcher) FetchPage(ctx context.Context, page int) domain.PageResult {
	m.mu.Lock()
	m.pages = append(m.pages, page)
	m.mu.Unlock()

	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, page)
	}
	return domain.PageResult{
		Page:     page,
		Regional: domain.BranchResult{Name: "regional", TotalResults: 12},
		Default:  domain.BranchResult{Name: "default", TotalResults: 30},
		Articles: []domain.Article{testArticle(fmt.Sprintf("page-%d", page))},
	}
}

func (m *mockFetcher) requested() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.pages...)
}

// mockStore is an in-memory SessionStore
type mockStore struct {
	mu       sync.Mutex
	next     int
	sessions map[string]*news.Controller
}

func newMockStore() *mockStore {
	return &mockStore{sessions: make(map[string]*news.Controller)}
}

func (m *mockStore) Add(c *news.Controller) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	id := fmt.Sprintf("s%d", m.next)
	m.sessions[id] = c
	return id
}

func (m *mockStore) Get(id string) (*news.Controller, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.sessions[id]
	if !ok {
		return nil, &errors.NotFoundError{Resource: "session", ID: id}
	}
	return c, nil
}

func (m *mockStore) Delete(id string) error {
	m.mu.Lock()
	c, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return &errors.NotFoundError{Resource: "session", ID: id}
	}
	c.Close()
	return nil
}

func (m *mockStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *mockStore) closeAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, c := range m.sessions {
		c.Close()
		delete(m.sessions, id)
	}
}

func testArticle(title string) domain.Article {
	return domain.Article{
		Source:      domain.Source{Name: "The Hindu"},
		Author:      "Staff",
		Title:       title,
		Description: "A description",
		URL:         "https://example.com/" + title,
		URLToImage:  "https://example.com/" + title + ".jpg",
		PublishedAt: "2024-03-01T10:30:00Z",
	}
}
