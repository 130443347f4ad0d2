// ABOUTME: News service issues the regional and default queries for a page concurrently
// ABOUTME: Substitutes empty results for failed branches and merges the survivors

package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"newsgrid/core/domain"
	coreerrors "newsgrid/core/errors"
	"newsgrid/core/interfaces"

	"golang.org/x/sync/errgroup"
)

const (
	apiName      = "newsapi"
	apiKeyHeader = "X-Api-Key"

	// errorBodyLimit bounds how much of a failed response is read for its message
	errorBodyLimit = 64 << 10
)

// Options configures the two searches
type Options struct {
	// Endpoint is the search endpoint URL
	Endpoint string

	// APIKey is the credential sent with every request
	APIKey string

	// PageSize is the number of articles requested per query
	PageSize int

	// Regional is the regional-language query
	Regional Query

	// Default is the default-language topic query
	Default Query
}

// WithDefaults fills unset options
func (o Options) WithDefaults() Options {
	if o.Endpoint == "" {
		o.Endpoint = DefaultEndpoint
	}
	if o.PageSize < 1 {
		o.PageSize = DefaultPageSize
	}
	if o.Regional.Term == "" {
		o.Regional = DefaultRegionalQuery
	}
	if o.Regional.Name == "" {
		o.Regional.Name = DefaultRegionalQuery.Name
	}
	if o.Default.Term == "" {
		o.Default = DefaultTopicQuery
	}
	if o.Default.Name == "" {
		o.Default.Name = DefaultTopicQuery.Name
	}
	return o
}

// searchResponse is the search API envelope. Error responses reuse it with
// status "error" plus code and message.
type searchResponse struct {
	Status       string           `json:"status"`
	TotalResults int              `json:"totalResults"`
	Articles     []domain.Article `json:"articles"`
	Code         string           `json:"code"`
	Message      string           `json:"message"`
}

// panicError marks a branch that blew up instead of failing normally
type panicError struct {
	value interface{}
}

func (e *panicError) Error() string {
	return fmt.Sprintf("fetch panicked: %v", e.value)
}

// Service fetches and merges one page of news
type Service struct {
	deps interfaces.Dependencies
	opts Options
}

// NewService creates a new news service instance
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	return &Service{
		deps: deps,
		opts: opts.WithDefaults(),
	}
}

// FetchPage runs both queries for page concurrently and joins on both before
// merging. A failed branch contributes no articles and never affects the other.
func (s *Service) FetchPage(ctx context.Context, page int) domain.PageResult {
	start := time.Now()
	result := domain.PageResult{Page: page}

	var g errgroup.Group
	g.Go(func() error {
		result.Regional = s.safeFetchBranch(ctx, s.opts.Regional, page)
		return nil
	})
	g.Go(func() error {
		result.Default = s.safeFetchBranch(ctx, s.opts.Default, page)
		return nil
	})
	_ = g.Wait()

	for _, branch := range []*domain.BranchResult{&result.Regional, &result.Default} {
		var pe *panicError
		if errors.As(branch.Err, &pe) {
			result.Err = branch.Err
		}
	}

	if result.Err != nil {
		result.Articles = []domain.Article{}
	} else {
		result.Articles = domain.MergeArticles(result.Regional.Articles, result.Default.Articles)
	}

	status := result.Status()
	s.metrics().ObserveCycle(string(status), time.Since(start))
	s.logger().Info("Fetch cycle completed", map[string]interface{}{
		"page":              page,
		"status":            string(status),
		"articles":          len(result.Articles),
		"regional_articles": len(result.Regional.Articles),
		"default_articles":  len(result.Default.Articles),
		"duration_ms":       time.Since(start).Milliseconds(),
	})

	return result
}

// safeFetchBranch runs FetchBranch and turns a panic into a branch error
func (s *Service) safeFetchBranch(ctx context.Context, q Query, page int) (br domain.BranchResult) {
	defer func() {
		if r := recover(); r != nil {
			br = domain.BranchResult{
				Name:     q.Name,
				Query:    q.Term,
				Language: q.Language,
				Articles: []domain.Article{},
				Err:      &panicError{value: r},
			}
			s.logger().Error("Branch fetch panicked", map[string]interface{}{
				"branch": q.Name,
				"page":   page,
				"panic":  fmt.Sprint(r),
			})
		}
	}()
	return s.FetchBranch(ctx, q, page)
}

// FetchBranch runs one query. Any failure yields an empty article array
// together with the error that caused it.
func (s *Service) FetchBranch(ctx context.Context, q Query, page int) domain.BranchResult {
	br := domain.BranchResult{
		Name:     q.Name,
		Query:    q.Term,
		Language: q.Language,
		Articles: []domain.Article{},
	}

	articles, total, err := s.requestArticles(ctx, q, page)
	if err != nil {
		br.Err = coreerrors.WrapError(err, q.Name+" branch")
		s.metrics().ObserveBranch(q.Name, "error", 0)
		s.logger().Warn("Branch request failed, substituting empty results", map[string]interface{}{
			"branch":   q.Name,
			"language": q.Language,
			"page":     page,
			"error":    err.Error(),
		})
		return br
	}

	br.Articles = articles
	br.TotalResults = total
	s.metrics().ObserveBranch(q.Name, "ok", len(articles))
	return br
}

func (s *Service) requestArticles(ctx context.Context, q Query, page int) ([]domain.Article, int, error) {
	if s.deps.HTTPClient == nil {
		return nil, 0, errors.New("HTTP client not configured")
	}

	searchURL, err := BuildURL(s.opts.Endpoint, q, s.opts.PageSize, page)
	if err != nil {
		return nil, 0, err
	}

	header := http.Header{}
	header.Set("Accept", "application/json")
	if s.opts.APIKey != "" {
		header.Set(apiKeyHeader, s.opts.APIKey)
	}

	resp, err := s.deps.HTTPClient.Get(ctx, searchURL, header)
	if err != nil {
		return nil, 0, coreerrors.WrapError(err, "request failed")
	}
	defer resp.Body().Close()

	var payload searchResponse
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		// Best effort: the API usually explains itself in the body
		_ = json.NewDecoder(io.LimitReader(resp.Body(), errorBodyLimit)).Decode(&payload)
		message := payload.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode())
		}
		return nil, 0, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Code:       payload.Code,
			Message:    message,
			API:        apiName,
		}
	}

	if err := json.NewDecoder(resp.Body()).Decode(&payload); err != nil {
		return nil, 0, coreerrors.WrapError(err, "decode response")
	}

	if payload.Status == "error" {
		return nil, 0, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Code:       payload.Code,
			Message:    payload.Message,
			API:        apiName,
		}
	}

	if payload.Articles == nil {
		payload.Articles = []domain.Article{}
	}

	return payload.Articles, payload.TotalResults, nil
}

func (s *Service) logger() interfaces.Logger {
	if s.deps.Logger == nil {
		return nopLogger{}
	}
	return s.deps.Logger
}

func (s *Service) metrics() interfaces.Metrics {
	if s.deps.Metrics == nil {
		return interfaces.NopMetrics{}
	}
	return s.deps.Metrics
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
