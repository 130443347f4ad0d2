// ABOUTME: News page handler for the Huma API
// ABOUTME: Runs one fetch-merge cycle per request and returns rendered cards

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

// NewsHandler serves stateless page fetches
type NewsHandler struct {
	fetcher news.PageFetcher
	loc     *time.Location
}

// NewNewsHandler creates a new news handler. loc selects the time zone for
// publish dates; nil means local time.
func NewNewsHandler(fetcher news.PageFetcher, loc *time.Location) *NewsHandler {
	return &NewsHandler{
		fetcher: fetcher,
		loc:     loc,
	}
}

// RegisterRoutes registers all news routes
func (h *NewsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getNewsPage",
		Method:      http.MethodGet,
		Path:        "/v1/news",
		Summary:     "Fetch one page of merged news",
		Description: "Queries regional and default news concurrently for the page, keeps articles that have an image, description and link, and returns regional results first",
		Tags:        []string{"News"},
	}, h.GetPage)
}

// NewsPageInput defines the input for the GetPage operation
type NewsPageInput struct {
	Page int `query:"page" minimum:"1" default:"1" doc:"Page number (1-based, no upper bound)"`
}

// NewsPageOutput defines the output for the GetPage operation
type NewsPageOutput struct {
	Body responses.PageResponse
}

// GetPage handles the GET /v1/news endpoint. A page where neither query
// could be answered is reported as an upstream error; a page with no
// displayable articles is a successful empty response.
func (h *NewsHandler) GetPage(ctx context.Context, input *NewsPageInput) (*NewsPageOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	result := h.fetcher.FetchPage(ctx, page)
	if err := toPageError(result); err != nil {
		return nil, err
	}

	return &NewsPageOutput{Body: mappers.ToPageResponse(result, h.loc)}, nil
}
