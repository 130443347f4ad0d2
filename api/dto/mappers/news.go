// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Renders articles into cards for page and session responses

package mappers

import (
	"time"

	"newsgrid/api/dto/responses"
	"newsgrid/core/card"
	"newsgrid/core/domain"
	"newsgrid/core/news"
)

// ToPageResponse converts a completed fetch cycle to a PageResponse DTO
func ToPageResponse(result domain.PageResult, loc *time.Location) responses.PageResponse {
	cards := card.FromArticles(result.Articles, loc)
	return responses.PageResponse{
		Page:         result.Page,
		Status:       string(result.Status()),
		Count:        len(cards),
		TotalResults: result.TotalResults(),
		Articles:     cards,
	}
}

// ToSessionResponse converts a controller state snapshot to a SessionResponse DTO
func ToSessionResponse(id string, state news.State, loc *time.Location) responses.SessionResponse {
	return responses.SessionResponse{
		ID:        id,
		Page:      state.Page,
		Loading:   state.Loading,
		Status:    string(state.Status),
		CanGoBack: state.CanGoBack(),
		Articles:  card.FromArticles(state.Articles, loc),
	}
}
