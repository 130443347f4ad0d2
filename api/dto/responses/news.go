// ABOUTME: Response DTOs for news and session endpoints
// ABOUTME: Carries rendered cards so clients never see raw upstream fields

package responses

import "newsgrid/core/card"

// PageResponse is one merged page of cards
type PageResponse struct {
	Page         int         `json:"page" doc:"Page number that was fetched"`
	Status       string      `json:"status" enum:"loading,empty,failed,loaded" doc:"Outcome of the fetch cycle"`
	Count        int         `json:"count" doc:"Number of cards"`
	TotalResults int         `json:"total_results" doc:"Larger of the two upstream result totals"`
	Articles     []card.Card `json:"articles" doc:"Regional results first, then default results"`
}

// SessionResponse is the state of a browsing session
type SessionResponse struct {
	ID        string      `json:"id" doc:"Session identifier"`
	Page      int         `json:"page" doc:"Current page number"`
	Loading   bool        `json:"loading" doc:"True while a fetch cycle is in flight"`
	Status    string      `json:"status" enum:"loading,empty,failed,loaded" doc:"Outcome of the last fetch cycle"`
	CanGoBack bool        `json:"can_go_back" doc:"False on page 1, where previous is a no-op"`
	Articles  []card.Card `json:"articles" doc:"Cards for the current page"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status   string          `json:"status" doc:"Always 'ok' when the server answers"`
	Uptime   string          `json:"uptime" doc:"Time since start as HH:MM:SS or MM:SS"`
	Sessions int             `json:"sessions" doc:"Live browsing sessions"`
	Features map[string]bool `json:"features" doc:"Feature flag states"`
}
