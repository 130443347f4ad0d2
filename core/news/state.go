// ABOUTME: Pagination and result state for the news grid as a value type
// ABOUTME: Pure transition functions drive paging and fetch-cycle bookkeeping

package news

import "newsgrid/core/domain"

// State is the owned record of the news grid: the current page, the merged
// result list and whether a fetch cycle is in flight.
type State struct {
	// Page is the current page number, never below 1
	Page int

	// Articles is the merged list for Page; replaced on every cycle
	Articles []domain.Article

	// Loading is true from cycle start until both branches have settled
	Loading bool

	// Status is the tri-state outcome of the last completed cycle
	Status domain.Status

	// TotalResults is the larger branch total reported for Page
	TotalResults int

	// Generation identifies the current fetch cycle
	Generation uint64
}

// NewState returns the state before the first cycle: page 1, loading
func NewState() State {
	return State{
		Page:     1,
		Articles: []domain.Article{},
		Loading:  true,
		Status:   domain.StatusLoading,
	}
}

// Next advances one page. There is no upper bound.
func (s State) Next() State {
	s.Page++
	return s
}

// Previous goes back one page. At page 1 it is a no-op and reports false.
func (s State) Previous() (State, bool) {
	if s.Page <= 1 {
		return s, false
	}
	s.Page--
	return s, true
}

// CanGoBack reports whether Previous would change the page
func (s State) CanGoBack() bool {
	return s.Page > 1
}

// BeginCycle starts a new fetch cycle for the current page. Any cycle still
// in flight becomes stale.
func (s State) BeginCycle() State {
	s.Generation++
	s.Loading = true
	s.Status = domain.StatusLoading
	s.Articles = []domain.Article{}
	s.TotalResults = 0
	return s
}

// CompleteCycle commits the result of cycle gen. Results from a superseded
// cycle are rejected and the state is returned unchanged with false.
func (s State) CompleteCycle(gen uint64, result domain.PageResult) (State, bool) {
	if gen != s.Generation || !s.Loading {
		return s, false
	}

	s.Loading = false
	s.Status = result.Status()
	s.TotalResults = result.TotalResults()
	s.Articles = result.Articles
	if s.Articles == nil || s.Status == domain.StatusFailed {
		s.Articles = []domain.Article{}
	}
	return s, true
}
