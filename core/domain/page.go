// ABOUTME: Page result domain model for one fetch cycle over both queries
// ABOUTME: Distinguishes loading, empty, failed and loaded outcomes

package domain

// Status is the observable outcome of a page
type Status string

const (
	// StatusLoading means a fetch cycle is in flight
	StatusLoading Status = "loading"

	// StatusEmpty means the API was reachable but no displayable article survived
	StatusEmpty Status = "empty"

	// StatusFailed means no branch produced a usable response
	StatusFailed Status = "failed"

	// StatusLoaded means at least one displayable article is available
	StatusLoaded Status = "loaded"
)

// BranchResult is the outcome of one of the two queries for a page
type BranchResult struct {
	// Name labels the branch ("regional" or "default")
	Name string

	// Query is the free-text search term
	Query string

	// Language is the language code the branch is filtered to
	Language string

	// Articles holds the decoded articles; empty when Err is set
	Articles []Article

	// TotalResults is what the API reports for the query
	TotalResults int

	// Err is the failure substituted by an empty article array
	Err error
}

// Failed reports whether the branch fell back to an empty array
func (b *BranchResult) Failed() bool {
	return b.Err != nil
}

// PageResult is the joined outcome of both branches for a page
type PageResult struct {
	// Page is the page number the cycle fetched
	Page int

	// Regional is the regional-language branch
	Regional BranchResult

	// Default is the default-language branch
	Default BranchResult

	// Articles is the merged, filtered list
	Articles []Article

	// Err is set when the cycle itself failed unexpectedly
	Err error
}

// Status derives the page outcome
func (r *PageResult) Status() Status {
	if r.Err != nil || (r.Regional.Failed() && r.Default.Failed()) {
		return StatusFailed
	}
	if len(r.Articles) == 0 {
		return StatusEmpty
	}
	return StatusLoaded
}

// TotalResults returns the larger of the two branch totals
func (r *PageResult) TotalResults() int {
	if r.Regional.TotalResults > r.Default.TotalResults {
		return r.Regional.TotalResults
	}
	return r.Default.TotalResults
}
