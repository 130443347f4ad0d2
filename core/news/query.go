// ABOUTME: Query composition for the two news searches issued per page
// ABOUTME: Builds search URLs from a term, a language, the page size and the page number

package news

import (
	"net/url"
	"strconv"

	coreerrors "newsgrid/core/errors"
)

const (
	// DefaultEndpoint is the NewsAPI "everything" search endpoint
	DefaultEndpoint = "https://newsapi.org/v2/everything"

	// DefaultPageSize is the number of articles requested per query
	DefaultPageSize = 6
)

// Query describes one of the two searches issued for every page
type Query struct {
	// Name labels the branch in logs, metrics and results
	Name string

	// Term is the free-text search expression
	Term string

	// Language is the ISO-639-1 language filter
	Language string
}

var (
	// DefaultRegionalQuery searches regional-language coverage
	DefaultRegionalQuery = Query{Name: "regional", Term: "india", Language: "hi"}

	// DefaultTopicQuery searches default-language coverage of the topic keywords
	DefaultTopicQuery = Query{Name: "default", Term: "india sports cricket hockey", Language: "en"}
)

// BuildURL composes the search URL for a query and page.
// The credential is deliberately not part of the URL.
func BuildURL(endpoint string, q Query, pageSize, page int) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", &coreerrors.ValidationError{Field: "endpoint", Message: "invalid URL format"}
	}
	if page < 1 {
		return "", &coreerrors.ValidationError{Field: "page", Message: "must be at least 1"}
	}
	if pageSize < 1 {
		return "", &coreerrors.ValidationError{Field: "pageSize", Message: "must be at least 1"}
	}

	values := u.Query()
	values.Set("q", q.Term)
	values.Set("language", q.Language)
	values.Set("pageSize", strconv.Itoa(pageSize))
	values.Set("page", strconv.Itoa(page))
	u.RawQuery = values.Encode()

	return u.String(), nil
}
