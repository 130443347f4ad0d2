// ABOUTME: Article domain model represents one news item returned by the search API
// ABOUTME: Provides the display-eligibility predicate and the regional/default merge

package domain

// Source identifies the publisher of an article
type Source struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Article represents a news item as delivered by the search API
type Article struct {
	// Source is the publishing outlet; Name may be empty
	Source Source `json:"source"`

	// Author may be empty when the API does not know it
	Author string `json:"author"`

	// Title is the article headline
	Title string `json:"title"`

	// Description is the short summary shown on the card
	Description string `json:"description"`

	// URL is the canonical article address
	URL string `json:"url"`

	// URLToImage is the lead image address
	URLToImage string `json:"urlToImage"`

	// PublishedAt is the raw ISO-8601 timestamp; it is parsed at render time
	PublishedAt string `json:"publishedAt"`

	// Content is the truncated body the API returns, unused by the card
	Content string `json:"content,omitempty"`
}

// IsDisplayable reports whether the article may reach presentation.
// An article qualifies only with a non-empty image URL, description and canonical URL.
func (a *Article) IsDisplayable() bool {
	return a.URLToImage != "" && a.Description != "" && a.URL != ""
}

// FilterDisplayable returns the displayable articles in their original order.
// The result is never nil.
func FilterDisplayable(articles []Article) []Article {
	out := make([]Article, 0, len(articles))
	for i := range articles {
		if articles[i].IsDisplayable() {
			out = append(out, articles[i])
		}
	}
	return out
}

// MergeArticles concatenates regional results followed by default-language
// results, each in delivered order, and drops articles that are not displayable.
func MergeArticles(regional, def []Article) []Article {
	all := make([]Article, 0, len(regional)+len(def))
	all = append(all, regional...)
	all = append(all, def...)
	return FilterDisplayable(all)
}
