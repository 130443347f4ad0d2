// ABOUTME: Article presentation unit maps one article to a display card
// ABOUTME: Applies literal truncation and default substitution at render time

package card

import (
	"strings"
	"time"

	"newsgrid/core/domain"
	timeutil "newsgrid/pkg/utils/time"
)

const (
	// DescriptionLimit is the number of characters kept from a description
	DescriptionLimit = 150

	// Ellipsis is always appended to the description
	Ellipsis = "..."

	// UnknownAuthor replaces a missing author
	UnknownAuthor = "Unknown"

	// UnknownSource replaces a missing source name
	UnknownSource = "N/A"

	// InvalidDate is shown when publishedAt cannot be parsed
	InvalidDate = "Invalid Date"

	// PublishedLayout renders a local date and time such as "3/1/2024, 4:00:00 PM"
	PublishedLayout = "1/2/2006, 3:04:05 PM"
)

// Link opens the canonical article in a new browsing context that gets no
// reference back to the page that opened it.
type Link struct {
	Href   string `json:"href"`
	Target string `json:"target"`
	Rel    string `json:"rel"`
	Label  string `json:"label"`
}

// Card is the fully resolved view of one article
type Card struct {
	ImageURL    string `json:"image_url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Attribution string `json:"attribution"`
	Published   string `json:"published"`
	Link        Link   `json:"link"`
}

// FromArticle renders a single article. loc selects the display time zone;
// nil means time.Local.
func FromArticle(a domain.Article, loc *time.Location) Card {
	return Card{
		ImageURL:    a.URLToImage,
		Title:       a.Title,
		Description: TruncateDescription(a.Description),
		Attribution: Attribution(a.Author, a.Source.Name),
		Published:   FormatPublished(a.PublishedAt, loc),
		Link:        ExternalLink(a.URL),
	}
}

// FromArticles renders a list, preserving order
func FromArticles(articles []domain.Article, loc *time.Location) []Card {
	cards := make([]Card, 0, len(articles))
	for _, a := range articles {
		cards = append(cards, FromArticle(a, loc))
	}
	return cards
}

// TruncateDescription keeps the first DescriptionLimit characters and appends
// the ellipsis whether or not anything was cut.
func TruncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) > DescriptionLimit {
		runes = runes[:DescriptionLimit]
	}
	return string(runes) + Ellipsis
}

// Attribution renders "By {author} | Source: {source}" with defaults
func Attribution(author, source string) string {
	if author == "" {
		author = UnknownAuthor
	}
	if source == "" {
		source = UnknownSource
	}

	var b strings.Builder
	b.WriteString("By ")
	b.WriteString(author)
	b.WriteString(" | Source: ")
	b.WriteString(source)
	return b.String()
}

// FormatPublished renders the publish timestamp in loc. A timestamp without a
// zone is taken as wall-clock time in loc.
func FormatPublished(raw string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	t := timeutil.ParseInLocation(raw, loc)
	if t.IsZero() {
		return InvalidDate
	}
	return t.In(loc).Format(PublishedLayout)
}

// ExternalLink builds the "Read More" control for href
func ExternalLink(href string) Link {
	return Link{
		Href:   href,
		Target: "_blank",
		Rel:    "noopener noreferrer",
		Label:  "Read More",
	}
}
