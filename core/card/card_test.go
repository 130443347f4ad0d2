package card

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"newsgrid/core/domain"
)

func TestTruncateDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "length 200 keeps first 150",
			input:    strings.Repeat("a", 150) + strings.Repeat("b", 50),
			expected: strings.Repeat("a", 150) + "...",
		},
		{
			name:     "length 100 keeps everything and still adds the marker",
			input:    strings.Repeat("c", 100),
			expected: strings.Repeat("c", 100) + "...",
		},
		{
			name:     "exactly 150",
			input:    strings.Repeat("d", 150),
			expected: strings.Repeat("d", 150) + "...",
		},
		{
			name:     "slice is not word aware",
			input:    strings.Repeat("word ", 40),
			expected: strings.Repeat("word ", 30) + "...",
		},
		{
			name:     "empty",
			input:    "",
			expected: "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateDescription(tt.input))
		})
	}
}

func TestTruncateDescription_CountsCharactersNotBytes(t *testing.T) {
	hindi := strings.Repeat("भा", 100) // 200 runes, multi-byte each

	got := TruncateDescription(hindi)

	assert.Equal(t, strings.Repeat("भा", 75)+"...", got)
	assert.Equal(t, 153, len([]rune(got)))
}

func TestAttribution(t *testing.T) {
	tests := []struct {
		name     string
		author   string
		source   string
		expected string
	}{
		{name: "both present", author: "Priya Sharma", source: "The Hindu", expected: "By Priya Sharma | Source: The Hindu"},
		{name: "missing author and source", expected: "By Unknown | Source: N/A"},
		{name: "missing author", source: "BBC News", expected: "By Unknown | Source: BBC News"},
		{name: "missing source", author: "Ravi", expected: "By Ravi | Source: N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Attribution(tt.author, tt.source))
		})
	}
}

func TestFormatPublished(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	assert.Equal(t, "3/1/2024, 4:00:00 PM", FormatPublished("2024-03-01T10:30:00Z", kolkata))
	assert.Equal(t, "3/1/2024, 10:30:00 AM", FormatPublished("2024-03-01T10:30:00Z", time.UTC))
	assert.Equal(t, InvalidDate, FormatPublished("", time.UTC))
	assert.Equal(t, InvalidDate, FormatPublished("not a date", time.UTC))
	assert.Equal(t, "3/1/2024, 10:30:00 AM", FormatPublished("2024-03-01T10:30:00", kolkata), "zone-less time is local wall clock")
}

func TestFromArticle(t *testing.T) {
	a := domain.Article{
		Title:       "Headline",
		Description: "Short summary",
		URL:         "https://example.com/story",
		URLToImage:  "https://example.com/story.jpg",
		PublishedAt: "2024-03-01T10:30:00Z",
	}

	c := FromArticle(a, time.UTC)

	assert.Equal(t, "https://example.com/story.jpg", c.ImageURL)
	assert.Equal(t, "Headline", c.Title)
	assert.Equal(t, "Short summary...", c.Description)
	assert.Equal(t, "By Unknown | Source: N/A", c.Attribution)
	assert.Equal(t, "3/1/2024, 10:30:00 AM", c.Published)
	assert.Equal(t, "https://example.com/story", c.Link.Href)
	assert.Equal(t, "_blank", c.Link.Target)
	assert.Contains(t, c.Link.Rel, "noopener")
	assert.Contains(t, c.Link.Rel, "noreferrer")
	assert.Equal(t, "Read More", c.Link.Label)
}

func TestFromArticles_PreservesOrder(t *testing.T) {
	cards := FromArticles([]domain.Article{{Title: "first"}, {Title: "second"}}, time.UTC)

	if assert.Len(t, cards, 2) {
		assert.Equal(t, "first", cards[0].Title)
		assert.Equal(t, "second", cards[1].Title)
	}
	assert.NotNil(t, FromArticles(nil, time.UTC))
}
