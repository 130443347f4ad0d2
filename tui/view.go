package tui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"newsgrid/core/card"
	"newsgrid/core/domain"
	"newsgrid/pkg/utils/html"
)

const (
	// Heading is shown above the grid
	Heading = "Latest India & Sports News (Hindi + English)"

	// EmptyText is shown when a page has no displayable article
	EmptyText = "No news available."

	// FailedText is shown when no query could be answered
	FailedText = "Could not reach the news service."

	// LoadingText accompanies the spinner
	LoadingText = "Loading news..."
)

var (
	accent = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	muted  = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	spinnerStyle = lipgloss.NewStyle().Foreground(accent)
	messageStyle = lipgloss.NewStyle().Foreground(muted).Padding(1, 2)
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Padding(1, 2)
	noticeStyle  = lipgloss.NewStyle().Foreground(muted).Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)
	selectedCardStyle = cardStyle.BorderForeground(accent)

	titleStyle  = lipgloss.NewStyle().Bold(true)
	imageStyle  = lipgloss.NewStyle().Foreground(muted).Italic(true)
	metaStyle   = lipgloss.NewStyle().Foreground(muted)
	linkStyle   = lipgloss.NewStyle().Foreground(accent).Underline(true)
	buttonStyle = lipgloss.NewStyle().Padding(0, 1)
	offStyle    = buttonStyle.Foreground(muted).Faint(true)
	onStyle     = buttonStyle.Foreground(accent).Bold(true)
)

// View renders the model
func (m *Model) View() string {
	if !m.ready {
		return m.headerView() + "\n" + m.bodyView(80)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.viewport.View(),
		m.footerView(),
	)
}

func (m *Model) headerView() string {
	return headingStyle.Render(Heading)
}

func (m *Model) footerView() string {
	prev := offStyle.Render("‹ Previous")
	if m.state.CanGoBack() {
		prev = onStyle.Render("‹ Previous")
	}
	next := onStyle.Render("Next ›")
	page := metaStyle.Render(fmt.Sprintf("Page %d", m.state.Page))

	controls := lipgloss.JoinHorizontal(lipgloss.Center, prev, page, next)

	// The notice line is always present so the viewport height stays fixed
	return lipgloss.JoinVertical(lipgloss.Left,
		controls,
		noticeStyle.Render(m.notice),
		m.help.View(m.keys),
	)
}

// refreshContent re-renders the grid into the viewport
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.bodyView(m.width))
}

func (m *Model) bodyView(width int) string {
	m.rowOffsets = m.rowOffsets[:0]

	switch {
	case m.state.Loading:
		return messageStyle.Render(m.spinner.View() + " " + LoadingText)
	case m.state.Status == domain.StatusFailed:
		return failedStyle.Render(FailedText)
	case len(m.cards) == 0:
		return messageStyle.Render(EmptyText)
	}

	colWidth := max(width/Columns, 20)
	rows := make([]string, 0, (len(m.cards)+Columns-1)/Columns)
	offset := 0
	for start := 0; start < len(m.cards); start += Columns {
		end := min(start+Columns, len(m.cards))
		cells := make([]string, 0, Columns)
		for i := start; i < end; i++ {
			cells = append(cells, renderCard(m.cards[i], colWidth, i == m.selected))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		m.rowOffsets = append(m.rowOffsets, offset)
		offset += lipgloss.Height(row)
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard draws one card in a box of the given outer width
func renderCard(c card.Card, width int, selected bool) string {
	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	inner := max(width-style.GetHorizontalBorderSize(), 10)

	body := lipgloss.JoinVertical(lipgloss.Left,
		imageStyle.Render("▣ "+imageLabel(c.ImageURL)),
		titleStyle.Render(html.PlainText(c.Title)),
		"",
		html.PlainText(c.Description),
		"",
		metaStyle.Render(c.Attribution),
		metaStyle.Render(c.Published),
		linkStyle.Render(c.Link.Label+" ↗"),
	)
	return style.Width(inner).Render(body)
}

// imageLabel names the image by host since terminals cannot show it inline
func imageLabel(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "image"
	}
	return strings.TrimPrefix(u.Host, "www.")
}
