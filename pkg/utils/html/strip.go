// ABOUTME: HTML utilities for turning markup fragments into plain text
// ABOUTME: Used where article text is rendered outside a browser

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText returns the text content of an HTML fragment with entities
// decoded and whitespace collapsed. Text without markup is only collapsed.
func PlainText(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return collapse(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return collapse(fragment)
	}
	doc.Find("script, style").Remove()

	return collapse(doc.Text())
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
