package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text",
			input:    "India beat Australia by 6 wickets",
			expected: "India beat Australia by 6 wickets",
		},
		{
			name:     "collapses whitespace",
			input:    "  Hockey\n\tfinal   tonight ",
			expected: "Hockey final tonight",
		},
		{
			name:     "strips tags",
			input:    "<p>Kohli scores <b>century</b></p>",
			expected: "Kohli scores century",
		},
		{
			name:     "decodes entities",
			input:    "Rohit &amp; Gill open &ndash; day 2",
			expected: "Rohit & Gill open – day 2",
		},
		{
			name:     "drops script and style",
			input:    "<style>p{}</style>Score<script>alert(1)</script> update",
			expected: "Score update",
		},
		{
			name:     "hindi text",
			input:    "<p>भारत ने मैच जीता</p>",
			expected: "भारत ने मैच जीता",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PlainText(tt.input))
		})
	}
}
