package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_ToHTML(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:     "emphasis",
			input:    "A **great** read",
			contains: []string{"<strong>great</strong>"},
		},
		{
			name:        "script stripped",
			input:       "hello <script>alert(1)</script>",
			notContains: []string{"<script>"},
		},
		{
			name:        "event handler stripped",
			input:       `<img src="x.png" onerror="alert(1)">`,
			notContains: []string{"onerror"},
		},
		{
			name:     "links get nofollow",
			input:    "see https://example.com",
			contains: []string{"nofollow", `href="https://example.com"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.ToHTML(tt.input)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestRenderer_Empty(t *testing.T) {
	out, err := NewRenderer().ToHTML("")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, NewRenderer().MustHTML(""))
}
