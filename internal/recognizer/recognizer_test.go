package recognizer

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestRecognizer() *Recognizer {
	return NewRecognizer("http", "10.77.0.20", zerolog.Nop())
}

func TestForgeURLs(t *testing.T) {
	r := newTestRecognizer()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "no urls",
			text:     "just some chatter",
			expected: nil,
		},
		{
			name:     "single repo url",
			text:     "look at http://10.77.0.20/alice/myrepo please",
			expected: []string{"http://10.77.0.20/alice/myrepo"},
		},
		{
			name: "multiple urls keep appearance order",
			text: "http://10.77.0.20/alice/myrepo and http://10.77.0.20/bob/tool/issues/7",
			expected: []string{
				"http://10.77.0.20/alice/myrepo",
				"http://10.77.0.20/bob/tool/issues/7",
			},
		},
		{
			name: "duplicates preserved",
			text: "http://10.77.0.20/a/b again http://10.77.0.20/a/b",
			expected: []string{
				"http://10.77.0.20/a/b",
				"http://10.77.0.20/a/b",
			},
		},
		{
			name:     "other internal hosts are not forge urls",
			text:     "see http://10.1.2.3/wiki/page",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.ForgeURLs(tt.text))
		})
	}
}

func TestPageURLs(t *testing.T) {
	r := newTestRecognizer()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "internal page url",
			text:     "docs at http://10.1.2.3/wiki/page?id=1",
			expected: []string{"http://10.1.2.3/wiki/page?id=1"},
		},
		{
			name:     "forge urls are excluded from the page family",
			text:     "http://10.77.0.20/alice/myrepo",
			expected: nil,
		},
		{
			name: "mixed text keeps only non-forge internal links in order",
			text: "http://10.0.0.1/a then http://10.77.0.20/x/y then http://10.0.0.2/b",
			expected: []string{
				"http://10.0.0.1/a",
				"http://10.0.0.2/b",
			},
		},
		{
			name:     "public urls are ignored",
			text:     "https://example.com/page and http://192.168.0.1/x",
			expected: nil,
		},
		{
			name:     "port is part of the match",
			text:     "http://10.2.3.4:8080/status",
			expected: []string{"http://10.2.3.4:8080/status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.PageURLs(tt.text))
		})
	}
}
