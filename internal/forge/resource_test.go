package forge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected Resource
	}{
		{
			name:     "user profile",
			url:      "http://10.77.0.20/alice",
			expected: Resource{Kind: KindUserProfile, Owner: "alice"},
		},
		{
			name:     "repository",
			url:      "http://10.77.0.20/alice/myrepo",
			expected: Resource{Kind: KindRepository, Owner: "alice", Repo: "myrepo"},
		},
		{
			name:     "repository with trailing slash",
			url:      "http://10.77.0.20/alice/myrepo/",
			expected: Resource{Kind: KindRepository, Owner: "alice", Repo: "myrepo"},
		},
		{
			name:     "issue",
			url:      "http://10.77.0.20/alice/myrepo/issues/42",
			expected: Resource{Kind: KindIssue, Owner: "alice", Repo: "myrepo", Number: 42},
		},
		{
			name:     "pull request",
			url:      "http://10.77.0.20/alice/myrepo/pulls/7",
			expected: Resource{Kind: KindPullRequest, Owner: "alice", Repo: "myrepo", Number: 7},
		},
		{
			name:     "commit sha taken verbatim",
			url:      "http://10.77.0.20/alice/myrepo/commit/deadbeefcafe",
			expected: Resource{Kind: KindCommit, Owner: "alice", Repo: "myrepo", SHA: "deadbeefcafe"},
		},
		{
			name:     "non-numeric issue number",
			url:      "http://10.77.0.20/alice/myrepo/issues/abc",
			expected: Resource{Kind: KindUnrecognized, Owner: "alice"},
		},
		{
			name:     "non-numeric pull number",
			url:      "http://10.77.0.20/alice/myrepo/pulls/new",
			expected: Resource{Kind: KindUnrecognized, Owner: "alice"},
		},
		{
			name:     "issues without a number",
			url:      "http://10.77.0.20/alice/myrepo/issues",
			expected: Resource{Kind: KindUnrecognized, Owner: "alice"},
		},
		{
			name:     "unknown third segment",
			url:      "http://10.77.0.20/alice/myrepo/wiki/Home",
			expected: Resource{Kind: KindUnrecognized, Owner: "alice"},
		},
		{
			name:     "bare host",
			url:      "http://10.77.0.20/",
			expected: Resource{Kind: KindUnrecognized},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expected.SourceURL = tt.url
			assert.Equal(t, tt.expected, Classify(tt.url))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	url := "http://10.77.0.20/alice/myrepo/pulls/3"
	first := Classify(url)
	second := Classify(url)
	assert.Equal(t, first, second)
}
