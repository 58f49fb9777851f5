package forge

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleister1102/unfurler/internal/preview"
)

func findField(t *testing.T, p preview.Preview, name string) preview.Field {
	t.Helper()
	for _, field := range p.Fields {
		if field.Name == name {
			return field
		}
	}
	t.Fatalf("field %q not found", name)
	return preview.Field{}
}

func hasField(p preview.Preview, name string) bool {
	for _, field := range p.Fields {
		if field.Name == name {
			return true
		}
	}
	return false
}

func TestBuildPreview_Repository(t *testing.T) {
	res := Resource{Kind: KindRepository, Owner: "alice", Repo: "myrepo", SourceURL: "http://10.77.0.20/alice/myrepo"}
	meta := RawMetadata{
		"full_name":         "alice/myrepo",
		"description":       "a fine repository",
		"stars_count":       float64(5),
		"forks_count":       float64(2),
		"open_issues_count": float64(3),
		"language":          "Go",
		"owner":             map[string]any{"login": "alice", "avatar_url": "http://10.77.0.20/avatars/1"},
		"created_at":        "2024-05-01T12:00:00Z",
	}

	p, err := BuildPreview(res, meta)
	require.NoError(t, err)

	assert.Equal(t, "alice/myrepo", p.Title)
	assert.Equal(t, "http://10.77.0.20/alice/myrepo", p.URL)
	assert.Equal(t, "a fine repository", p.Description)
	assert.Equal(t, ColorForge, p.Color)
	assert.Equal(t, "alice/myrepo", p.Footer)
	assert.Equal(t, "5", findField(t, p, "Stars").Value)
	assert.Equal(t, "2", findField(t, p, "Forks").Value)
	assert.Equal(t, "3", findField(t, p, "Open Issues").Value)
	assert.Equal(t, "Go", findField(t, p, "Language").Value)
	require.NotNil(t, p.Author)
	assert.Equal(t, "alice", p.Author.Name)
	require.NotNil(t, p.Timestamp)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), p.Timestamp.UTC())
}

func TestBuildPreview_Repository_NoLanguage(t *testing.T) {
	res := Resource{Kind: KindRepository, Owner: "alice", Repo: "myrepo", SourceURL: "http://10.77.0.20/alice/myrepo"}
	meta := RawMetadata{"full_name": "alice/myrepo"}

	p, err := BuildPreview(res, meta)
	require.NoError(t, err)

	assert.False(t, hasField(p, "Language"))
	assert.Equal(t, "0", findField(t, p, "Stars").Value)
	assert.Nil(t, p.Author)
	assert.Nil(t, p.Timestamp)
}

func TestBuildPreview_Issue(t *testing.T) {
	res := Resource{Kind: KindIssue, Owner: "alice", Repo: "myrepo", Number: 42, SourceURL: "http://10.77.0.20/alice/myrepo/issues/42"}
	meta := RawMetadata{
		"number": float64(42),
		"title":  "Bug",
		"state":  "open",
		"body":   strings.Repeat("x", 250),
		"labels": []any{
			map[string]any{"name": "bug"},
			map[string]any{"name": "urgent"},
		},
		"comments":   float64(3),
		"user":       map[string]any{"login": "bob", "avatar_url": "http://10.77.0.20/avatars/2"},
		"created_at": "2024-05-01T12:00:00Z",
	}

	p, err := BuildPreview(res, meta)
	require.NoError(t, err)

	assert.Equal(t, "#42 Bug", p.Title)
	assert.Len(t, p.Description, 203)
	assert.True(t, strings.HasSuffix(p.Description, "..."))
	assert.Equal(t, ColorOpen, p.Color)
	assert.Equal(t, "\U0001F7E2 open", findField(t, p, "State").Value)
	assert.Equal(t, "bug, urgent", findField(t, p, "Labels").Value)
	assert.Equal(t, "3", findField(t, p, "Comments").Value)
	assert.Equal(t, "alice/myrepo", p.Footer)
	require.NotNil(t, p.Author)
	assert.Equal(t, "bob", p.Author.Name)
}

func TestBuildPreview_Issue_Closed(t *testing.T) {
	res := Resource{Kind: KindIssue, Owner: "alice", Repo: "myrepo", Number: 1, SourceURL: "http://10.77.0.20/alice/myrepo/issues/1"}
	meta := RawMetadata{"number": float64(1), "title": "Done", "state": "closed"}

	p, err := BuildPreview(res, meta)
	require.NoError(t, err)

	assert.Equal(t, ColorClosed, p.Color)
	assert.Equal(t, "\U0001F534 closed", findField(t, p, "State").Value)
	assert.False(t, hasField(p, "Labels"))
}

func TestBuildPreview_PullRequest(t *testing.T) {
	res := Resource{Kind: KindPullRequest, Owner: "alice", Repo: "myrepo", Number: 7, SourceURL: "http://10.77.0.20/alice/myrepo/pulls/7"}

	tests := []struct {
		name          string
		meta          RawMetadata
		expectedColor int
		expectedState string
	}{
		{
			name:          "open",
			meta:          RawMetadata{"number": float64(7), "title": "Add feature", "state": "open"},
			expectedColor: ColorOpen,
			expectedState: "\U0001F7E2 open",
		},
		{
			name:          "closed unmerged",
			meta:          RawMetadata{"number": float64(7), "title": "Add feature", "state": "closed"},
			expectedColor: ColorClosed,
			expectedState: "\U0001F534 closed",
		},
		{
			name:          "merged takes precedence over state",
			meta:          RawMetadata{"number": float64(7), "title": "Add feature", "state": "closed", "merged": true},
			expectedColor: ColorMerged,
			expectedState: "merged",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := BuildPreview(res, tt.meta)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedColor, p.Color)
			assert.Equal(t, tt.expectedState, findField(t, p, "State").Value)
			assert.False(t, hasField(p, "Comments"))
		})
	}
}

func TestBuildPreview_Commit(t *testing.T) {
	res := Resource{Kind: KindCommit, Owner: "alice", Repo: "myrepo", SHA: "deadbeefcafe", SourceURL: "http://10.77.0.20/alice/myrepo/commit/deadbeefcafe"}
	meta := RawMetadata{
		"sha": "deadbeefcafe0123",
		"commit": map[string]any{
			"message": "fix the thing\n\nlonger explanation\nwith details",
			"author": map[string]any{
				"name": "Alice",
				"date": "2024-05-01T12:00:00Z",
			},
		},
	}

	p, err := BuildPreview(res, meta)
	require.NoError(t, err)

	assert.Equal(t, "`deadbee` fix the thing", p.Title)
	assert.Equal(t, "longer explanation\nwith details", p.Description)
	assert.Equal(t, ColorCommit, p.Color)
	assert.Equal(t, "alice/myrepo", p.Footer)
	require.NotNil(t, p.Author)
	assert.Equal(t, "Alice", p.Author.Name)
	assert.Empty(t, p.Author.IconURL)
	require.NotNil(t, p.Timestamp)
}

func TestBuildPreview_Commit_SingleLineMessage(t *testing.T) {
	res := Resource{Kind: KindCommit, Owner: "alice", Repo: "myrepo", SHA: "abc", SourceURL: "http://10.77.0.20/alice/myrepo/commit/abc"}
	meta := RawMetadata{
		"sha":    "abc",
		"commit": map[string]any{"message": "one liner"},
	}

	p, err := BuildPreview(res, meta)
	require.NoError(t, err)

	assert.Equal(t, "`abc` one liner", p.Title)
	assert.Empty(t, p.Description)
	assert.Nil(t, p.Author)
}

func TestBuildPreview_UserProfile(t *testing.T) {
	res := Resource{Kind: KindUserProfile, Owner: "alice", SourceURL: "http://10.77.0.20/alice"}
	meta := RawMetadata{
		"login":      "alice",
		"bio":        "writes Go",
		"avatar_url": "http://10.77.0.20/avatars/1",
		"created":    "2023-01-15T08:00:00Z",
	}

	p, err := BuildPreview(res, meta)
	require.NoError(t, err)

	assert.Equal(t, "alice", p.Title)
	assert.Equal(t, "writes Go", p.Description)
	assert.Equal(t, ColorUser, p.Color)
	assert.Equal(t, SourceName, p.Footer)
	assert.Equal(t, "http://10.77.0.20/avatars/1", p.ThumbnailURL)
}

func TestBuildPreview_UserProfile_DescriptionPrecedence(t *testing.T) {
	res := Resource{Kind: KindUserProfile, Owner: "alice", SourceURL: "http://10.77.0.20/alice"}
	meta := RawMetadata{
		"login":       "alice",
		"description": "profile description",
		"bio":         "old bio",
	}

	p, err := BuildPreview(res, meta)
	require.NoError(t, err)
	assert.Equal(t, "profile description", p.Description)
}

func TestBuildPreview_Idempotent(t *testing.T) {
	res := Resource{Kind: KindRepository, Owner: "alice", Repo: "myrepo", SourceURL: "http://10.77.0.20/alice/myrepo"}
	meta := RawMetadata{
		"full_name":  "alice/myrepo",
		"created_at": "2024-05-01T12:00:00Z",
	}

	first, err := BuildPreview(res, meta)
	require.NoError(t, err)
	second, err := BuildPreview(res, meta)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildPreview_Repository_MissingNameDefaultsGracefully(t *testing.T) {
	res := Resource{Kind: KindRepository, Owner: "alice", Repo: "myrepo", SourceURL: "http://10.77.0.20/alice/myrepo"}

	p, err := BuildPreview(res, RawMetadata{"stars_count": float64(1)})
	require.NoError(t, err)

	assert.Empty(t, p.Title)
	assert.Equal(t, "1", findField(t, p, "Stars").Value)
}

func TestBuildPreview_Unrecognized(t *testing.T) {
	_, err := BuildPreview(Resource{Kind: KindUnrecognized}, RawMetadata{})
	assert.Error(t, err)
}
