package forge

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aleister1102/unfurler/internal/errorwrapper"
	"github.com/aleister1102/unfurler/internal/preview"
)

// Accent colors per resource kind, matching the forge's own palette.
const (
	ColorForge  = 0x609926
	ColorOpen   = 0x28A745
	ColorClosed = 0xCB2431
	ColorMerged = 0x6F42C1
	ColorCommit = 0x0366D6
	ColorUser   = 0x586069
)

// SourceName is the fixed label shown on user profile previews.
const SourceName = "Gitea"

// BuildPreview maps raw forge metadata into a normalized preview for the
// given resource. Building is pure: the same inputs always produce the
// same preview.
func BuildPreview(res Resource, meta RawMetadata) (preview.Preview, error) {
	switch res.Kind {
	case KindRepository:
		return buildRepositoryPreview(res, meta)
	case KindIssue:
		return buildIssuePreview(res, meta)
	case KindPullRequest:
		return buildPullRequestPreview(res, meta)
	case KindCommit:
		return buildCommitPreview(res, meta)
	case KindUserProfile:
		return buildUserPreview(res, meta)
	default:
		return preview.Preview{}, errorwrapper.NewError("cannot build preview for %s resource", res.Kind)
	}
}

func buildRepositoryPreview(res Resource, meta RawMetadata) (preview.Preview, error) {
	fullName := meta.String("full_name")

	builder := preview.NewBuilder().
		WithTitle(fullName).
		WithURL(res.SourceURL).
		WithDescription(meta.String("description")).
		WithColor(ColorForge).
		WithFooter(fullName).
		AddField("Stars", strconv.Itoa(meta.Int("stars_count")), true).
		AddField("Forks", strconv.Itoa(meta.Int("forks_count")), true).
		AddField("Open Issues", strconv.Itoa(meta.Int("open_issues_count")), true)

	if language := meta.String("language"); language != "" {
		builder.AddField("Language", language, true)
	}

	if owner := meta.Map("owner"); len(owner) > 0 {
		builder.WithAuthor(owner.String("login"), owner.String("avatar_url"))
	}

	if ts, ok := meta.Time("created_at"); ok {
		builder.WithTimestamp(ts)
	}

	return builder.Build()
}

func buildIssuePreview(res Resource, meta RawMetadata) (preview.Preview, error) {
	state := issueState(meta)
	color := ColorOpen
	if state != "open" {
		color = ColorClosed
	}

	builder := preview.NewBuilder().
		WithTitle(fmt.Sprintf("#%d %s", meta.Int("number"), meta.String("title"))).
		WithURL(res.SourceURL).
		WithDescription(preview.Truncate(meta.String("body"))).
		WithColor(color).
		WithFooter(fmt.Sprintf("%s/%s", res.Owner, res.Repo)).
		AddField("State", stateBadge(state), true)

	addLabelsField(builder, meta)

	builder.AddField("Comments", strconv.Itoa(meta.Int("comments")), true)

	addReporterAuthor(builder, meta)

	if ts, ok := meta.Time("created_at"); ok {
		builder.WithTimestamp(ts)
	}

	return builder.Build()
}

func buildPullRequestPreview(res Resource, meta RawMetadata) (preview.Preview, error) {
	state := pullRequestState(meta)

	builder := preview.NewBuilder().
		WithTitle(fmt.Sprintf("#%d %s", meta.Int("number"), meta.String("title"))).
		WithURL(res.SourceURL).
		WithDescription(preview.Truncate(meta.String("body"))).
		WithColor(pullRequestColor(meta)).
		WithFooter(fmt.Sprintf("%s/%s", res.Owner, res.Repo)).
		AddField("State", stateBadge(state), true)

	addLabelsField(builder, meta)
	addReporterAuthor(builder, meta)

	if ts, ok := meta.Time("created_at"); ok {
		builder.WithTimestamp(ts)
	}

	return builder.Build()
}

func buildCommitPreview(res Resource, meta RawMetadata) (preview.Preview, error) {
	sha := meta.String("sha")
	shortSHA := sha
	if len(shortSHA) > 7 {
		shortSHA = shortSHA[:7]
	}

	commit := meta.Map("commit")
	message := commit.String("message")
	firstLine, rest := splitCommitMessage(message)

	builder := preview.NewBuilder().
		WithTitle(fmt.Sprintf("`%s` %s", shortSHA, firstLine)).
		WithURL(res.SourceURL).
		WithDescription(preview.Truncate(rest)).
		WithColor(ColorCommit).
		WithFooter(fmt.Sprintf("%s/%s", res.Owner, res.Repo))

	author := commit.Map("author")
	if name := author.String("name"); name != "" {
		// Author name only, the commit author has no avatar
		builder.WithAuthor(name, "")
	}

	if ts, ok := author.Time("date"); ok {
		builder.WithTimestamp(ts)
	}

	return builder.Build()
}

func buildUserPreview(res Resource, meta RawMetadata) (preview.Preview, error) {
	bio := meta.String("description")
	if bio == "" {
		bio = meta.String("bio")
	}

	builder := preview.NewBuilder().
		WithTitle(meta.String("login")).
		WithURL(res.SourceURL).
		WithDescription(bio).
		WithColor(ColorUser).
		WithFooter(SourceName)

	if avatar := meta.String("avatar_url"); avatar != "" {
		builder.WithThumbnailURL(avatar)
	}

	if ts, ok := meta.Time("created"); ok {
		builder.WithTimestamp(ts)
	}

	return builder.Build()
}

// issueState reads the issue state, defaulting to open
func issueState(meta RawMetadata) string {
	if state := meta.String("state"); state != "" {
		return state
	}
	return "open"
}

// pullRequestState reports merged ahead of the plain state word
func pullRequestState(meta RawMetadata) string {
	if meta.Bool("merged") {
		return "merged"
	}
	return issueState(meta)
}

// pullRequestColor picks the accent color; merged takes precedence
func pullRequestColor(meta RawMetadata) int {
	if meta.Bool("merged") {
		return ColorMerged
	}
	if issueState(meta) == "open" {
		return ColorOpen
	}
	return ColorClosed
}

// stateBadge renders the colored-circle glyph plus the state word
func stateBadge(state string) string {
	switch state {
	case "open":
		return "\U0001F7E2 " + state
	case "closed":
		return "\U0001F534 " + state
	default:
		return state
	}
}

// addLabelsField joins label names into one field, only when labels exist
func addLabelsField(builder *preview.Builder, meta RawMetadata) {
	labels := meta.List("labels")
	if len(labels) == 0 {
		return
	}

	names := make([]string, 0, len(labels))
	for _, label := range labels {
		names = append(names, label.String("name"))
	}
	builder.AddField("Labels", strings.Join(names, ", "), true)
}

// addReporterAuthor sets the author from the reporting user, when present
func addReporterAuthor(builder *preview.Builder, meta RawMetadata) {
	if user := meta.Map("user"); len(user) > 0 {
		builder.WithAuthor(user.String("login"), user.String("avatar_url"))
	}
}

// splitCommitMessage separates the subject line from the trimmed remainder
func splitCommitMessage(message string) (string, string) {
	firstLine, rest, found := strings.Cut(message, "\n")
	if !found {
		return message, ""
	}
	return firstLine, strings.TrimSpace(rest)
}
