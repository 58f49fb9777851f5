package forge

import (
	"net/url"
	"strconv"
	"strings"
)

// ResourceKind identifies the kind of forge resource a URL points at.
type ResourceKind int

const (
	KindUnrecognized ResourceKind = iota
	KindRepository
	KindIssue
	KindPullRequest
	KindCommit
	KindUserProfile
)

// String returns string representation of ResourceKind
func (rk ResourceKind) String() string {
	switch rk {
	case KindRepository:
		return "repository"
	case KindIssue:
		return "issue"
	case KindPullRequest:
		return "pull_request"
	case KindCommit:
		return "commit"
	case KindUserProfile:
		return "user_profile"
	default:
		return "unrecognized"
	}
}

// Resource is a classified forge URL. Only the fields relevant to the
// kind are populated: Repo for everything but user profiles, Number for
// issues and pull requests, SHA for commits.
type Resource struct {
	Kind      ResourceKind
	Owner     string
	Repo      string
	Number    int
	SHA       string
	SourceURL string
}

// Classify parses a forge URL into a Resource. It dispatches purely on
// path segment count and the literal third segment; it never consults the
// server. The same URL always classifies identically.
func Classify(rawURL string) Resource {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return Resource{Kind: KindUnrecognized, SourceURL: rawURL}
	}

	segments := splitPath(parsed.Path)
	if len(segments) == 0 {
		return Resource{Kind: KindUnrecognized, SourceURL: rawURL}
	}

	owner := segments[0]

	// /{owner}
	if len(segments) == 1 {
		return Resource{Kind: KindUserProfile, Owner: owner, SourceURL: rawURL}
	}

	repo := segments[1]

	// /{owner}/{repo}
	if len(segments) == 2 {
		return Resource{Kind: KindRepository, Owner: owner, Repo: repo, SourceURL: rawURL}
	}

	// /{owner}/{repo}/issues/{n} and /{owner}/{repo}/pulls/{n}
	if len(segments) >= 4 && (segments[2] == "issues" || segments[2] == "pulls") {
		number, err := strconv.Atoi(segments[3])
		if err != nil {
			return Resource{Kind: KindUnrecognized, Owner: owner, SourceURL: rawURL}
		}
		kind := KindIssue
		if segments[2] == "pulls" {
			kind = KindPullRequest
		}
		return Resource{Kind: kind, Owner: owner, Repo: repo, Number: number, SourceURL: rawURL}
	}

	// /{owner}/{repo}/commit/{sha}, sha taken verbatim
	if len(segments) >= 4 && segments[2] == "commit" {
		return Resource{Kind: KindCommit, Owner: owner, Repo: repo, SHA: segments[3], SourceURL: rawURL}
	}

	return Resource{Kind: KindUnrecognized, Owner: owner, SourceURL: rawURL}
}

// splitPath splits a URL path into its non-empty segments
func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
