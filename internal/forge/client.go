package forge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/aleister1102/unfurler/internal/config"
	"github.com/aleister1102/unfurler/internal/httpclient"
)

// Client talks to the forge REST API. Every call maps one resource kind to
// one GET; any failure (transport, non-200, bad JSON) yields absent
// metadata rather than an error, and no retries are attempted.
type Client struct {
	httpClient *httpclient.HTTPClient
	apiBaseURL string
	token      string
	logger     zerolog.Logger
}

// NewClient creates a forge API client from configuration
func NewClient(cfg config.ForgeConfig, logger zerolog.Logger) (*Client, error) {
	moduleLogger := logger.With().Str("module", "ForgeClient").Logger()

	httpClient, err := httpclient.NewHTTPClientBuilder(moduleLogger).
		WithTimeout(time.Duration(cfg.TimeoutSecs) * time.Second).
		WithUserAgent("unfurler/1.0").
		Build()
	if err != nil {
		return nil, err
	}

	return &Client{
		httpClient: httpClient,
		apiBaseURL: cfg.APIBaseURL(),
		token:      cfg.APIToken,
		logger:     moduleLogger,
	}, nil
}

// FetchMetadata retrieves the raw metadata for a classified resource.
// Unrecognized resources always yield absent metadata.
func (c *Client) FetchMetadata(ctx context.Context, res Resource) (RawMetadata, bool) {
	switch res.Kind {
	case KindRepository:
		return c.GetRepository(ctx, res.Owner, res.Repo)
	case KindIssue:
		return c.GetIssue(ctx, res.Owner, res.Repo, res.Number)
	case KindPullRequest:
		return c.GetPullRequest(ctx, res.Owner, res.Repo, res.Number)
	case KindCommit:
		return c.GetCommit(ctx, res.Owner, res.Repo, res.SHA)
	case KindUserProfile:
		return c.GetUser(ctx, res.Owner)
	default:
		return nil, false
	}
}

// GetRepository fetches repository metadata
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (RawMetadata, bool) {
	return c.get(ctx, fmt.Sprintf("/repos/%s/%s", owner, repo))
}

// GetIssue fetches issue metadata
func (c *Client) GetIssue(ctx context.Context, owner, repo string, number int) (RawMetadata, bool) {
	return c.get(ctx, fmt.Sprintf("/repos/%s/%s/issues/%d", owner, repo, number))
}

// GetPullRequest fetches pull request metadata
func (c *Client) GetPullRequest(ctx context.Context, owner, repo string, number int) (RawMetadata, bool) {
	return c.get(ctx, fmt.Sprintf("/repos/%s/%s/pulls/%d", owner, repo, number))
}

// GetCommit fetches commit metadata
func (c *Client) GetCommit(ctx context.Context, owner, repo, sha string) (RawMetadata, bool) {
	return c.get(ctx, fmt.Sprintf("/repos/%s/%s/git/commits/%s", owner, repo, sha))
}

// GetUser fetches user profile metadata
func (c *Client) GetUser(ctx context.Context, username string) (RawMetadata, bool) {
	return c.get(ctx, fmt.Sprintf("/users/%s", username))
}

// get performs one authenticated GET and decodes the JSON body. The bool
// result is the skip signal: false means "no metadata", never retry.
func (c *Client) get(ctx context.Context, path string) (RawMetadata, bool) {
	url := c.apiBaseURL + path

	headers := map[string]string{}
	if c.token != "" {
		headers["Authorization"] = "token " + c.token
	}

	resp, err := c.httpClient.Get(ctx, url, headers)
	if err != nil {
		c.logger.Debug().Err(err).Str("url", url).Msg("Forge API request failed")
		return nil, false
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug().Int("status_code", resp.StatusCode).Str("url", url).Msg("Forge API returned non-OK status")
		return nil, false
	}

	var metadata RawMetadata
	if err := json.Unmarshal(resp.Body, &metadata); err != nil {
		c.logger.Debug().Err(err).Str("url", url).Msg("Failed to decode forge API response")
		return nil, false
	}

	return metadata, true
}
