package cms

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/machinebox/graphql"
	"go.uber.org/zap"
)

const listPostsQuery = `
query Posts($stage: Stage!, $orderBy: PostOrderByInput) {
  posts(stage: $stage, orderBy: $orderBy) {
    id
    slug
    title
    description
    createdAt
  }
}`

const getPostQuery = `
query BlogPostById($id: ID!, $stage: Stage!) {
  post(where: {id: $id}, stage: $stage) {
    id
    slug
    title
    body
    description
    createdAt
  }
}`

// Config describes how to reach the content API.
type Config struct {
	Endpoint     string        // GraphQL endpoint URL
	Token        string        // bearer token for published content (optional for public APIs)
	PreviewToken string        // bearer token allowed to read drafts
	OrderBy      string        // server-side ordering, e.g. "createdAt_DESC"; empty keeps the API default
	Timeout      time.Duration // HTTP client timeout (default 10s)
	HTTPClient   *http.Client
	Logger       *zap.Logger
}

// Client queries posts from the content API.
type Client struct {
	gql    *graphql.Client
	cfg    Config
	logger *zap.Logger
}

// New returns a Client for cfg. A nil HTTPClient gets one with cfg.Timeout.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("cms: endpoint is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	gql := graphql.NewClient(cfg.Endpoint, graphql.WithHTTPClient(httpClient))
	gql.Log = func(s string) {
		logger.Debug("graphql", zap.String("msg", s))
	}
	return &Client{gql: gql, cfg: cfg, logger: logger}, nil
}

// ListPosts returns post summaries in the order the API returns them.
func (c *Client) ListPosts(ctx context.Context, stage Stage) ([]PostSummary, error) {
	req := c.newRequest(listPostsQuery, stage)
	if c.cfg.OrderBy != "" {
		req.Var("orderBy", c.cfg.OrderBy)
	}

	var resp struct {
		Posts []PostSummary `json:"posts"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("cms: list posts: %w", err)
	}
	if resp.Posts == nil {
		return []PostSummary{}, nil
	}
	return resp.Posts, nil
}

// GetPost returns the full post with the given id, or ErrNotFound.
func (c *Client) GetPost(ctx context.Context, stage Stage, id string) (PostDetail, error) {
	req := c.newRequest(getPostQuery, stage)
	req.Var("id", id)

	var resp struct {
		Post *PostDetail `json:"post"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return PostDetail{}, fmt.Errorf("cms: get post %s: %w", id, err)
	}
	if resp.Post == nil {
		return PostDetail{}, ErrNotFound
	}
	return *resp.Post, nil
}

func (c *Client) newRequest(query string, stage Stage) *graphql.Request {
	if stage == "" {
		stage = StagePublished
	}
	req := graphql.NewRequest(query)
	req.Var("stage", string(stage))

	token := c.cfg.Token
	if stage == StageDraft && c.cfg.PreviewToken != "" {
		token = c.cfg.PreviewToken
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}
