package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the default GitHub API base URL
	DefaultBaseURL = "https://api.github.com"

	// TokenEnv is the environment variable for GitHub token
	TokenEnv = "GITHUB_TOKEN"

	// DefaultTimeout is the default HTTP timeout
	DefaultTimeout = 30 * time.Second
)

// ClientOption configures a Client
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL for the GitHub API.
// Used for GitHub Enterprise Server (GITHUB_API_URL) and tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets a custom HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets the HTTP client used as the base transport.
// The token is still attached through an oauth2 transport wrapping it.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// Client is a GitHub API client scoped to the calls the verifier needs.
//
// The go-github client is built lazily on first use, authenticated with a
// static oauth2 token source:
//
//	client := github.NewClient(token,
//	    github.WithBaseURL(os.Getenv("GITHUB_API_URL")),
//	)
type Client struct {
	token        string
	baseURL      string
	httpClient   *http.Client
	timeout      time.Duration
	githubClient *github.Client // Lazy-loaded go-github client
}

// NewClient creates a new GitHub API client with the given token
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		token:   token,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.httpClient.Timeout = c.timeout

	return c
}

// NewClientFromEnv creates a new client using the token from GITHUB_TOKEN
func NewClientFromEnv(opts ...ClientOption) (*Client, error) {
	token := os.Getenv(TokenEnv)
	if token == "" {
		return nil, fmt.Errorf("%s environment variable is required", TokenEnv)
	}

	return NewClient(token, opts...), nil
}

// GetToken returns the client's authentication token
func (c *Client) GetToken() string {
	return c.token
}

// BaseURL returns the configured API base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GitHubClient returns the underlying go-github client (lazy-loaded)
func (c *Client) GitHubClient() *github.Client {
	if c.githubClient == nil {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, c.httpClient)
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.token})
		tc := oauth2.NewClient(ctx, ts)
		tc.Timeout = c.timeout
		c.githubClient = github.NewClient(tc)

		if c.baseURL != DefaultBaseURL && c.baseURL != "" {
			baseURL := c.baseURL
			// go-github requires a trailing slash on BaseURL
			if !strings.HasSuffix(baseURL, "/") {
				baseURL += "/"
			}
			if parsedURL, err := url.Parse(baseURL); err == nil {
				c.githubClient.BaseURL = parsedURL
			}
		}
	}
	return c.githubClient
}
