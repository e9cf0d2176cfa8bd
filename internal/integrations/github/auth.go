package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"
)

// DefaultTimeout bounds every request made by the client.
const DefaultTimeout = 30 * time.Second

// userAgent identifies the tool to the GitHub API.
const userAgent = "bounty-hunter"

type options struct {
	baseURL string
	timeout time.Duration
}

// Option customizes a Client.
type Option func(*options)

// WithBaseURL points the client at a different REST API root, e.g. a GitHub
// Enterprise instance or a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// NewClient creates a new GitHub client using the provided token.
// If token is empty, it returns an unauthenticated client that can only read.
func NewClient(ctx context.Context, token string, opts ...Option) (*Client, error) {
	o := options{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	var tc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		tc = oauth2.NewClient(ctx, ts)
	} else {
		tc = &http.Client{}
	}
	tc.Timeout = o.timeout

	client := github.NewClient(tc)
	client.UserAgent = userAgent

	if o.baseURL != "" {
		base, err := parseBaseURL(o.baseURL)
		if err != nil {
			return nil, err
		}
		client.BaseURL = base
		client.UploadURL = base
	}

	return &Client{
		client:        client,
		authenticated: token != "",
	}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub base URL %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid GitHub base URL %q: scheme and host are required", raw)
	}
	return u, nil
}
