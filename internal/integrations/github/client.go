package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/go-github/v60/github"
)

// ErrTokenRequired is returned by mutating calls on an unauthenticated client.
var ErrTokenRequired = errors.New("GitHub token is required for write actions")

// Client wraps the GitHub API client.
type Client struct {
	client        *github.Client
	authenticated bool
}

// Authenticated reports whether the client carries a token.
func (c *Client) Authenticated() bool {
	return c.authenticated
}

// ListIssues lists one page of issues in a repository.
// A response body that is not an issue list is treated as an empty page.
func (c *Client) ListIssues(ctx context.Context, org, repo string, opts *github.IssueListByRepoOptions) ([]*github.Issue, *github.Response, error) {
	issues, resp, err := c.client.Issues.ListByRepo(ctx, org, repo, opts)
	if err != nil {
		if IsMalformedResponse(err) {
			return nil, resp, nil
		}
		return nil, resp, fmt.Errorf("failed to list issues: %w", err)
	}
	return issues, resp, nil
}

// GetIssue fetches issue details.
func (c *Client) GetIssue(ctx context.Context, org, repo string, number int) (*github.Issue, error) {
	issue, _, err := c.client.Issues.Get(ctx, org, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch issue: %w", err)
	}

	return issue, nil
}

// ListComments lists comments on an issue.
func (c *Client) ListComments(ctx context.Context, org, repo string, number int, opts *github.IssueListCommentsOptions) ([]*github.IssueComment, *github.Response, error) {
	comments, resp, err := c.client.Issues.ListComments(ctx, org, repo, number, opts)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, resp, nil
}

// GetPullRequest fetches pull request details.
func (c *Client) GetPullRequest(ctx context.Context, org, repo string, number int) (*github.PullRequest, error) {
	pr, _, err := c.client.PullRequests.Get(ctx, org, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pull request: %w", err)
	}
	return pr, nil
}

// SearchIssues runs a full-text issue search.
func (c *Client) SearchIssues(ctx context.Context, query string, opts *github.SearchOptions) (*github.IssuesSearchResult, error) {
	result, _, err := c.client.Search.Issues(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search issues: %w", err)
	}
	return result, nil
}

// CreateComment posts a comment on an issue.
func (c *Client) CreateComment(ctx context.Context, org, repo string, number int, body string) (*github.IssueComment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("comment body cannot be empty")
	}
	if !c.authenticated {
		return nil, ErrTokenRequired
	}

	comment := &github.IssueComment{
		Body: github.String(body),
	}
	created, _, err := c.client.Issues.CreateComment(ctx, org, repo, number, comment)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return created, nil
}

// GetFileContent fetches the raw content of a file at the given ref.
func (c *Client) GetFileContent(ctx context.Context, org, repo, path, ref string) ([]byte, error) {
	opts := &github.RepositoryContentGetOptions{Ref: ref}
	file, _, _, err := c.client.Repositories.GetContents(ctx, org, repo, path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch file %s: %w", path, err)
	}
	if file == nil {
		return nil, fmt.Errorf("path %s is a directory, not a file", path)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode file %s: %w", path, err)
	}
	return []byte(content), nil
}

// IsMalformedResponse reports whether err comes from a response body whose
// JSON shape did not match what was expected.
func IsMalformedResponse(err error) bool {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	return errors.As(err, &typeErr) || errors.As(err, &syntaxErr)
}

// SplitRepo splits an "owner/repo" identifier.
func SplitRepo(fullName string) (owner, repo string, err error) {
	parts := strings.Split(strings.TrimSpace(fullName), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q: expected 'owner/repo'", fullName)
	}
	return parts[0], parts[1], nil
}
