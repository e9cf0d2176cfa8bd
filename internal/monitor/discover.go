package monitor

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	githubapi "github.com/google/go-github/v60/github"
	"go.uber.org/zap"
)

// prURLRe matches pull request links in comment bodies.
var prURLRe = regexp.MustCompile(`https://github\.com/([^/\s]+/[^/\s]+)/pull/(\d+)`)

// Searcher is the subset of the GitHub API target discovery needs.
type Searcher interface {
	SearchIssues(ctx context.Context, query string, opts *githubapi.SearchOptions) (*githubapi.IssuesSearchResult, error)
	ListComments(ctx context.Context, org, repo string, number int, opts *githubapi.IssueListCommentsOptions) ([]*githubapi.IssueComment, *githubapi.Response, error)
}

// Discoverer finds monitor targets from an operator's own comments.
type Discoverer struct {
	searcher Searcher
	logger   *zap.Logger
}

// NewDiscoverer creates a Discoverer. A nil logger disables logging.
func NewDiscoverer(searcher Searcher, logger *zap.Logger) *Discoverer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Discoverer{searcher: searcher, logger: logger.Named("discover")}
}

// Discover searches issues in owner/repo that handle commented on and turns
// each of handle's comments into targets: one per linked pull request, or a
// single PR-less target when the comment links none. At most limit issues are
// inspected when limit is positive. Targets are unique and keep discovery
// order. Read failures yield fewer targets, never an error.
func (d *Discoverer) Discover(ctx context.Context, owner, repo, handle string, limit int) []Target {
	query := fmt.Sprintf("repo:%s/%s commenter:%s", owner, repo, handle)
	result, err := d.searcher.SearchIssues(ctx, query, &githubapi.SearchOptions{
		ListOptions: githubapi.ListOptions{PerPage: 100},
	})
	if err != nil {
		d.logger.Warn("issue search failed", zap.String("query", query), zap.Error(err))
		return nil
	}

	items := result.Issues
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	var out []Target
	seen := make(map[string]bool)
	add := func(t Target) {
		k := t.key()
		if seen[k] {
			return
		}
		seen[k] = true
		out = append(out, t.withDefaults())
	}

	for _, item := range items {
		issueRepo := repoFromAPIURL(item.GetRepositoryURL())
		number := item.GetNumber()
		if issueRepo == "" || number == 0 {
			continue
		}
		issueOwner, issueName, ok := strings.Cut(issueRepo, "/")
		if !ok {
			continue
		}

		comments, err := fetchComments(ctx, d.searcher, issueOwner, issueName, number)
		if err != nil {
			d.logger.Warn("failed to fetch issue comments",
				zap.String("issue", fmt.Sprintf("%s#%d", issueRepo, number)),
				zap.Error(err))
			continue
		}

		for _, c := range comments {
			if !strings.EqualFold(c.Author, handle) {
				continue
			}
			matches := prURLRe.FindAllStringSubmatch(c.Body, -1)
			if len(matches) == 0 {
				add(Target{IssueRepo: issueRepo, Issue: number, PRRepo: issueRepo})
				continue
			}
			for _, m := range matches {
				pr, err := strconv.Atoi(m[2])
				if err != nil {
					continue
				}
				add(Target{IssueRepo: issueRepo, Issue: number, PRRepo: m[1], PR: &pr})
			}
		}
	}

	d.logger.Debug("discovered targets", zap.Int("count", len(out)))
	return out
}

// repoFromAPIURL extracts "owner/repo" from an API repository URL such as
// https://api.github.com/repos/owner/repo.
func repoFromAPIURL(apiURL string) string {
	if apiURL == "" {
		return ""
	}
	if i := strings.LastIndex(apiURL, "/repos/"); i >= 0 {
		return apiURL[i+len("/repos/"):]
	}
	return apiURL
}
