// Package scanner fetches open bounty issues and ranks them as leads.
package scanner

import (
	"context"
	"fmt"
	"sort"
	"time"

	githubapi "github.com/google/go-github/v60/github"
	"go.uber.org/zap"

	"github.com/similigh/bounty-hunter/internal/core/config"
	"github.com/similigh/bounty-hunter/internal/core/pipeline"
	"github.com/similigh/bounty-hunter/internal/steps"
	"github.com/similigh/bounty-hunter/internal/triage"
)

// IssueLister lists issues in a repository.
type IssueLister interface {
	ListIssues(ctx context.Context, org, repo string, opts *githubapi.IssueListByRepoOptions) ([]*githubapi.Issue, *githubapi.Response, error)
}

// Options controls a single scan.
type Options struct {
	// Label restricts the listing to issues carrying it.
	Label string
	// Top caps the number of leads returned; zero or less keeps all.
	Top int
	// MinUSD drops leads whose USD reward is below it.
	MinUSD float64
	// Limit caps the number of issues fetched; zero or less means one page.
	Limit int
}

// Scanner ranks open bounty issues.
type Scanner struct {
	lister   IssueLister
	cfg      *config.Config
	logger   *zap.Logger
	registry *pipeline.Registry
}

// New creates a Scanner. A nil logger disables logging.
func New(lister IssueLister, cfg *config.Config, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = config.Default()
	}

	registry := pipeline.NewRegistry()
	steps.RegisterAll(registry)

	return &Scanner{
		lister:   lister,
		cfg:      cfg,
		logger:   logger.Named("scanner"),
		registry: registry,
	}
}

// Scan fetches open labeled issues, scores each one and returns the leads
// sorted by descending score. Listing failures are returned to the caller.
func (s *Scanner) Scan(ctx context.Context, owner, repo string, opts Options) ([]triage.Lead, error) {
	issues, err := s.fetchOpenBounties(ctx, owner, repo, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch open bounties for %s/%s: %w", owner, repo, err)
	}
	s.logger.Info("fetched open bounties",
		zap.String("repo", owner+"/"+repo),
		zap.Int("count", len(issues)))

	deps := &pipeline.Dependencies{
		Logger:       s.logger,
		RewardParser: triage.NewRewardParser(s.cfg.Reward.RTCUSDRate),
		MinUSD:       opts.MinUSD,
	}
	stepNames := pipeline.ResolveSteps(s.cfg.Steps, s.cfg.Workflow)
	p, err := s.registry.BuildFromNames(stepNames, deps)
	if err != nil {
		return nil, fmt.Errorf("failed to build scoring pipeline: %w", err)
	}

	leads := make([]triage.Lead, 0, len(issues))
	for _, issue := range issues {
		pCtx := pipeline.NewContext(ctx, &issue, s.cfg)
		if err := p.Run(pCtx); err != nil {
			return nil, fmt.Errorf("failed to score issue #%d: %w", issue.Number, err)
		}
		if pCtx.Result.Skipped {
			continue
		}
		leads = append(leads, pCtx.Result.Lead(&issue))
	}

	SortLeads(leads)
	if opts.Top > 0 && len(leads) > opts.Top {
		leads = leads[:opts.Top]
	}
	return leads, nil
}

// SortLeads orders leads by descending score. Equal scores are ordered by
// ascending issue number so the ranking does not depend on fetch order.
func SortLeads(leads []triage.Lead) {
	sort.SliceStable(leads, func(i, j int) bool {
		if leads[i].Score != leads[j].Score {
			return leads[i].Score > leads[j].Score
		}
		return leads[i].Number < leads[j].Number
	})
}

// fetchOpenBounties pages through open issues with the bounty label,
// skipping pull requests returned by the issues endpoint.
func (s *Scanner) fetchOpenBounties(ctx context.Context, owner, repo string, opts Options) ([]triage.Issue, error) {
	listOpts := &githubapi.IssueListByRepoOptions{
		State: "open",
		ListOptions: githubapi.ListOptions{
			PerPage: 100,
		},
	}
	if opts.Label != "" {
		listOpts.Labels = []string{opts.Label}
	}

	var out []triage.Issue
	for {
		page, resp, err := s.lister.ListIssues(ctx, owner, repo, listOpts)
		if err != nil {
			return nil, err
		}
		for _, issue := range page {
			if issue.PullRequestLinks != nil {
				continue
			}
			out = append(out, toTriageIssue(issue))
			if opts.Limit > 0 && len(out) >= opts.Limit {
				return out, nil
			}
		}
		if opts.Limit <= 0 || resp == nil || resp.NextPage == 0 {
			break
		}
		listOpts.Page = resp.NextPage
	}

	return out, nil
}

func toTriageIssue(issue *githubapi.Issue) triage.Issue {
	var updated string
	if ts := issue.GetUpdatedAt(); !ts.IsZero() {
		updated = ts.UTC().Format(time.RFC3339)
	}
	return triage.Issue{
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		Body:      issue.GetBody(),
		URL:       issue.GetHTMLURL(),
		UpdatedAt: updated,
	}
}
