// Package poster posts comments on bounty issues behind a dry-run gate.
package poster

import (
	"context"
	"fmt"

	githubapi "github.com/google/go-github/v60/github"
	"go.uber.org/zap"

	"github.com/similigh/bounty-hunter/internal/utils/text"
)

// PreviewLimit is the number of characters shown in a dry-run preview.
const PreviewLimit = 280

// Posting modes.
const (
	ModeDryRun = "dry-run"
	ModeLive   = "live"
)

// Commenter creates issue comments.
type Commenter interface {
	Authenticated() bool
	CreateComment(ctx context.Context, org, repo string, number int, body string) (*githubapi.IssueComment, error)
}

// Request describes a comment to post.
type Request struct {
	Owner string
	Repo  string
	Issue int
	Body  string
	// DryRun previews the comment instead of posting it.
	DryRun bool
	// Confirm must be set for a live post.
	Confirm bool
}

// Result reports what Post did.
type Result struct {
	Mode        string `json:"mode"`
	Target      string `json:"target"`
	BodyPreview string `json:"body_preview,omitempty"`
	Posted      bool   `json:"posted"`
	CommentURL  string `json:"comment_url,omitempty"`
}

// Poster posts issue comments.
type Poster struct {
	commenter Commenter
	logger    *zap.Logger
}

// New creates a Poster. A nil logger disables logging.
func New(commenter Commenter, logger *zap.Logger) *Poster {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poster{commenter: commenter, logger: logger.Named("poster")}
}

// Post publishes the comment only when the request is not a dry run, is
// confirmed, and the client holds a token. Otherwise it returns a preview
// and makes no request.
func (p *Poster) Post(ctx context.Context, req Request) (*Result, error) {
	target := fmt.Sprintf("%s/%s#%d", req.Owner, req.Repo, req.Issue)

	if req.DryRun || !req.Confirm || !p.commenter.Authenticated() {
		if !req.DryRun && req.Confirm {
			p.logger.Warn("no GitHub token configured, falling back to dry-run", zap.String("target", target))
		}
		return &Result{
			Mode:        ModeDryRun,
			Target:      target,
			BodyPreview: text.Preview(req.Body, PreviewLimit),
			Posted:      false,
		}, nil
	}

	comment, err := p.commenter.CreateComment(ctx, req.Owner, req.Repo, req.Issue, req.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to post comment on %s: %w", target, err)
	}
	p.logger.Info("posted comment", zap.String("target", target), zap.String("url", comment.GetHTMLURL()))

	return &Result{
		Mode:       ModeLive,
		Target:     target,
		Posted:     true,
		CommentURL: comment.GetHTMLURL(),
	}, nil
}
