package monitor

import (
	"context"

	githubapi "github.com/google/go-github/v60/github"
	"go.uber.org/zap"

	"github.com/similigh/bounty-hunter/internal/integrations/github"
	"github.com/similigh/bounty-hunter/internal/payout"
	"github.com/similigh/bounty-hunter/internal/utils/text"
)

// States reported when a value could not be read or does not apply.
const (
	StateUnknown = "unknown"
	StateMissing = "missing"
)

// Reader is the read-only subset of the GitHub API the monitor needs.
type Reader interface {
	GetIssue(ctx context.Context, org, repo string, number int) (*githubapi.Issue, error)
	ListComments(ctx context.Context, org, repo string, number int, opts *githubapi.IssueListCommentsOptions) ([]*githubapi.IssueComment, *githubapi.Response, error)
	GetPullRequest(ctx context.Context, org, repo string, number int) (*githubapi.PullRequest, error)
}

// Row is the monitoring status of one target.
type Row struct {
	Label        string        `json:"label"`
	Issue        string        `json:"issue"`
	PR           string        `json:"pr"`
	IssueState   string        `json:"issue_state"`
	PRState      string        `json:"pr_state"`
	Merged       bool          `json:"merged"`
	PayoutSignal payout.Signal `json:"payout_signal"`
	PayoutAction payout.Action `json:"payout_action"`
}

// Monitor reports the payout status of targets.
type Monitor struct {
	reader Reader
	logger *zap.Logger
}

// New creates a Monitor. A nil logger disables logging.
func New(reader Reader, logger *zap.Logger) *Monitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{reader: reader, logger: logger.Named("monitor")}
}

// Run returns one row per target, in order. Read failures never abort the
// run; the affected fields fall back to unknown values.
func (m *Monitor) Run(ctx context.Context, targets []Target) []Row {
	rows := make([]Row, 0, len(targets))
	for _, t := range targets {
		rows = append(rows, m.check(ctx, t.withDefaults()))
	}
	return rows
}

func (m *Monitor) check(ctx context.Context, t Target) Row {
	log := m.logger.With(zap.String("target", t.Label))

	issueState, signal := StateUnknown, payout.SignalNone
	if owner, repo, err := github.SplitRepo(t.IssueRepo); err != nil {
		log.Warn("invalid issue repository", zap.Error(err))
	} else {
		issueState = m.issueState(ctx, log, owner, repo, t.Issue)
		signal = payout.SignalFromComments(m.comments(ctx, log, owner, repo, t.Issue))
	}

	prState, merged := StateMissing, false
	if t.PR != nil {
		prState, merged = m.prState(ctx, log, t.PRRepo, *t.PR)
	}

	return Row{
		Label:        t.Label,
		Issue:        t.IssueURL(),
		PR:           t.PRURL(),
		IssueState:   issueState,
		PRState:      prState,
		Merged:       merged,
		PayoutSignal: signal,
		PayoutAction: payout.ClassifyAction(merged, prState, issueState, signal),
	}
}

func (m *Monitor) issueState(ctx context.Context, log *zap.Logger, owner, repo string, number int) string {
	issue, err := m.reader.GetIssue(ctx, owner, repo, number)
	if err != nil {
		log.Warn("failed to fetch issue", zap.Error(err))
		return StateUnknown
	}
	if state := issue.GetState(); state != "" {
		return state
	}
	return StateUnknown
}

func (m *Monitor) comments(ctx context.Context, log *zap.Logger, owner, repo string, number int) []text.Comment {
	comments, err := fetchComments(ctx, m.reader, owner, repo, number)
	if err != nil {
		log.Warn("failed to fetch issue comments", zap.Error(err))
		return nil
	}
	return comments
}

func (m *Monitor) prState(ctx context.Context, log *zap.Logger, fullName string, number int) (string, bool) {
	owner, repo, err := github.SplitRepo(fullName)
	if err != nil {
		log.Warn("invalid pull request repository", zap.Error(err))
		return StateUnknown, false
	}
	pr, err := m.reader.GetPullRequest(ctx, owner, repo, number)
	if err != nil {
		log.Warn("failed to fetch pull request", zap.Int("pr", number), zap.Error(err))
		return StateUnknown, false
	}
	state := pr.GetState()
	if state == "" {
		state = StateUnknown
	}
	return state, pr.GetMerged()
}

// commentLister lists comments on an issue.
type commentLister interface {
	ListComments(ctx context.Context, org, repo string, number int, opts *githubapi.IssueListCommentsOptions) ([]*githubapi.IssueComment, *githubapi.Response, error)
}

// fetchComments reads the first page of issue comments.
func fetchComments(ctx context.Context, lister commentLister, owner, repo string, number int) ([]text.Comment, error) {
	opts := &githubapi.IssueListCommentsOptions{
		ListOptions: githubapi.ListOptions{PerPage: 100},
	}
	raw, _, err := lister.ListComments(ctx, owner, repo, number, opts)
	if err != nil {
		return nil, err
	}
	comments := make([]text.Comment, 0, len(raw))
	for _, c := range raw {
		comments = append(comments, text.Comment{
			Author: c.GetUser().GetLogin(),
			Body:   c.GetBody(),
		})
	}
	return comments, nil
}
