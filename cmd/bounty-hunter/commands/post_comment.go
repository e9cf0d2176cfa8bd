package commands

import (
	"github.com/spf13/cobra"

	"github.com/similigh/bounty-hunter/internal/poster"
)

var (
	postOwner    string
	postRepo     string
	postIssue    int
	postBody     string
	postConfirm  bool
	postNoDryRun bool
)

// postCommentCmd represents the post-comment command
var postCommentCmd = &cobra.Command{
	Use:   "post-comment",
	Short: "Post an issue comment behind a dry-run safety gate",
	Long: `Post-comment previews the comment by default. A comment is only posted
when --no-dry-run and --confirm are both given and a GitHub token is set.`,
	RunE: runPostComment,
}

func init() {
	rootCmd.AddCommand(postCommentCmd)

	postCommentCmd.Flags().StringVar(&postOwner, "owner", "", "Repository owner (default from config)")
	postCommentCmd.Flags().StringVar(&postRepo, "repo", "", "Repository name (default from config)")
	postCommentCmd.Flags().IntVar(&postIssue, "issue", 0, "Issue number to comment on")
	postCommentCmd.Flags().StringVar(&postBody, "body", "", "Comment body")
	postCommentCmd.Flags().BoolVar(&postConfirm, "confirm", false, "Required with --no-dry-run for live posting")
	postCommentCmd.Flags().BoolVar(&postNoDryRun, "no-dry-run", false, "Enable live posting (requires a token and --confirm)")
	_ = postCommentCmd.MarkFlagRequired("issue")
	_ = postCommentCmd.MarkFlagRequired("body")
}

func runPostComment(cmd *cobra.Command, args []string) error {
	cfg, client, err := setup(cmd)
	if err != nil {
		return err
	}

	p := poster.New(client, logger)
	res, err := p.Post(cmd.Context(), poster.Request{
		Owner:   firstNonEmpty(postOwner, cfg.Scan.Owner),
		Repo:    firstNonEmpty(postRepo, cfg.Scan.Repo),
		Issue:   postIssue,
		Body:    postBody,
		DryRun:  !postNoDryRun,
		Confirm: postConfirm,
	})
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), res)
}
