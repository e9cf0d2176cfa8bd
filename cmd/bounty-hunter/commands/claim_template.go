package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/similigh/bounty-hunter/internal/templates"
)

var (
	claimOwner  string
	claimRepo   string
	claimIssue  int
	claimWallet string
	claimHandle string
)

// claimTemplateCmd represents the claim-template command
var claimTemplateCmd = &cobra.Command{
	Use:   "claim-template",
	Short: "Print a claim comment for a bounty issue",
	RunE:  runClaimTemplate,
}

func init() {
	rootCmd.AddCommand(claimTemplateCmd)

	claimTemplateCmd.Flags().StringVar(&claimOwner, "owner", "", "Repository owner (default from config)")
	claimTemplateCmd.Flags().StringVar(&claimRepo, "repo", "", "Repository name (default from config)")
	claimTemplateCmd.Flags().IntVar(&claimIssue, "issue", 0, "Issue number to claim")
	claimTemplateCmd.Flags().StringVar(&claimWallet, "wallet", "", "RTC wallet (default from config operator.wallet)")
	claimTemplateCmd.Flags().StringVar(&claimHandle, "handle", "", "GitHub handle (default from config operator.handle)")
	_ = claimTemplateCmd.MarkFlagRequired("issue")
}

func runClaimTemplate(cmd *cobra.Command, args []string) error {
	cfg, client, err := setup(cmd)
	if err != nil {
		return err
	}

	owner := firstNonEmpty(claimOwner, cfg.Scan.Owner)
	repo := firstNonEmpty(claimRepo, cfg.Scan.Repo)
	wallet := firstNonEmpty(claimWallet, cfg.Operator.Wallet)
	handle := firstNonEmpty(claimHandle, cfg.Operator.Handle)
	if wallet == "" || handle == "" {
		return fmt.Errorf("--wallet and --handle are required (or set operator.wallet and operator.handle in config)")
	}

	issue, err := client.GetIssue(cmd.Context(), owner, repo, claimIssue)
	if err != nil {
		return fmt.Errorf("failed to fetch issue %s/%s#%d: %w", owner, repo, claimIssue, err)
	}

	return printText(cmd.OutOrStdout(), templates.Claim(issue.GetNumber(), issue.GetTitle(), wallet, handle))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
