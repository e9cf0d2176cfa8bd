package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/similigh/bounty-hunter/internal/templates"
)

var (
	submitWallet  string
	submitHandle  string
	submitPRs     []string
	submitSummary string
)

// submitTemplateCmd represents the submit-template command
var submitTemplateCmd = &cobra.Command{
	Use:   "submit-template",
	Short: "Print a submission comment listing PR links",
	Example: `  bounty-hunter submit-template --wallet my-miner --handle me \
    --pr https://github.com/o/r/pull/1 --pr https://github.com/o/r/pull/2 \
    --summary "Added the SDK and docs."`,
	RunE: runSubmitTemplate,
}

func init() {
	rootCmd.AddCommand(submitTemplateCmd)

	submitTemplateCmd.Flags().StringVar(&submitWallet, "wallet", "", "RTC wallet (default from config operator.wallet)")
	submitTemplateCmd.Flags().StringVar(&submitHandle, "handle", "", "GitHub handle (default from config operator.handle)")
	submitTemplateCmd.Flags().StringArrayVar(&submitPRs, "pr", nil, "PR link (repeat for multiple)")
	submitTemplateCmd.Flags().StringVar(&submitSummary, "summary", "", "Summary of the delivered work")
	_ = submitTemplateCmd.MarkFlagRequired("pr")
	_ = submitTemplateCmd.MarkFlagRequired("summary")
}

func runSubmitTemplate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Context())
	if err != nil {
		return err
	}

	wallet := firstNonEmpty(submitWallet, cfg.Operator.Wallet)
	handle := firstNonEmpty(submitHandle, cfg.Operator.Handle)
	if wallet == "" || handle == "" {
		return fmt.Errorf("--wallet and --handle are required (or set operator.wallet and operator.handle in config)")
	}

	return printText(cmd.OutOrStdout(), templates.Submission(wallet, handle, submitPRs, submitSummary))
}
