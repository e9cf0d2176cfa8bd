package commands

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/similigh/bounty-hunter/internal/scanner"
	"github.com/similigh/bounty-hunter/internal/triage"
	"github.com/similigh/bounty-hunter/internal/tui"
)

var (
	scanOwner  string
	scanRepo   string
	scanLabel  string
	scanTop    int
	scanMinUSD float64
	scanLimit  int
)

type scanOutput struct {
	GeneratedAt string        `json:"generated_at"`
	RunID       string        `json:"run_id"`
	Count       int           `json:"count"`
	Leads       []triage.Lead `json:"leads"`
}

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan and rank open bounty issues",
	Long: `Scan lists open issues carrying the bounty label, estimates reward,
difficulty and capability fit for each, and prints them ranked by score.`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanOwner, "owner", "", "Repository owner (default from config: Scottcjn)")
	scanCmd.Flags().StringVar(&scanRepo, "repo", "", "Repository name (default from config: rustchain-bounties)")
	scanCmd.Flags().StringVar(&scanLabel, "label", "", "Issue label to scan (default from config: bounty)")
	scanCmd.Flags().IntVar(&scanTop, "top", 0, "Number of leads to print (default from config: 10)")
	scanCmd.Flags().Float64Var(&scanMinUSD, "min-usd", 0, "Drop leads below this USD reward")
	scanCmd.Flags().IntVar(&scanLimit, "limit", 0, "Maximum number of issues to fetch (default from config: 200)")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, client, err := setup(cmd)
	if err != nil {
		return err
	}

	if scanOwner != "" {
		cfg.Scan.Owner = scanOwner
	}
	if scanRepo != "" {
		cfg.Scan.Repo = scanRepo
	}
	if scanLabel != "" {
		cfg.Scan.Label = scanLabel
	}
	if cmd.Flags().Changed("top") {
		cfg.Scan.Top = scanTop
	}
	if cmd.Flags().Changed("min-usd") {
		cfg.Scan.MinUSD = scanMinUSD
	}
	if cmd.Flags().Changed("limit") {
		cfg.Scan.Limit = scanLimit
	}

	runID := uuid.New().String()
	log := logger.With(zap.String("run_id", runID))

	s := scanner.New(client, cfg, log)
	leads, err := s.Scan(cmd.Context(), cfg.Scan.Owner, cfg.Scan.Repo, scanner.Options{
		Label:  cfg.Scan.Label,
		Top:    cfg.Scan.Top,
		MinUSD: cfg.Scan.MinUSD,
		Limit:  cfg.Scan.Limit,
	})
	if err != nil {
		return err
	}
	log.Info("scan complete", zap.Int("leads", len(leads)))

	generatedAt := nowUTC()
	if format == formatTable {
		_, err := cmd.OutOrStdout().Write([]byte(tui.RenderLeads(generatedAt, leads)))
		return err
	}

	if leads == nil {
		leads = []triage.Lead{}
	}
	return printJSON(cmd.OutOrStdout(), scanOutput{
		GeneratedAt: generatedAt,
		RunID:       runID,
		Count:       len(leads),
		Leads:       leads,
	})
}
