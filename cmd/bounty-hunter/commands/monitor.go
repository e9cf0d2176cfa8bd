package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/similigh/bounty-hunter/internal/monitor"
	"github.com/similigh/bounty-hunter/internal/tui"
)

const noTargetsNote = "no monitor targets found"

var (
	monitorTargetsFile string
	monitorDiscover    bool
	monitorOwner       string
	monitorRepo        string
	monitorHandle      string
	monitorLimit       int
)

type monitorOutput struct {
	GeneratedAt string        `json:"generated_at"`
	Rows        []monitor.Row `json:"rows"`
	Note        string        `json:"note,omitempty"`
}

// monitorCmd represents the monitor command
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Track claimed issues and their PRs through to payout",
	Long: `Monitor reports issue state, PR state and payout signals for each target
and recommends the next action. Targets come from a JSON or YAML file,
from discovery over the operator's own comments, or both.`,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)

	monitorCmd.Flags().StringVar(&monitorTargetsFile, "targets-file", "", "Path to a JSON or YAML list of targets (default from config)")
	monitorCmd.Flags().BoolVar(&monitorDiscover, "auto-discover", false, "Discover targets from the operator's comments")
	monitorCmd.Flags().StringVar(&monitorOwner, "owner", "", "Repository owner to discover in (default from config)")
	monitorCmd.Flags().StringVar(&monitorRepo, "repo", "", "Repository name to discover in (default from config)")
	monitorCmd.Flags().StringVar(&monitorHandle, "handle", "", "Operator GitHub handle (default from config operator.handle)")
	monitorCmd.Flags().IntVar(&monitorLimit, "limit", 0, "Maximum search results to inspect (default from config: 200)")
}

func runMonitor(cmd *cobra.Command, args []string) error {
	cfg, client, err := setup(cmd)
	if err != nil {
		return err
	}

	targetsFile := firstNonEmpty(monitorTargetsFile, cfg.Monitor.TargetsFile)
	limit := cfg.Monitor.Limit
	if cmd.Flags().Changed("limit") {
		limit = monitorLimit
	}

	var targets []monitor.Target
	if targetsFile != "" {
		loaded, err := monitor.LoadTargets(targetsFile)
		if err != nil {
			return err
		}
		targets = append(targets, loaded...)
	}

	if monitorDiscover {
		handle := firstNonEmpty(monitorHandle, cfg.Operator.Handle)
		if handle == "" {
			return fmt.Errorf("--handle is required with --auto-discover (or set operator.handle in config)")
		}
		owner := firstNonEmpty(monitorOwner, cfg.Scan.Owner)
		repo := firstNonEmpty(monitorRepo, cfg.Scan.Repo)

		d := monitor.NewDiscoverer(client, logger)
		discovered := d.Discover(cmd.Context(), owner, repo, handle, limit)
		logger.Info("discovered monitor targets", zap.Int("count", len(discovered)))
		targets = append(targets, discovered...)
	}

	generatedAt := nowUTC()
	if len(targets) == 0 {
		if format == formatTable {
			_, err := cmd.OutOrStdout().Write([]byte(tui.RenderMonitorRows(generatedAt, nil, noTargetsNote)))
			return err
		}
		return printJSON(cmd.OutOrStdout(), monitorOutput{
			GeneratedAt: generatedAt,
			Rows:        []monitor.Row{},
			Note:        noTargetsNote,
		})
	}

	rows := monitor.New(client, logger).Run(cmd.Context(), targets)
	if format == formatTable {
		_, err := cmd.OutOrStdout().Write([]byte(tui.RenderMonitorRows(generatedAt, rows, "")))
		return err
	}
	return printJSON(cmd.OutOrStdout(), monitorOutput{
		GeneratedAt: generatedAt,
		Rows:        rows,
	})
}
