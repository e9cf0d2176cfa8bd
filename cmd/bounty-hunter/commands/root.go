// Package commands implements the bounty-hunter CLI commands.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/similigh/bounty-hunter/internal/core/config"
	"github.com/similigh/bounty-hunter/internal/integrations/github"
)

// Output formats.
const (
	formatJSON  = "json"
	formatTable = "table"
)

var (
	cfgFile string
	token   string
	verbose bool
	format  string

	logger = zap.NewNop()

	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "bounty-hunter",
	Short: "Triage, claim and track GitHub bounty issues",
	Long: `bounty-hunter ranks open bounty issues by estimated payout and effort,
renders claim and submission comments, and tracks claimed issues and their
pull requests through to payout.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if format != formatJSON && format != formatTable {
			return fmt.Errorf("invalid --format %q: expected %q or %q", format, formatJSON, formatTable)
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file (default: .github/bounty-hunter.yaml)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "GitHub token (default: $GITHUB_TOKEN)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&format, "format", formatJSON, "Output format: json or table")
}

// resolveToken picks the token from the flag, then the config, then the environment.
func resolveToken(cfg *config.Config) string {
	if token != "" {
		return token
	}
	if cfg != nil && cfg.GitHub.Token != "" {
		return cfg.GitHub.Token
	}
	return os.Getenv("GITHUB_TOKEN")
}

// loadConfig loads the config file, resolving 'extends' through the GitHub
// contents API. Without a config file the defaults are used.
func loadConfig(ctx context.Context) (*config.Config, error) {
	path := config.FindConfigPath(cfgFile)
	if path == "" {
		if cfgFile != "" {
			return nil, fmt.Errorf("config file not found: %s", cfgFile)
		}
		logger.Debug("no config file found, using defaults")
		return config.Default(), nil
	}

	fetcher := func(ref string) ([]byte, error) {
		org, repo, branch, filePath, err := config.ParseExtendsRef(ref)
		if err != nil {
			return nil, err
		}
		client, err := github.NewClient(ctx, resolveToken(nil))
		if err != nil {
			return nil, err
		}
		return client.GetFileContent(ctx, org, repo, filePath, branch)
	}

	cfg, err := config.LoadWithInheritance(path, fetcher)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	logger.Debug("loaded config", zap.String("path", path))
	return cfg, nil
}

// newGitHubClient creates a client from the config and the resolved token.
func newGitHubClient(ctx context.Context, cfg *config.Config) (*github.Client, error) {
	opts := []github.Option{github.WithTimeout(cfg.GitHub.Timeout)}
	if cfg.GitHub.BaseURL != "" {
		opts = append(opts, github.WithBaseURL(cfg.GitHub.BaseURL))
	}
	client, err := github.NewClient(ctx, resolveToken(cfg), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	if !client.Authenticated() {
		logger.Debug("no GitHub token configured, using unauthenticated requests")
	}
	return client, nil
}

// setup loads the config and creates a GitHub client for a command.
func setup(cmd *cobra.Command) (*config.Config, *github.Client, error) {
	cfg, err := loadConfig(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	client, err := newGitHubClient(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, client, nil
}
