// Package config handles loading and merging bounty-hunter configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	// Extends allows inheriting from a remote config (e.g., "org/repo@branch").
	Extends string `yaml:"extends,omitempty"`

	// GitHub configures API access.
	GitHub GitHubConfig `yaml:"github"`

	// Scan holds the defaults for the scan command.
	Scan ScanConfig `yaml:"scan"`

	// Operator identifies the person claiming bounties.
	Operator OperatorConfig `yaml:"operator"`

	// Monitor configures claimed-bounty tracking.
	Monitor MonitorConfig `yaml:"monitor"`

	// Reward configures reward estimation.
	Reward RewardConfig `yaml:"reward"`

	// Workflow is a preset scoring workflow name (e.g., "lead-scoring").
	Workflow string `yaml:"workflow,omitempty"`

	// Steps is a custom list of scoring steps (overrides workflow).
	Steps []string `yaml:"steps,omitempty"`
}

// GitHubConfig holds GitHub API settings.
type GitHubConfig struct {
	Token   string        `yaml:"token"`
	BaseURL string        `yaml:"base_url,omitempty"`
	Timeout time.Duration `yaml:"timeout"`
}

// ScanConfig holds the defaults for scanning bounty issues.
type ScanConfig struct {
	Owner  string  `yaml:"owner"`
	Repo   string  `yaml:"repo"`
	Label  string  `yaml:"label"`
	Top    int     `yaml:"top"`
	MinUSD float64 `yaml:"min_usd"`
	Limit  int     `yaml:"limit"`
}

// OperatorConfig identifies the operator.
type OperatorConfig struct {
	Handle string `yaml:"handle"`
	Wallet string `yaml:"wallet"`
}

// MonitorConfig holds monitoring settings.
type MonitorConfig struct {
	TargetsFile string `yaml:"targets_file,omitempty"`
	Limit       int    `yaml:"limit"`
}

// RewardConfig holds reward estimation settings.
type RewardConfig struct {
	// RTCUSDRate is the USD value of one RTC used to cross-fill rewards.
	RTCUSDRate float64 `yaml:"rtc_usd_rate"`
}

// Load reads a config file from the given path and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := parseRaw(data)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

// Default returns a config with only default values set.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// parseRaw expands environment variables and decodes YAML without applying defaults.
func parseRaw(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// LoadWithInheritance loads a config and resolves the 'extends' reference.
// The fetcher function is used to retrieve remote configs.
func LoadWithInheritance(path string, fetcher func(ref string) ([]byte, error)) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := parseRaw(data)
	if err != nil {
		return nil, err
	}

	if cfg.Extends == "" {
		cfg.applyDefaults()
		return cfg, nil
	}

	parentData, err := fetcher(cfg.Extends)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch parent config '%s': %w", cfg.Extends, err)
	}

	parentCfg, err := parseRaw(parentData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse parent config: %w", err)
	}

	// Merge: child overrides parent
	merged := mergeConfigs(parentCfg, cfg)
	merged.applyDefaults()

	return merged, nil
}

// FindConfigPath searches for a config file in standard locations.
func FindConfigPath(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	candidates := []string{
		".github/bounty-hunter.yaml",
		".github/bounty-hunter.yml",
		".bounty-hunter.yaml",
		".bounty-hunter.yml",
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			abs, _ := filepath.Abs(c)
			return abs
		}
	}

	return ""
}

// applyDefaults sets default values for unset fields.
func (c *Config) applyDefaults() {
	if c.GitHub.Timeout == 0 {
		c.GitHub.Timeout = 30 * time.Second
	}
	if c.Scan.Owner == "" {
		c.Scan.Owner = "Scottcjn"
	}
	if c.Scan.Repo == "" {
		c.Scan.Repo = "rustchain-bounties"
	}
	if c.Scan.Label == "" {
		c.Scan.Label = "bounty"
	}
	if c.Scan.Top == 0 {
		c.Scan.Top = 10
	}
	if c.Scan.Limit == 0 {
		c.Scan.Limit = 200
	}
	if c.Monitor.Limit == 0 {
		c.Monitor.Limit = 200
	}
	if c.Reward.RTCUSDRate == 0 {
		c.Reward.RTCUSDRate = 0.10
	}
}

// mergeConfigs merges a child config onto a parent config.
// Non-zero values in child override parent.
func mergeConfigs(parent, child *Config) *Config {
	result := *parent

	if child.Workflow != "" {
		result.Workflow = child.Workflow
	}
	if len(child.Steps) > 0 {
		result.Steps = child.Steps
	}

	if child.GitHub.Token != "" {
		result.GitHub.Token = child.GitHub.Token
	}
	if child.GitHub.BaseURL != "" {
		result.GitHub.BaseURL = child.GitHub.BaseURL
	}
	if child.GitHub.Timeout != 0 {
		result.GitHub.Timeout = child.GitHub.Timeout
	}

	if child.Scan.Owner != "" {
		result.Scan.Owner = child.Scan.Owner
	}
	if child.Scan.Repo != "" {
		result.Scan.Repo = child.Scan.Repo
	}
	if child.Scan.Label != "" {
		result.Scan.Label = child.Scan.Label
	}
	if child.Scan.Top != 0 {
		result.Scan.Top = child.Scan.Top
	}
	// MinUSD: always take the child value so a child can lower the floor to zero
	result.Scan.MinUSD = child.Scan.MinUSD
	if child.Scan.Limit != 0 {
		result.Scan.Limit = child.Scan.Limit
	}

	if child.Operator.Handle != "" {
		result.Operator.Handle = child.Operator.Handle
	}
	if child.Operator.Wallet != "" {
		result.Operator.Wallet = child.Operator.Wallet
	}

	if child.Monitor.TargetsFile != "" {
		result.Monitor.TargetsFile = child.Monitor.TargetsFile
	}
	if child.Monitor.Limit != 0 {
		result.Monitor.Limit = child.Monitor.Limit
	}

	if child.Reward.RTCUSDRate != 0 {
		result.Reward.RTCUSDRate = child.Reward.RTCUSDRate
	}

	return &result
}

// ParseExtendsRef parses "org/repo@branch" into components.
func ParseExtendsRef(ref string) (org, repo, branch, path string, err error) {
	// Format: org/repo@branch or org/repo@branch:path
	parts := strings.SplitN(ref, "@", 2)
	if len(parts) != 2 {
		return "", "", "", "", fmt.Errorf("invalid extends reference: %s (expected org/repo@branch)", ref)
	}

	orgRepo := strings.SplitN(parts[0], "/", 2)
	if len(orgRepo) != 2 {
		return "", "", "", "", fmt.Errorf("invalid extends reference: %s (expected org/repo)", ref)
	}

	org = orgRepo[0]
	repo = orgRepo[1]

	branchPath := strings.SplitN(parts[1], ":", 2)
	branch = branchPath[0]
	if len(branchPath) == 2 {
		path = branchPath[1]
	} else {
		path = ".github/bounty-hunter.yaml"
	}

	return org, repo, branch, path, nil
}
