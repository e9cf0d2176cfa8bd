package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigDefaults verifies that default values are applied correctly.
func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.GitHub.Timeout != 30*time.Second {
		t.Errorf("Expected GitHub.Timeout to be 30s, got %v", cfg.GitHub.Timeout)
	}
	if cfg.Scan.Label != "bounty" {
		t.Errorf("Expected Scan.Label to be 'bounty', got %s", cfg.Scan.Label)
	}
	if cfg.Scan.Top != 10 {
		t.Errorf("Expected Scan.Top to be 10, got %d", cfg.Scan.Top)
	}
	if cfg.Monitor.Limit != 200 {
		t.Errorf("Expected Monitor.Limit to be 200, got %d", cfg.Monitor.Limit)
	}
	if cfg.Reward.RTCUSDRate != 0.10 {
		t.Errorf("Expected Reward.RTCUSDRate to be 0.10, got %f", cfg.Reward.RTCUSDRate)
	}
}

func TestParseRaw(t *testing.T) {
	t.Setenv("BOUNTY_TOKEN", "from-env")

	yamlContent := `
github:
  token: "${BOUNTY_TOKEN}"
  timeout: 45s
scan:
  owner: acme
  repo: bounties
  min_usd: 5
operator:
  handle: alice
  wallet: miner-1
reward:
  rtc_usd_rate: 0.25
workflow: lead-scoring
`
	cfg, err := parseRaw([]byte(yamlContent))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.GitHub.Token)
	assert.Equal(t, 45*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, "acme", cfg.Scan.Owner)
	assert.Equal(t, "bounties", cfg.Scan.Repo)
	assert.Equal(t, 5.0, cfg.Scan.MinUSD)
	assert.Equal(t, "alice", cfg.Operator.Handle)
	assert.Equal(t, "miner-1", cfg.Operator.Wallet)
	assert.Equal(t, 0.25, cfg.Reward.RTCUSDRate)
	assert.Equal(t, "lead-scoring", cfg.Workflow)
	// parseRaw leaves defaults alone
	assert.Equal(t, 0, cfg.Scan.Top)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bounty-hunter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scan:\n  top: 3\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Scan.Top)
	assert.Equal(t, "bounty", cfg.Scan.Label)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scan: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadWithInheritance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "child.yaml")
	child := "extends: acme/config@main\nscan:\n  top: 4\noperator:\n  handle: bob\n"
	require.NoError(t, os.WriteFile(path, []byte(child), 0644))

	var requested string
	fetcher := func(ref string) ([]byte, error) {
		requested = ref
		return []byte("scan:\n  owner: acme\n  repo: parent-repo\n  top: 20\noperator:\n  handle: alice\n  wallet: parent-wallet\n"), nil
	}

	cfg, err := LoadWithInheritance(path, fetcher)
	require.NoError(t, err)

	assert.Equal(t, "acme/config@main", requested)
	assert.Equal(t, "acme", cfg.Scan.Owner)
	assert.Equal(t, "parent-repo", cfg.Scan.Repo)
	assert.Equal(t, 4, cfg.Scan.Top)
	assert.Equal(t, "bob", cfg.Operator.Handle)
	assert.Equal(t, "parent-wallet", cfg.Operator.Wallet)
	assert.Equal(t, "bounty", cfg.Scan.Label)
}

func TestLoadWithInheritance_FetchError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "child.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extends: acme/config@main\n"), 0644))

	_, err := LoadWithInheritance(path, func(string) ([]byte, error) {
		return nil, errors.New("offline")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acme/config@main")
}

func TestLoadWithInheritance_NoExtends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scan:\n  label: good-first-bounty\n"), 0644))

	cfg, err := LoadWithInheritance(path, func(string) ([]byte, error) {
		t.Fatal("fetcher should not be called")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "good-first-bounty", cfg.Scan.Label)
	assert.Equal(t, 10, cfg.Scan.Top)
}

func TestMergeConfigs(t *testing.T) {
	parent := Default()
	parent.Scan.MinUSD = 10
	parent.Reward.RTCUSDRate = 0.2

	child := &Config{
		Scan: ScanConfig{Repo: "other"},
	}

	merged := mergeConfigs(parent, child)
	assert.Equal(t, "other", merged.Scan.Repo)
	assert.Equal(t, "Scottcjn", merged.Scan.Owner)
	assert.Equal(t, 0.0, merged.Scan.MinUSD, "child floor always wins")
	assert.Equal(t, 0.2, merged.Reward.RTCUSDRate)
}

func TestFindConfigPath_Explicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explicit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	assert.Equal(t, path, FindConfigPath(path))
	assert.Equal(t, "", FindConfigPath(filepath.Join(t.TempDir(), "missing.yaml")))
}

// TestParseExtendsRef verifies extends reference parsing.
func TestParseExtendsRef(t *testing.T) {
	tests := []struct {
		name        string
		ref         string
		wantOrg     string
		wantRepo    string
		wantBranch  string
		wantPath    string
		expectError bool
	}{
		{
			name:       "valid ref with default path",
			ref:        "org/repo@main",
			wantOrg:    "org",
			wantRepo:   "repo",
			wantBranch: "main",
			wantPath:   ".github/bounty-hunter.yaml",
		},
		{
			name:       "valid ref with custom path",
			ref:        "org/repo@main:custom/path.yaml",
			wantOrg:    "org",
			wantRepo:   "repo",
			wantBranch: "main",
			wantPath:   "custom/path.yaml",
		},
		{
			name:        "invalid ref missing branch",
			ref:         "org/repo",
			expectError: true,
		},
		{
			name:        "invalid ref missing repo",
			ref:         "org@main",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			org, repo, branch, path, err := ParseExtendsRef(tt.ref)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for ref %s, got nil", tt.ref)
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}

			if org != tt.wantOrg {
				t.Errorf("Expected org %s, got %s", tt.wantOrg, org)
			}
			if repo != tt.wantRepo {
				t.Errorf("Expected repo %s, got %s", tt.wantRepo, repo)
			}
			if branch != tt.wantBranch {
				t.Errorf("Expected branch %s, got %s", tt.wantBranch, branch)
			}
			if path != tt.wantPath {
				t.Errorf("Expected path %s, got %s", tt.wantPath, path)
			}
		})
	}
}
