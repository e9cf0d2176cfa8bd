package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the CLI with args against a config pointing at server.
func execute(t *testing.T, server *httptest.Server, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GITHUB_TOKEN", "")

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = time.Now })

	cfgPath := filepath.Join(t.TempDir(), "bounty-hunter.yaml")
	cfg := "scan:\n  owner: o\n  repo: r\noperator:\n  handle: me\n  wallet: wallet-1\n"
	if server != nil {
		cfg += fmt.Sprintf("github:\n  base_url: %s\n", server.URL)
	}
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func newServer(t *testing.T, mux *http.ServeMux) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestScanCommand(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/o/r/issues", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bounty", r.URL.Query().Get("labels"))
		fmt.Fprint(w, `[
			{"number": 1, "title": "[BOUNTY] small (10 RTC)", "body": "", "html_url": "https://github.com/o/r/issues/1"},
			{"number": 2, "title": "[BOUNTY] python docs (200 RTC)", "body": "", "html_url": "https://github.com/o/r/issues/2"},
			{"number": 3, "title": "PR", "pull_request": {"url": "x"}}
		]`)
	})
	server := newServer(t, mux)

	out, err := execute(t, server, "scan", "--min-usd", "5")
	require.NoError(t, err)

	var got scanOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "2026-03-01 12:00:00 UTC", got.GeneratedAt)
	_, err = uuid.Parse(got.RunID)
	assert.NoError(t, err)
	require.Equal(t, 1, got.Count)
	assert.Equal(t, 2, got.Leads[0].Number)
	assert.Equal(t, 20.0, got.Leads[0].RewardUSD)
}

func TestScanCommandEmptyLeadsIsList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/o/r/issues", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})

	out, err := execute(t, newServer(t, mux), "scan")
	require.NoError(t, err)
	assert.Contains(t, out, `"leads": []`)
	assert.Contains(t, out, `"count": 0`)
}

func TestScanCommandTable(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/o/r/issues", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"number": 7, "title": "[BOUNTY] bot (50 RTC)", "body": ""}]`)
	})

	out, err := execute(t, newServer(t, mux), "--format", "table", "scan")
	require.NoError(t, err)
	assert.Contains(t, out, "Bounty leads (1)")
	assert.Contains(t, out, "#7")
}

func TestScanCommandListingError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/o/r/issues", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "boom"}`, http.StatusInternalServerError)
	})

	_, err := execute(t, newServer(t, mux), "scan")
	assert.Error(t, err)
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, nil, "--format", "xml", "submit-template", "--pr", "x", "--summary", "y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --format")
}

func TestClaimTemplateCommand(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/o/r/issues/34", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"number": 34, "title": "[BOUNTY] Python SDK (75 RTC)"}`)
	})

	out, err := execute(t, newServer(t, mux), "claim-template", "--issue", "34")
	require.NoError(t, err)
	assert.Contains(t, out, "Claiming this bounty.\n\n- GitHub: @me\n")
	assert.Contains(t, out, "- RTC wallet (miner id): wallet-1\n")
	assert.Contains(t, out, "- Target issue: #34 [BOUNTY] Python SDK (75 RTC)\n")
}

func TestClaimTemplateCommandIssueError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/o/r/issues/34", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := execute(t, newServer(t, mux), "claim-template", "--issue", "34")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "o/r#34")
}

func TestSubmitTemplateCommand(t *testing.T) {
	out, err := execute(t, nil, "submit-template",
		"--handle", "other",
		"--pr", "https://github.com/o/r/pull/1",
		"--pr", "https://github.com/o/r/pull/2",
		"--summary", "Done.")
	require.NoError(t, err)

	want := strings.Join([]string{
		"Submission update:",
		"",
		"- GitHub: @other",
		"- RTC wallet (miner id): wallet-1",
		"- PR links:",
		"  1) https://github.com/o/r/pull/1",
		"  2) https://github.com/o/r/pull/2",
		"",
		"Summary:",
		"Done.",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestMonitorCommandNoTargets(t *testing.T) {
	out, err := execute(t, nil, "monitor")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "no monitor targets found", got["note"])
	assert.Equal(t, []interface{}{}, got["rows"])
	assert.Equal(t, "2026-03-01 12:00:00 UTC", got["generated_at"])
}

func TestMonitorCommandTargetsFile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/o/r/issues/5", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"number": 5, "state": "open"}`)
	})
	mux.HandleFunc("/repos/o/r/issues/5/comments", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"user": {"login": "maintainer"}, "body": "Merged, payout queued."}]`)
	})
	mux.HandleFunc("/repos/o/r/pulls/6", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"number": 6, "state": "closed", "merged": true}`)
	})
	server := newServer(t, mux)

	targets := filepath.Join(t.TempDir(), "targets.json")
	require.NoError(t, os.WriteFile(targets, []byte(`[{"issue_repo": "o/r", "issue": 5, "pr": 6}]`), 0o644))

	out, err := execute(t, server, "monitor", "--targets-file", targets)
	require.NoError(t, err)

	var got struct {
		Rows []map[string]interface{} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Rows, 1)
	row := got.Rows[0]
	assert.Equal(t, "o/r#5", row["label"])
	assert.Equal(t, "https://github.com/o/r/pull/6", row["pr"])
	assert.Equal(t, "open", row["issue_state"])
	assert.Equal(t, "closed", row["pr_state"])
	assert.Equal(t, true, row["merged"])
	assert.Equal(t, "queued", row["payout_signal"])
	assert.Equal(t, "wait_payout_queue", row["payout_action"])
	assert.NotContains(t, out, `"note"`)
}

func TestMonitorCommandAutoDiscover(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search/issues", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "repo:o/r commenter:me", r.URL.Query().Get("q"))
		fmt.Fprint(w, `{"total_count": 1, "items": [{"number": 9, "repository_url": "https://api.github.com/repos/o/r"}]}`)
	})
	mux.HandleFunc("/repos/o/r/issues/9/comments", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"user": {"login": "me"}, "body": "Claiming."}]`)
	})
	mux.HandleFunc("/repos/o/r/issues/9", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"number": 9, "state": "open"}`)
	})

	out, err := execute(t, newServer(t, mux), "monitor", "--auto-discover")
	require.NoError(t, err)
	assert.Contains(t, out, `"pr_state": "missing"`)
	assert.Contains(t, out, `"payout_action": "wait_for_review"`)
}

func TestPostCommentDryRunWithoutToken(t *testing.T) {
	called := false
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/o/r/issues/3/comments", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	out, err := execute(t, newServer(t, mux), "post-comment", "--issue", "3", "--body", "hello", "--confirm", "--no-dry-run")
	require.NoError(t, err)
	assert.False(t, called)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "dry-run", got["mode"])
	assert.Equal(t, "o/r#3", got["target"])
	assert.Equal(t, "hello", got["body_preview"])
	assert.Equal(t, false, got["posted"])
}

func TestPostCommentLive(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/o/r/issues/3/comments", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id": 1, "html_url": "https://github.com/o/r/issues/3#issuecomment-1"}`)
	})

	out, err := execute(t, newServer(t, mux), "--token", "secret", "post-comment", "--issue", "3", "--body", "hello", "--confirm", "--no-dry-run")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "live", got["mode"])
	assert.Equal(t, true, got["posted"])
	assert.Equal(t, "https://github.com/o/r/issues/3#issuecomment-1", got["comment_url"])
	assert.NotContains(t, got, "body_preview")
}
