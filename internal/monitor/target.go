// Package monitor tracks claimed bounty issues and their pull requests
// through to payout.
package monitor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Target is an issue, optionally paired with the pull request submitted for it.
type Target struct {
	IssueRepo string `json:"issue_repo" yaml:"issue_repo"`
	Issue     int    `json:"issue" yaml:"issue"`
	PRRepo    string `json:"pr_repo,omitempty" yaml:"pr_repo,omitempty"`
	PR        *int   `json:"pr,omitempty" yaml:"pr,omitempty"`
	Label     string `json:"label,omitempty" yaml:"label,omitempty"`
}

// withDefaults fills the PR repository and label when they are unset.
func (t Target) withDefaults() Target {
	if t.PRRepo == "" {
		t.PRRepo = t.IssueRepo
	}
	if t.Label == "" {
		t.Label = fmt.Sprintf("%s#%d", t.IssueRepo, t.Issue)
	}
	return t
}

// key identifies a target for deduplication.
func (t Target) key() string {
	pr := "-"
	if t.PR != nil {
		pr = fmt.Sprintf("%d", *t.PR)
	}
	return fmt.Sprintf("%s#%d|%s#%s", t.IssueRepo, t.Issue, t.PRRepo, pr)
}

// IssueURL returns the browser URL of the target issue.
func (t Target) IssueURL() string {
	return fmt.Sprintf("https://github.com/%s/issues/%d", t.IssueRepo, t.Issue)
}

// PRURL returns the browser URL of the target pull request, or "" if unset.
func (t Target) PRURL() string {
	if t.PR == nil {
		return ""
	}
	return fmt.Sprintf("https://github.com/%s/pull/%d", t.PRRepo, *t.PR)
}

// LoadTargets reads a list of targets from a JSON or YAML file.
// YAML is used for .yaml and .yml files. A document that is not a list
// yields no targets.
func LoadTargets(path string) ([]Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read targets file: %w", err)
	}

	var targets []Target
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		targets, err = parseYAMLTargets(data)
	default:
		targets, err = parseJSONTargets(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse targets file %s: %w", path, err)
	}

	for i, t := range targets {
		if t.IssueRepo == "" || t.Issue <= 0 {
			return nil, fmt.Errorf("target %d in %s: issue_repo and issue are required", i, path)
		}
		targets[i] = t.withDefaults()
	}
	return targets, nil
}

func parseJSONTargets(data []byte) ([]Target, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, nil
	}
	var targets []Target
	if err := json.Unmarshal(trimmed, &targets); err != nil {
		return nil, err
	}
	return targets, nil
}

func parseYAMLTargets(data []byte) ([]Target, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.SequenceNode {
		return nil, nil
	}
	var targets []Target
	if err := doc.Content[0].Decode(&targets); err != nil {
		return nil, err
	}
	return targets, nil
}
