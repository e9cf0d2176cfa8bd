// Package templates renders the canned comments posted on bounty issues.
package templates

import (
	"fmt"
	"strings"
)

// Claim returns the comment announcing a claim on an issue.
func Claim(issueNumber int, issueTitle, wallet, handle string) string {
	var b strings.Builder
	b.WriteString("Claiming this bounty.\n\n")
	fmt.Fprintf(&b, "- GitHub: @%s\n", handle)
	fmt.Fprintf(&b, "- RTC wallet (miner id): %s\n", wallet)
	fmt.Fprintf(&b, "- Target issue: #%d %s\n", issueNumber, issueTitle)
	b.WriteString("- Plan: deliver a reviewable PR with validation evidence and bounty-thread submission links.")
	return b.String()
}

// Submission returns the comment reporting finished work. PR links are
// numbered from 1 in the order given.
func Submission(wallet, handle string, prLinks []string, summary string) string {
	lines := []string{
		"Submission update:",
		"",
		"- GitHub: @" + handle,
		"- RTC wallet (miner id): " + wallet,
		"- PR links:",
	}
	for i, link := range prLinks {
		lines = append(lines, fmt.Sprintf("  %d) %s", i+1, link))
	}
	lines = append(lines, "", "Summary:", summary)
	return strings.Join(lines, "\n")
}
