// Package text holds the small string helpers shared by the triage and
// monitoring packages.
package text

import (
	"strings"
)

// Comment represents a single issue/PR comment.
type Comment struct {
	Author string
	Body   string
}

// CombinedText joins an issue title and body the way every keyword matcher
// sees them: title on the first line, body after it.
func CombinedText(title, body string) string {
	return title + "\n" + body
}

// JoinCommentBodies lower-cases and joins all comment bodies with newlines.
// Comments with empty bodies still contribute an empty line.
func JoinCommentBodies(comments []Comment) string {
	parts := make([]string, 0, len(comments))
	for _, c := range comments {
		parts = append(parts, strings.ToLower(c.Body))
	}
	return strings.Join(parts, "\n")
}

// ContainsAny reports whether lowerText contains any of the terms.
// Terms are expected to be lower case already.
func ContainsAny(lowerText string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lowerText, term) {
			return true
		}
	}
	return false
}

// Preview returns at most limit runes of s.
func Preview(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
