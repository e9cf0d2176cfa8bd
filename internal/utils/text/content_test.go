package text

import (
	"strings"
	"testing"
)

func TestCombinedText(t *testing.T) {
	got := CombinedText("Title", "Body")
	if got != "Title\nBody" {
		t.Errorf("CombinedText() = %q, want %q", got, "Title\nBody")
	}

	if got := CombinedText("Title", ""); got != "Title\n" {
		t.Errorf("CombinedText() with empty body = %q", got)
	}
}

func TestJoinCommentBodies(t *testing.T) {
	tests := []struct {
		name     string
		comments []Comment
		want     string
	}{
		{
			name:     "nil comments",
			comments: nil,
			want:     "",
		},
		{
			name: "single comment lower-cased",
			comments: []Comment{
				{Author: "alice", Body: "Payout SENT"},
			},
			want: "payout sent",
		},
		{
			name: "multiple comments joined with newline",
			comments: []Comment{
				{Author: "alice", Body: "First"},
				{Author: "bob", Body: ""},
				{Author: "carol", Body: "Third"},
			},
			want: "first\n\nthird",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JoinCommentBodies(tt.comments)
			if got != tt.want {
				t.Errorf("JoinCommentBodies() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContainsAny(t *testing.T) {
	if !ContainsAny("critical security fix", []string{"api", "security"}) {
		t.Error("Expected match on 'security'")
	}
	if ContainsAny("docs update", []string{"api", "security"}) {
		t.Error("Expected no match")
	}
	if ContainsAny("anything", nil) {
		t.Error("Expected no match for empty term list")
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"shorter than limit", "hello", 10, "hello"},
		{"exact limit", "hello", 5, "hello"},
		{"truncated", "hello world", 5, "hello"},
		{"multibyte runes kept whole", "héllo wörld", 7, "héllo w"},
		{"zero limit", "hello", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Preview(tt.in, tt.limit)
			if got != tt.want {
				t.Errorf("Preview(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
		})
	}

	long := strings.Repeat("x", 500)
	if got := Preview(long, 280); len(got) != 280 {
		t.Errorf("Expected 280 chars, got %d", len(got))
	}
}
