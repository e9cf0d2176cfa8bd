// Package payout classifies where a claimed bounty stands in its payout
// pipeline and what the operator should do next.
package payout

import (
	"github.com/similigh/bounty-hunter/internal/utils/text"
)

// Signal is a coarse payout state mined from comment text.
type Signal string

const (
	SignalPaid        Signal = "paid"
	SignalQueued      Signal = "queued"
	SignalNeedsUpdate Signal = "needs_update"
	SignalNone        Signal = "none"
)

type signalRule struct {
	phrases []string
	signal  Signal
}

// signalRules are checked in order against the lower-cased comment text.
var signalRules = []signalRule{
	{phrases: []string{"paid", "payout sent", "confirmed payout"}, signal: SignalPaid},
	{phrases: []string{"payout queued", "queued id", "pending id"}, signal: SignalQueued},
	{phrases: []string{"changes requested", "please update", "partial progress"}, signal: SignalNeedsUpdate},
}

// SignalFromComments derives the payout signal from all comment bodies.
func SignalFromComments(comments []text.Comment) Signal {
	joined := text.JoinCommentBodies(comments)
	for _, rule := range signalRules {
		if text.ContainsAny(joined, rule.phrases) {
			return rule.signal
		}
	}
	return SignalNone
}
