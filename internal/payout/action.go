package payout

// Action is the next step the operator should take on a claimed bounty.
type Action string

const (
	ActionComplete        Action = "complete"
	ActionWaitPayoutQueue Action = "wait_payout_queue"
	ActionAddressReview   Action = "address_review"
	ActionRequestPayout   Action = "request_payout"
	ActionCheckFollowup   Action = "check_followup"
	ActionVerifyClosure   Action = "verify_closure"
	ActionWaitForReview   Action = "wait_for_review"
)

// State is the platform state of a claimed bounty.
type State struct {
	Merged     bool
	PRState    string
	IssueState string
	Signal     Signal
}

type actionRule struct {
	match  func(State) bool
	action Action
}

// actionRules are evaluated in order; comment signals take precedence over
// merge and open/closed state.
var actionRules = []actionRule{
	{func(s State) bool { return s.Signal == SignalPaid }, ActionComplete},
	{func(s State) bool { return s.Signal == SignalQueued }, ActionWaitPayoutQueue},
	{func(s State) bool { return s.Signal == SignalNeedsUpdate }, ActionAddressReview},
	{func(s State) bool { return s.Merged }, ActionRequestPayout},
	{func(s State) bool { return s.PRState == "closed" }, ActionCheckFollowup},
	{func(s State) bool { return s.IssueState == "closed" }, ActionVerifyClosure},
}

// ClassifyAction decides the next action for a claimed bounty.
func ClassifyAction(merged bool, prState, issueState string, signal Signal) Action {
	return Classify(State{Merged: merged, PRState: prState, IssueState: issueState, Signal: signal})
}

// Classify decides the next action for the given state.
func Classify(s State) Action {
	for _, rule := range actionRules {
		if rule.match(s) {
			return rule.action
		}
	}
	return ActionWaitForReview
}
