package triage

// Lead is a ranked candidate bounty issue.
type Lead struct {
	Number        int        `json:"number"`
	Title         string     `json:"title"`
	URL           string     `json:"url"`
	UpdatedAt     string     `json:"updated_at"`
	RewardRTC     float64    `json:"reward_rtc"`
	RewardUSD     float64    `json:"reward_usd"`
	Difficulty    Difficulty `json:"difficulty"`
	CapabilityFit float64    `json:"capability_fit"`
	Score         float64    `json:"score"`
}

// Issue is the subset of a platform issue needed to build a lead.
type Issue struct {
	Number    int
	Title     string
	Body      string
	URL       string
	UpdatedAt string
}

// NewLead builds a lead from an issue and its computed signals, rounding the
// reported figures the way they are displayed.
func NewLead(issue Issue, reward Reward, d Difficulty, fit, score float64) Lead {
	return Lead{
		Number:        issue.Number,
		Title:         issue.Title,
		URL:           issue.URL,
		UpdatedAt:     issue.UpdatedAt,
		RewardRTC:     Round(reward.RTC, 3),
		RewardUSD:     Round(reward.USD, 2),
		Difficulty:    d,
		CapabilityFit: Round(fit, 3),
		Score:         score,
	}
}

// Evaluate runs the full scoring chain on a single issue.
func (p *RewardParser) Evaluate(issue Issue) Lead {
	reward := p.Parse(issue.Body, issue.Title)
	d := EstimateDifficulty(issue.Title, issue.Body)
	fit := CapabilityFit(issue.Title, issue.Body)
	return NewLead(issue, reward, d, fit, RankScore(reward.USD, d, fit))
}
