// Package triage scores bounty issues: it extracts a reward estimate from
// free-form issue text, estimates difficulty and capability fit from
// keywords, and combines them into a ranking score.
package triage

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/similigh/bounty-hunter/internal/utils/text"
)

// RTCUSDRef is the reference USD value of one RTC used to cross-fill a
// reward that only states one currency.
const RTCUSDRef = 0.10

// numberPattern matches "1,500", "75", "1.2" with an optional k/m suffix.
const numberPattern = `\b(\d{1,3}(?:,\d{3})+|\d+(?:\.\d+)?)([km])?\b`

var (
	titleRTCRe   = regexp.MustCompile(`(?i)` + numberPattern + `\s*RTC(?:\)|\b)`)
	rtcRe        = regexp.MustCompile(`(?i)` + numberPattern + `\s*RTC\b`)
	usdRe        = regexp.MustCompile(`(?i)\$\s*` + numberPattern)
	rewardWordRe = regexp.MustCompile(`(?i)\b(reward|earn|payout)\b`)
)

// rewardCues mark a line as describing a per-task payout.
var rewardCues = []string{"reward", "bounty", "earn", "payout", "prize"}

// Reward is a reward estimate in RTC and USD.
type Reward struct {
	RTC float64 `json:"rtc"`
	USD float64 `json:"usd"`
}

// IsZero reports whether neither currency was found.
func (r Reward) IsZero() bool {
	return r.RTC == 0 && r.USD == 0
}

// RewardParser extracts rewards using a fixed RTC to USD rate.
type RewardParser struct {
	rate float64
}

// NewRewardParser creates a parser with the given USD-per-RTC rate.
// A non-positive rate falls back to RTCUSDRef.
func NewRewardParser(rate float64) *RewardParser {
	if rate <= 0 {
		rate = RTCUSDRef
	}
	return &RewardParser{rate: rate}
}

// Rate returns the USD-per-RTC rate used for cross-filling.
func (p *RewardParser) Rate() float64 {
	return p.rate
}

var defaultParser = NewRewardParser(RTCUSDRef)

// ParseReward extracts a reward estimate using the default conversion rate.
func ParseReward(body, title string) Reward {
	return defaultParser.Parse(body, title)
}

// Parse extracts a reward estimate from an issue title and body.
//
// Amounts declared in the title win. Otherwise only lines carrying a reward
// cue are considered, and any line mentioning a "pool" is ignored since pools
// are shared budgets rather than per-task payouts. Whichever currency is
// missing is derived from the other.
func (p *RewardParser) Parse(body, title string) Reward {
	combined := text.CombinedText(title, body)
	lowerTitle := strings.ToLower(title)

	var r Reward
	if !strings.Contains(lowerTitle, "pool") {
		r.RTC = maxOf(extractAmounts(titleRTCRe, title))
	}
	r.USD = maxOf(extractAmounts(usdRe, title))

	if r.IsZero() {
		var rtcValues, usdValues []float64
		for _, line := range strings.Split(combined, "\n") {
			low := strings.ToLower(line)
			if strings.Contains(low, "pool") {
				continue
			}
			if text.ContainsAny(low, rewardCues) {
				rtcValues = append(rtcValues, extractAmounts(rtcRe, line)...)
				usdValues = append(usdValues, extractAmounts(usdRe, line)...)
			}
		}
		r.RTC = maxOf(rtcValues)
		r.USD = maxOf(usdValues)
	}

	if r.IsZero() && strings.Contains(lowerTitle, "pool") {
		return Reward{}
	}

	if r.IsZero() {
		r.RTC = maxOf(extractAmounts(rtcRe, combined))
		r.USD = maxOf(extractAmounts(usdRe, combined))
		if strings.Contains(strings.ToLower(combined), "pool") && !rewardWordRe.MatchString(combined) {
			r = Reward{}
		}
	}

	if r.USD == 0 && r.RTC > 0 {
		r.USD = r.RTC * p.rate
	}
	if r.RTC == 0 && r.USD > 0 {
		r.RTC = r.USD / p.rate
	}
	return r
}

// extractAmounts returns every amount matched by re, with thousands
// separators removed and k/m suffixes applied.
func extractAmounts(re *regexp.Regexp, s string) []float64 {
	var values []float64
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		values = append(values, v*suffixMultiplier(m[2]))
	}
	return values
}

func suffixMultiplier(suffix string) float64 {
	switch strings.ToLower(suffix) {
	case "k":
		return 1_000
	case "m":
		return 1_000_000
	default:
		return 1
	}
}

func maxOf(values []float64) float64 {
	var best float64
	for i, v := range values {
		if i == 0 || v > best {
			best = v
		}
	}
	return best
}
