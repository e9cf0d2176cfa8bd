package triage

import "github.com/shopspring/decimal"

// difficultyPenalty is subtracted from the score per tier.
var difficultyPenalty = map[Difficulty]float64{
	DifficultyLow:    0.0,
	DifficultyMedium: 0.8,
	DifficultyHigh:   1.6,
}

// RankScore combines reward, difficulty and fit into an ordering score.
// Higher is better. Unknown tiers carry no penalty.
func RankScore(rewardUSD float64, d Difficulty, fit float64) float64 {
	return Round(rewardUSD/25.0+fit*3.0-difficultyPenalty[d], 3)
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
