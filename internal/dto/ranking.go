package dto

import "time"

const (
	RankingLabelLinear   = "LINEAR"
	RankingLabelWeighted = "WEIGHTED"
)

// StrategySummary carries the averaged metrics of one strategy under a single averaging policy.
type StrategySummary struct {
	Ticker      string  `json:"ticker"`
	Name        string  `json:"name"`
	Returns     float64 `json:"returns"`
	Volatility  float64 `json:"volatility"`
	MaxDrawdown float64 `json:"maxDrawdown"`
}

// Ranking is a sequence of summaries sorted by returns, highest first.
type Ranking []StrategySummary

type ComparisonRow struct {
	Name          string `json:"name"`
	Rank1Position int    `json:"rank1Position"`
	Rank2Position int    `json:"rank2Position"`
}

// ComparisonTable lines up the positions of every strategy in two rankings.
type ComparisonTable struct {
	Rank1Label string          `json:"rank1Label"`
	Rank2Label string          `json:"rank2Label"`
	Rows       []ComparisonRow `json:"rows"`
}

// RankingReport is the outcome of one full pipeline run.
type RankingReport struct {
	GeneratedAt   time.Time       `json:"generatedAt"`
	AUMMin        float64         `json:"aumMin"`
	StrategyCount int             `json:"strategyCount"`
	Linear        Ranking         `json:"linear"`
	Weighted      Ranking         `json:"weighted"`
	Comparison    ComparisonTable `json:"comparison"`
}

// RankingParams overrides the configured pipeline inputs for a single run.
type RankingParams struct {
	AUMMin    float64
	Blacklist []string
}

// GetRankingRequest is bound from the query string of the rankings endpoint.
type GetRankingRequest struct {
	Weighted bool `query:"weighted"`
	Limit    int  `query:"limit" validate:"omitempty,min=1,max=500"`
}
