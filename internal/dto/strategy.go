package dto

// Period is the granularity label ICONOMI reports a performance figure under.
type Period string

const (
	PeriodDay        Period = "DAY"
	PeriodWeek       Period = "WEEK"
	PeriodMonth      Period = "MONTH"
	PeriodThreeMonth Period = "THREE_MONTH"
	PeriodSixMonth   Period = "SIX_MONTH"
	PeriodYear       Period = "YEAR"
	PeriodAllTime    Period = "ALL_TIME"
)

// PeriodStatistics holds one metric kind (returns, volatility or max drawdown) per period.
// A missing key means the strategy has no figure for that period.
type PeriodStatistics map[Period]float64

// StrategyTicker is one entry of the strategy listing.
type StrategyTicker struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
}

// StrategyStats is the statistics payload of a single strategy.
type StrategyStats struct {
	Ticker      string           `json:"ticker"`
	Name        string           `json:"name"`
	Returns     PeriodStatistics `json:"returns"`
	Volatility  PeriodStatistics `json:"volatility"`
	MaxDrawdown PeriodStatistics `json:"maxDrawdown"`
}

// StrategyPrice is the price payload of a single strategy. AUM is null for
// strategies that never reported a balance.
type StrategyPrice struct {
	Ticker   string   `json:"ticker"`
	Price    *float64 `json:"price"`
	AUM      *float64 `json:"aum"`
	Currency string   `json:"currency"`
}

// Balances maps a strategy display name to its AUM. Absence of a name is not the same as a zero balance.
type Balances map[string]float64
