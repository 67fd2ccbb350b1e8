package stats

import (
	"errors"
	"fmt"

	"iconomi-ranker/internal/dto"
	"iconomi-ranker/pkg/utils"
)

// ErrMissingBalance is matched by every *MissingBalanceError.
var ErrMissingBalance = errors.New("missing balance")

// MissingBalanceError reports a strategy whose AUM could not be looked up.
type MissingBalanceError struct {
	Name string
}

func (e *MissingBalanceError) Error() string {
	return fmt.Sprintf("no balance found for strategy %q", e.Name)
}

func (e *MissingBalanceError) Is(target error) bool {
	return target == ErrMissingBalance
}

// FilterByAUM keeps the strategies whose balance is at least aumMin, in input order.
func FilterByAUM(strategies []dto.StrategyTicker, balances dto.Balances, aumMin float64) ([]dto.StrategyTicker, error) {
	filtered := make([]dto.StrategyTicker, 0, len(strategies))
	for _, s := range strategies {
		balance, ok := balances[s.Name]
		if !ok {
			return nil, &MissingBalanceError{Name: s.Name}
		}
		if balance >= aumMin {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

// FilterBlacklist drops the summaries whose ticker is blacklisted.
func FilterBlacklist(summaries []dto.StrategySummary, blacklist []string) []dto.StrategySummary {
	filtered := make([]dto.StrategySummary, 0, len(summaries))
	for _, s := range summaries {
		if utils.ContainsString(blacklist, s.Ticker) {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}
