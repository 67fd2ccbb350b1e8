package stats

import "iconomi-ranker/internal/dto"

// weightedPeriods lists the multiplier that turns each period figure into a yearly equivalent.
var weightedPeriods = []struct {
	period     dto.Period
	multiplier float64
}{
	{dto.PeriodDay, 365},
	{dto.PeriodWeek, 52},
	{dto.PeriodMonth, 12},
	{dto.PeriodThreeMonth, 4},
	{dto.PeriodSixMonth, 2},
	{dto.PeriodYear, 1},
}

// Reduce collapses a per-period statistics map into a single average.
//
// ALL_TIME is always ignored. The unweighted average divides by the number of periods
// present and returns 0 for an empty map. The weighted average annualizes every period
// and always divides by six, so missing periods pull the result towards zero.
func Reduce(periodStats dto.PeriodStatistics, weighted bool) float64 {
	if weighted {
		var sum float64
		for _, wp := range weightedPeriods {
			sum += wp.multiplier * periodStats[wp.period]
		}
		return sum / float64(len(weightedPeriods))
	}

	var (
		sum   float64
		count int
	)
	for period, value := range periodStats {
		if period == dto.PeriodAllTime {
			continue
		}
		sum += value
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// Summarize reduces the three metric kinds of a strategy under one averaging policy.
func Summarize(s dto.StrategyStats, weighted bool) dto.StrategySummary {
	return dto.StrategySummary{
		Ticker:      s.Ticker,
		Name:        s.Name,
		Returns:     Reduce(s.Returns, weighted),
		Volatility:  Reduce(s.Volatility, weighted),
		MaxDrawdown: Reduce(s.MaxDrawdown, weighted),
	}
}

func SummarizeAll(all []dto.StrategyStats, weighted bool) []dto.StrategySummary {
	summaries := make([]dto.StrategySummary, 0, len(all))
	for _, s := range all {
		summaries = append(summaries, Summarize(s, weighted))
	}
	return summaries
}
