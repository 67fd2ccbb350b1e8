package stats

import (
	"errors"
	"fmt"
	"sort"

	"iconomi-ranker/internal/dto"
)

// ErrStrategyNotRanked is matched by every *MissingStrategyError.
var ErrStrategyNotRanked = errors.New("strategy not ranked")

// MissingStrategyError reports a strategy that appears in one ranking but not in the other.
type MissingStrategyError struct {
	Name    string
	Ranking string
}

func (e *MissingStrategyError) Error() string {
	return fmt.Sprintf("strategy %q is missing from ranking %s", e.Name, e.Ranking)
}

func (e *MissingStrategyError) Is(target error) bool {
	return target == ErrStrategyNotRanked
}

// Rank returns a new ranking sorted by returns, highest first. Ties keep input order.
func Rank(summaries []dto.StrategySummary) dto.Ranking {
	ranking := make(dto.Ranking, len(summaries))
	copy(ranking, summaries)
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Returns > ranking[j].Returns
	})
	return ranking
}

// TopN returns a copy of the first n entries of the ranking.
func TopN(ranking dto.Ranking, n int) dto.Ranking {
	if n <= 0 {
		return dto.Ranking{}
	}
	if n > len(ranking) {
		n = len(ranking)
	}
	top := make(dto.Ranking, n)
	copy(top, ranking[:n])
	return top
}

// MergeRankings lines up the positions of every strategy of rank1 with its position in rank2,
// using the default LINEAR / WEIGHTED labels.
func MergeRankings(rank1, rank2 []dto.StrategySummary) (dto.ComparisonTable, error) {
	return MergeLabeled(dto.RankingLabelLinear, rank1, dto.RankingLabelWeighted, rank2)
}

// MergeLabeled sorts both inputs and builds one row per strategy in rank1's order.
// Positions are 1-based. If a strategy of rank1 is absent from rank2 no table is returned.
func MergeLabeled(label1 string, rank1 []dto.StrategySummary, label2 string, rank2 []dto.StrategySummary) (dto.ComparisonTable, error) {
	sorted1 := Rank(rank1)
	positions2 := positionsByName(Rank(rank2))

	rows := make([]dto.ComparisonRow, 0, len(sorted1))
	for i, s := range sorted1 {
		pos2, ok := positions2[s.Name]
		if !ok {
			return dto.ComparisonTable{}, &MissingStrategyError{Name: s.Name, Ranking: label2}
		}
		rows = append(rows, dto.ComparisonRow{
			Name:          s.Name,
			Rank1Position: i + 1,
			Rank2Position: pos2,
		})
	}

	return dto.ComparisonTable{
		Rank1Label: label1,
		Rank2Label: label2,
		Rows:       rows,
	}, nil
}

// positionsByName keeps the first position of a name should it repeat.
func positionsByName(ranking dto.Ranking) map[string]int {
	positions := make(map[string]int, len(ranking))
	for i, s := range ranking {
		if _, ok := positions[s.Name]; !ok {
			positions[s.Name] = i + 1
		}
	}
	return positions
}
