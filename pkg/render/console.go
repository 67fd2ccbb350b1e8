package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"iconomi-ranker/internal/dto"
	"iconomi-ranker/internal/stats"
	"iconomi-ranker/pkg/utils"
)

const (
	TitleLinearRanking   = "PURE STATS RANKING"
	TitleWeightedRanking = "WEIGHTED STATS RANKING"
)

// Rounded returns a copy of the ranking with every metric rounded to two decimals.
func Rounded(ranking dto.Ranking) dto.Ranking {
	out := make(dto.Ranking, 0, len(ranking))
	for _, s := range ranking {
		out = append(out, dto.StrategySummary{
			Ticker:      s.Ticker,
			Name:        s.Name,
			Returns:     utils.Round2(s.Returns),
			Volatility:  utils.Round2(s.Volatility),
			MaxDrawdown: utils.Round2(s.MaxDrawdown),
		})
	}
	return out
}

// WriteStrategyList prints one line per strategy, metrics rounded to two decimals.
func WriteStrategyList(w io.Writer, ranking dto.Ranking) error {
	for _, s := range ranking {
		_, err := fmt.Fprintf(w, "ticker=%s name=%q returns=%s volatility=%s maxDrawdown=%s\n",
			s.Ticker,
			s.Name,
			utils.FormatFloat(s.Returns),
			utils.FormatFloat(s.Volatility),
			utils.FormatFloat(s.MaxDrawdown),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteReport prints the strategy count header followed by the top n of both rankings.
func WriteReport(w io.Writer, report *dto.RankingReport, n int) error {
	if _, err := fmt.Fprintf(w, "NUMBER OF STRATEGIES WITH AUM HIGHER THAN %s: %d\n",
		utils.FormatMillions(report.AUMMin), report.StrategyCount); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", TitleLinearRanking); err != nil {
		return err
	}
	if err := WriteStrategyList(w, stats.TopN(report.Linear, n)); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", TitleWeightedRanking); err != nil {
		return err
	}
	return WriteStrategyList(w, stats.TopN(report.Weighted, n))
}

// WriteComparison prints the comparison table as aligned NAME / rank1 / rank2 columns.
func WriteComparison(w io.Writer, table dto.ComparisonTable) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "NAME\t%s\t%s\n", table.Rank1Label, table.Rank2Label)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		strings.Repeat("-", len("NAME")),
		strings.Repeat("-", len(table.Rank1Label)),
		strings.Repeat("-", len(table.Rank2Label)),
	)
	for _, row := range table.Rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", row.Name, row.Rank1Position, row.Rank2Position)
	}

	return tw.Flush()
}
