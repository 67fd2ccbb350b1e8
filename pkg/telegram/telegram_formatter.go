package telegram

import (
	"fmt"
	"strings"

	"iconomi-ranker/internal/dto"
	"iconomi-ranker/internal/stats"
	"iconomi-ranker/pkg/utils"
)

// FormatRankingReport formats the top n of both rankings as a Markdown message.
func FormatRankingReport(report *dto.RankingReport, n int) string {
	var builder strings.Builder

	builder.WriteString("📊 *ICONOMI Strategy Ranking*\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n", utils.PrettyDate(report.GeneratedAt)))
	builder.WriteString(fmt.Sprintf("💰 AUM ≥ %s: %d strategies\n", utils.FormatMillions(report.AUMMin), report.StrategyCount))

	writeRankingSection(&builder, "📈 *Linear*", stats.TopN(report.Linear, n))
	writeRankingSection(&builder, "⚖️ *Weighted*", stats.TopN(report.Weighted, n))

	return builder.String()
}

func writeRankingSection(builder *strings.Builder, title string, ranking dto.Ranking) {
	builder.WriteString(fmt.Sprintf("\n%s\n", title))
	if len(ranking) == 0 {
		builder.WriteString("_no strategies_\n")
		return
	}
	for i, s := range ranking {
		builder.WriteString(fmt.Sprintf("%d. %s (%s) ret %s | vol %s | mdd %s\n",
			i+1,
			utils.EscapeMarkdown(s.Name),
			utils.EscapeMarkdown(s.Ticker),
			utils.FormatFloat(s.Returns),
			utils.FormatFloat(s.Volatility),
			utils.FormatFloat(s.MaxDrawdown),
		))
	}
}
