package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"iconomi-ranker/internal/dto"
	"iconomi-ranker/pkg/render"

	"github.com/spf13/cobra"
)

var (
	aumMin    float64
	topN      int
	blacklist []string
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Print the top strategies by linear and weighted average returns",
	Run:   Rank,
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Print the linear vs weighted rank of every strategy",
	Run:   Compare,
}

func init() {
	for _, c := range []*cobra.Command{rankCmd, compareCmd} {
		c.Flags().Float64Var(&aumMin, "aum-min", 0, "minimum assets under management (default from config)")
		c.Flags().StringSliceVar(&blacklist, "blacklist", nil, "tickers to leave out of the rankings (default from config)")
	}
	rankCmd.Flags().IntVar(&topN, "top", 0, "number of strategies per ranking (default from config)")
}

// rankingParams merges command line overrides into the configured defaults.
func rankingParams(cmd *cobra.Command, defaults dto.RankingParams) dto.RankingParams {
	params := defaults
	if cmd.Flags().Changed("aum-min") {
		params.AUMMin = aumMin
	}
	if cmd.Flags().Changed("blacklist") {
		params.Blacklist = blacklist
	}
	return params
}

func buildReport(cmd *cobra.Command) (*AppDependency, *dto.RankingReport) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency(ctx, false)
	if err != nil {
		log.Fatalf("Failed to create app dependency: %v", err)
	}

	services := appDep.NewService()
	params := rankingParams(cmd, services.RankingService.DefaultParams())

	report, err := services.RankingService.BuildReport(ctx, params)
	if err != nil {
		log.Fatalf("Failed to build ranking: %v", err)
	}
	return appDep, report
}

func Rank(cmd *cobra.Command, args []string) {
	appDep, report := buildReport(cmd)
	defer appDep.Close()

	n := appDep.cfg.Ranking.TopN
	if cmd.Flags().Changed("top") {
		n = topN
	}

	if err := render.WriteReport(cmd.OutOrStdout(), report, n); err != nil {
		log.Fatalf("Failed to print ranking: %v", err)
	}
}

func Compare(cmd *cobra.Command, args []string) {
	appDep, report := buildReport(cmd)
	defer appDep.Close()

	if err := render.WriteComparison(cmd.OutOrStdout(), report.Comparison); err != nil {
		log.Fatalf("Failed to print comparison: %v", err)
	}
}
