package render

import (
	"bytes"
	"testing"

	"iconomi-ranker/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStrategyList(t *testing.T) {
	var buf bytes.Buffer

	err := WriteStrategyList(&buf, dto.Ranking{
		{Ticker: "BLX", Name: "Blockchain Index", Returns: 6.091666, Volatility: 0.5, MaxDrawdown: -0.126},
	})
	require.NoError(t, err)

	assert.Equal(t, "ticker=BLX name=\"Blockchain Index\" returns=6.09 volatility=0.50 maxDrawdown=-0.13\n", buf.String())
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	report := &dto.RankingReport{
		AUMMin:        500_000,
		StrategyCount: 2,
		Linear:        dto.Ranking{{Ticker: "A", Name: "Alpha", Returns: 2}, {Ticker: "B", Name: "Beta", Returns: 1}},
		Weighted:      dto.Ranking{{Ticker: "B", Name: "Beta", Returns: 9}, {Ticker: "A", Name: "Alpha", Returns: 3}},
	}

	require.NoError(t, WriteReport(&buf, report, 1))

	want := "NUMBER OF STRATEGIES WITH AUM HIGHER THAN 0.5M: 2\n" +
		"\nPURE STATS RANKING\n" +
		"ticker=A name=\"Alpha\" returns=2.00 volatility=0.00 maxDrawdown=0.00\n" +
		"\nWEIGHTED STATS RANKING\n" +
		"ticker=B name=\"Beta\" returns=9.00 volatility=0.00 maxDrawdown=0.00\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteComparison(t *testing.T) {
	var buf bytes.Buffer
	table := dto.ComparisonTable{
		Rank1Label: dto.RankingLabelLinear,
		Rank2Label: dto.RankingLabelWeighted,
		Rows: []dto.ComparisonRow{
			{Name: "Alpha", Rank1Position: 1, Rank2Position: 2},
			{Name: "Beta Strategy", Rank1Position: 2, Rank2Position: 1},
		},
	}

	require.NoError(t, WriteComparison(&buf, table))

	want := "NAME           LINEAR  WEIGHTED\n" +
		"----           ------  --------\n" +
		"Alpha          1       2\n" +
		"Beta Strategy  2       1\n"
	assert.Equal(t, want, buf.String())
}

func TestRounded(t *testing.T) {
	in := dto.Ranking{{Ticker: "A", Name: "Alpha", Returns: 1.236, Volatility: 0.001, MaxDrawdown: -2.556}}

	got := Rounded(in)

	assert.Equal(t, 1.24, got[0].Returns)
	assert.Equal(t, 0.0, got[0].Volatility)
	assert.InDelta(t, -2.56, got[0].MaxDrawdown, 1e-9)
	assert.Equal(t, 1.236, in[0].Returns, "input untouched")
}
