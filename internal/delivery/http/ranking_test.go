package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"iconomi-ranker/internal/dto"
	"iconomi-ranker/internal/service"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRankingService struct {
	report *dto.RankingReport
	err    error
}

func (f *fakeRankingService) BuildReport(ctx context.Context, params dto.RankingParams) (*dto.RankingReport, error) {
	return f.report, f.err
}

func (f *fakeRankingService) Refresh(ctx context.Context) (*dto.RankingReport, error) {
	return f.report, f.err
}

func (f *fakeRankingService) GetLatestReport(ctx context.Context) (*dto.RankingReport, error) {
	return f.report, f.err
}

func (f *fakeRankingService) DefaultParams() dto.RankingParams {
	return dto.RankingParams{}
}

func newTestHandler(rs service.RankingService) *echo.Echo {
	e := echo.New()
	h := NewHttpAPIHandler(context.Background(), e, goValidator.New(), &service.Service{RankingService: rs})
	h.SetupRoutes()
	return e
}

func testReport() *dto.RankingReport {
	return &dto.RankingReport{
		GeneratedAt:   time.Date(2026, time.October, 19, 6, 0, 0, 0, time.UTC),
		AUMMin:        500_000,
		StrategyCount: 3,
		Linear: dto.Ranking{
			{Ticker: "AAA", Name: "Alpha", Returns: 3.14159, Volatility: 1.005, MaxDrawdown: -0.333},
			{Ticker: "BBB", Name: "Beta", Returns: 2},
			{Ticker: "CCC", Name: "Gamma", Returns: 1},
		},
		Weighted: dto.Ranking{
			{Ticker: "CCC", Name: "Gamma", Returns: 30},
			{Ticker: "AAA", Name: "Alpha", Returns: 20},
			{Ticker: "BBB", Name: "Beta", Returns: 10},
		},
		Comparison: dto.ComparisonTable{
			Rank1Label: dto.RankingLabelLinear,
			Rank2Label: dto.RankingLabelWeighted,
			Rows: []dto.ComparisonRow{
				{Name: "Alpha", Rank1Position: 1, Rank2Position: 2},
				{Name: "Beta", Rank1Position: 2, Rank2Position: 3},
				{Name: "Gamma", Rank1Position: 3, Rank2Position: 1},
			},
		},
	}
}

type rankingBody struct {
	Code int `json:"code"`
	Data struct {
		GeneratedAt   string      `json:"generatedAt"`
		StrategyCount int         `json:"strategyCount"`
		Weighted      bool        `json:"weighted"`
		Ranking       dto.Ranking `json:"ranking"`
	} `json:"data"`
}

func doGet(t *testing.T, e *echo.Echo, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetRanking(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantCode  int
		wantNames []string
		weighted  bool
	}{
		{name: "linear default limit", target: "/api/rankings", wantCode: http.StatusOK, wantNames: []string{"Alpha", "Beta", "Gamma"}},
		{name: "linear limited", target: "/api/rankings?limit=2", wantCode: http.StatusOK, wantNames: []string{"Alpha", "Beta"}},
		{name: "weighted", target: "/api/rankings?weighted=true&limit=1", wantCode: http.StatusOK, wantNames: []string{"Gamma"}, weighted: true},
		{name: "negative limit", target: "/api/rankings?limit=-1", wantCode: http.StatusBadRequest},
		{name: "malformed limit", target: "/api/rankings?limit=abc", wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestHandler(&fakeRankingService{report: testReport()})

			rec := doGet(t, e, tt.target)
			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode != http.StatusOK {
				return
			}

			var body rankingBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.weighted, body.Data.Weighted)
			assert.Equal(t, 3, body.Data.StrategyCount)
			assert.Equal(t, "2026-10-19T06:00:00Z", body.Data.GeneratedAt)

			var got []string
			for _, s := range body.Data.Ranking {
				got = append(got, s.Name)
			}
			assert.Equal(t, tt.wantNames, got)
		})
	}
}

func TestGetRanking_RoundsMetrics(t *testing.T) {
	e := newTestHandler(&fakeRankingService{report: testReport()})

	rec := doGet(t, e, "/api/rankings?limit=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var body rankingBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data.Ranking, 1)
	assert.Equal(t, 3.14, body.Data.Ranking[0].Returns)
	assert.Equal(t, -0.33, body.Data.Ranking[0].MaxDrawdown)
}

func TestGetRanking_ServiceError(t *testing.T) {
	e := newTestHandler(&fakeRankingService{err: errors.New("boom")})

	rec := doGet(t, e, "/api/rankings")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetComparison(t *testing.T) {
	e := newTestHandler(&fakeRankingService{report: testReport()})

	rec := doGet(t, e, "/api/rankings/compare")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Comparison dto.ComparisonTable `json:"comparison"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, testReport().Comparison, body.Data.Comparison)
}

func TestHealth(t *testing.T) {
	e := newTestHandler(&fakeRankingService{})

	rec := doGet(t, e, "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)
}
