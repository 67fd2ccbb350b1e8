package http

import (
	"net/http"
	"time"

	"iconomi-ranker/internal/dto"
	"iconomi-ranker/internal/stats"
	"iconomi-ranker/pkg/render"

	"github.com/labstack/echo/v4"
)

const defaultRankingLimit = 10

type rankingResponse struct {
	GeneratedAt   string      `json:"generatedAt"`
	AUMMin        float64     `json:"aumMin"`
	StrategyCount int         `json:"strategyCount"`
	Weighted      bool        `json:"weighted"`
	Ranking       dto.Ranking `json:"ranking"`
}

type comparisonResponse struct {
	GeneratedAt string              `json:"generatedAt"`
	Comparison  dto.ComparisonTable `json:"comparison"`
}

func (h *HttpAPIHandler) SetupHealth(base *echo.Group) {
	base.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", nil))
	})
}

func (h *HttpAPIHandler) SetupRankings(base *echo.Group) {
	rankingGroup := base.Group("/rankings")
	rankingGroup.GET("", h.getRanking)
	rankingGroup.GET("/compare", h.getComparison)
}

func (h *HttpAPIHandler) getRanking(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.GetRankingRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid query parameters"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	report, err := h.service.RankingService.GetLatestReport(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewInternalServerErrorResponse("failed to build ranking"))
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultRankingLimit
	}

	ranking := report.Linear
	if req.Weighted {
		ranking = report.Weighted
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("success", rankingResponse{
		GeneratedAt:   report.GeneratedAt.UTC().Format(time.RFC3339),
		AUMMin:        report.AUMMin,
		StrategyCount: report.StrategyCount,
		Weighted:      req.Weighted,
		Ranking:       render.Rounded(stats.TopN(ranking, limit)),
	}))
}

func (h *HttpAPIHandler) getComparison(c echo.Context) error {
	ctx := c.Request().Context()

	report, err := h.service.RankingService.GetLatestReport(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewInternalServerErrorResponse("failed to build ranking"))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("success", comparisonResponse{
		GeneratedAt: report.GeneratedAt.UTC().Format(time.RFC3339),
		Comparison:  report.Comparison,
	}))
}
