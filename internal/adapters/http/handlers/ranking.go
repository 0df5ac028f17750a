package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/dto"
	"github.com/hearsayhub/hearsay-hub/internal/app"
)

// RankingHandler serves the yearly leaderboard.
type RankingHandler struct {
	service *app.RankingService
}

// NewRankingHandler creates a new ranking handler.
func NewRankingHandler(service *app.RankingService) *RankingHandler {
	return &RankingHandler{service: service}
}

// Years handles GET /api/v1/ranking/years.
//
// @Summary Years with quotes
// @Tags ranking
// @Produce json
// @Success 200 {array} dto.YearCountResponse
// @Router /api/v1/ranking/years [get]
func (h *RankingHandler) Years(c *gin.Context) {
	years, err := h.service.AvailableYears(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewYearCountList(years))
}

// Year handles GET /api/v1/ranking/years/:year.
//
// @Summary Quotes of a year ranked by net score
// @Tags ranking
// @Produce json
// @Param year path int true "Submission year"
// @Param limit query int false "Maximum quotes" default(10)
// @Success 200 {object} dto.RankingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/ranking/years/{year} [get]
func (h *RankingHandler) Year(c *gin.Context) {
	year, err := dto.PathInt(c, "year")
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	var q dto.RankingQuery
	if err := dto.BindQuery(c, &q); err != nil {
		dto.HandleError(c, err)
		return
	}

	ranked, err := h.service.RankedByYear(c.Request.Context(), year, q.LimitValue())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRankingResponse(year, ranked))
}
