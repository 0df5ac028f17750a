package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/dto"
	"github.com/hearsayhub/hearsay-hub/internal/app"
)

// SearchHandler serves quote search and the filter pick-lists.
type SearchHandler struct {
	service *app.SearchService
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(service *app.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// Quotes handles GET /api/v1/search/quotes.
//
// @Summary Search quotes
// @Description Fuzzy search over content, context and speaker names with structured filters
// @Tags search
// @Produce json
// @Param query query string false "Free text"
// @Param speakerId query int false "Speaker filter"
// @Param submittedById query string false "Submitter filter"
// @Param quoteDateFrom query string false "Lower date bound (YYYY-MM-DD)"
// @Param quoteDateTo query string false "Upper date bound (YYYY-MM-DD)"
// @Param includeUnknownDates query bool false "Keep undated quotes under a date filter" default(true)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/search/quotes [get]
func (h *SearchHandler) Quotes(c *gin.Context) {
	var q dto.SearchQuery
	if err := dto.BindQuery(c, &q); err != nil {
		dto.HandleError(c, err)
		return
	}

	filter, err := q.Filter()
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	result, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSearchResponse(result))
}

// Speakers handles GET /api/v1/search/speakers.
func (h *SearchHandler) Speakers(c *gin.Context) {
	speakers, err := h.service.Speakers(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSpeakerOptions(speakers))
}

// Users handles GET /api/v1/search/users.
func (h *SearchHandler) Users(c *gin.Context) {
	users, err := h.service.Users(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserOptions(users))
}
