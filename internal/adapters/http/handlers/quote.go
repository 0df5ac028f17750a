package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/dto"
	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/middleware"
	"github.com/hearsayhub/hearsay-hub/internal/app"
)

// QuoteHandler handles quote CRUD endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// List handles GET /api/v1/quotes.
//
// @Summary List quotes
// @Description Returns one page of quotes, newest first
// @Tags quotes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {array} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	var q dto.PageQuery
	if err := dto.BindQuery(c, &q); err != nil {
		dto.HandleError(c, err)
		return
	}

	page, limit := q.Values()

	quotes, err := h.service.List(c.Request.Context(), page, limit)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteList(quotes))
}

// Latest handles GET /api/v1/quotes/latest. An empty collection answers
// with a JSON null.
//
// @Summary Latest quote
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Router /api/v1/quotes/latest [get]
func (h *QuoteHandler) Latest(c *gin.Context) {
	q, err := h.service.Latest(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if q == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(q))
}

// Mine handles GET /api/v1/quotes/mine.
//
// @Summary Quotes submitted by the caller
// @Tags quotes
// @Produce json
// @Success 200 {array} dto.QuoteResponse
// @Router /api/v1/quotes/mine [get]
func (h *QuoteHandler) Mine(c *gin.Context) {
	quotes, err := h.service.Mine(c.Request.Context(), middleware.Principal(c).UserID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteList(quotes))
}

// Get handles GET /api/v1/quotes/:id.
//
// @Summary Get a quote by ID
// @Tags quotes
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	id, err := dto.PathID(c, "id")
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	q, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(q))
}

// Create handles POST /api/v1/quotes.
//
// @Summary Submit a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param body body dto.QuoteRequest true "Quote"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var req dto.QuoteRequest
	if err := dto.BindJSON(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	in, err := req.Input()
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	q, err := h.service.Create(c.Request.Context(), middleware.Principal(c), in)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuoteResponse(q))
}

// Update handles PUT /api/v1/quotes/:id. Only the submitter or an
// administrator may edit.
//
// @Summary Edit a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path int true "Quote ID"
// @Param body body dto.QuoteRequest true "Quote"
// @Success 200 {object} dto.QuoteResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id} [put]
func (h *QuoteHandler) Update(c *gin.Context) {
	id, err := dto.PathID(c, "id")
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	var req dto.QuoteRequest
	if err := dto.BindJSON(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	in, err := req.Input()
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	q, err := h.service.Update(c.Request.Context(), middleware.Principal(c), id, in)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(q))
}

// Delete handles DELETE /api/v1/quotes/:id.
//
// @Summary Delete a quote
// @Tags quotes
// @Param id path int true "Quote ID"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, err := dto.PathID(c, "id")
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.Principal(c), id); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
