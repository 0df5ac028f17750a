package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/dto"
	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/middleware"
	"github.com/hearsayhub/hearsay-hub/internal/app"
	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

// VoteHandler serves voting on quotes.
type VoteHandler struct {
	service *app.VoteService
}

// NewVoteHandler creates a new vote handler.
func NewVoteHandler(service *app.VoteService) *VoteHandler {
	return &VoteHandler{service: service}
}

// Cast handles POST /api/v1/quotes/:id/votes. Casting the same type again
// removes the vote; the other type switches it.
//
// @Summary Cast, switch or retract a vote
// @Tags votes
// @Accept json
// @Produce json
// @Param id path int true "Quote ID"
// @Param body body dto.CastVoteRequest true "Vote"
// @Success 200 {object} dto.CastVoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id}/votes [post]
func (h *VoteHandler) Cast(c *gin.Context) {
	id, err := dto.PathID(c, "id")
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	var req dto.CastVoteRequest
	if err := dto.BindJSON(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	action, err := h.service.CastVote(c.Request.Context(), id, middleware.Principal(c).UserID, domain.VoteType(req.VoteType))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CastVoteResponse{Success: true, Action: string(action)})
}

// Stats handles GET /api/v1/quotes/:id/votes.
//
// @Summary Vote counts and the caller's vote
// @Tags votes
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} dto.VoteStatsResponse
// @Router /api/v1/quotes/{id}/votes [get]
func (h *VoteHandler) Stats(c *gin.Context) {
	id, err := dto.PathID(c, "id")
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	stats, err := h.service.VoteStats(c.Request.Context(), id, middleware.Principal(c).UserID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewVoteStatsResponse(stats))
}

// Voters handles GET /api/v1/quotes/:id/voters?voteType=.
func (h *VoteHandler) Voters(c *gin.Context) {
	id, err := dto.PathID(c, "id")
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	var q dto.VotersQuery
	if err := dto.BindQuery(c, &q); err != nil {
		dto.HandleError(c, err)
		return
	}

	voters, err := h.service.Voters(c.Request.Context(), id, domain.VoteType(q.VoteType))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewVoterList(voters))
}
