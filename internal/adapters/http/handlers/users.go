package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/dto"
	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/middleware"
	"github.com/hearsayhub/hearsay-hub/internal/app"
)

// UserHandler serves user profiles.
type UserHandler struct {
	service *app.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service *app.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Me handles GET /api/v1/users/me.
func (h *UserHandler) Me(c *gin.Context) {
	h.profile(c, middleware.Principal(c).UserID)
}

// Profile handles GET /api/v1/users/:id.
//
// @Summary User profile with submission totals
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) Profile(c *gin.Context) {
	h.profile(c, c.Param("id"))
}

func (h *UserHandler) profile(c *gin.Context, userID string) {
	p, err := h.service.Profile(c.Request.Context(), userID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProfileResponse(p))
}

// Quotes handles GET /api/v1/users/:id/quotes.
func (h *UserHandler) Quotes(c *gin.Context) {
	var q dto.PageQuery
	if err := dto.BindQuery(c, &q); err != nil {
		dto.HandleError(c, err)
		return
	}

	page, limit := q.Values()

	quotes, err := h.service.Quotes(c.Request.Context(), c.Param("id"), page, limit)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteList(quotes))
}
