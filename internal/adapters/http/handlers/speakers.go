package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/dto"
	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/middleware"
	"github.com/hearsayhub/hearsay-hub/internal/app"
)

// SpeakerHandler manages speakers. Role checks happen in the service.
type SpeakerHandler struct {
	service *app.SpeakerService
}

// NewSpeakerHandler creates a new speaker handler.
func NewSpeakerHandler(service *app.SpeakerService) *SpeakerHandler {
	return &SpeakerHandler{service: service}
}

// List handles GET /api/v1/speakers.
func (h *SpeakerHandler) List(c *gin.Context) {
	speakers, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSpeakerList(speakers))
}

// Create handles POST /api/v1/speakers.
//
// @Summary Add a speaker
// @Description Requires MODERATOR or above
// @Tags speakers
// @Accept json
// @Produce json
// @Param body body dto.SpeakerRequest true "Speaker"
// @Success 201 {object} dto.SpeakerResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/speakers [post]
func (h *SpeakerHandler) Create(c *gin.Context) {
	var req dto.SpeakerRequest
	if err := dto.BindJSON(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	sp, err := h.service.Create(c.Request.Context(), middleware.Principal(c), req.Name)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSpeakerResponse(sp))
}

// Rename handles PUT /api/v1/speakers/:id.
func (h *SpeakerHandler) Rename(c *gin.Context) {
	id, err := dto.PathID(c, "id")
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	var req dto.SpeakerRequest
	if err := dto.BindJSON(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	sp, err := h.service.Rename(c.Request.Context(), middleware.Principal(c), id, req.Name)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSpeakerResponse(sp))
}

// Delete handles DELETE /api/v1/speakers/:id. Requires ADMIN or above.
func (h *SpeakerHandler) Delete(c *gin.Context) {
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
