package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/dto"
	"github.com/hearsayhub/hearsay-hub/internal/domain"
	"github.com/hearsayhub/hearsay-hub/internal/ports"
)

// RequireGuildMember lets through only callers the membership source
// confirms. It runs after RequireAuth. A failing lookup surfaces as its
// own error, typically 503.
func RequireGuildMember(members ports.GuildMembership) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := Principal(c)

		ok, err := members.IsMember(c.Request.Context(), p.UserID)
		if err != nil {
			dto.HandleError(c, err)
			return
		}

		if !ok {
			dto.HandleError(c, domain.NewForbiddenError("access", "not a member of the community"))
			return
		}

		c.Next()
	}
}
