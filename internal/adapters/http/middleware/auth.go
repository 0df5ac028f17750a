package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/dto"
	"github.com/hearsayhub/hearsay-hub/internal/domain"
	"github.com/hearsayhub/hearsay-hub/internal/platform/config"
	"github.com/hearsayhub/hearsay-hub/internal/platform/logging"
	"github.com/hearsayhub/hearsay-hub/internal/ports"
)

// Header defaults used when the config leaves them empty.
const (
	defaultSubjectHeader = "X-User-ID"
	defaultNameHeader    = "X-User-Name"
	defaultRolesHeader   = "X-User-Roles"
)

// LocalPrincipal is the caller assumed for requests without identity
// headers when auth is disabled.
var LocalPrincipal = domain.Principal{UserID: "local", Name: "Local Developer", Role: domain.RoleOwner}

// ExtractPrincipal reads the caller from the gateway headers. The highest
// recognised role wins; no recognised role means USER. A missing name falls
// back to the user id.
func ExtractPrincipal(c *gin.Context, cfg *config.AuthConfig) (domain.Principal, bool) {
	subjectHeader, nameHeader, rolesHeader := defaultSubjectHeader, defaultNameHeader, defaultRolesHeader

	if cfg != nil {
		subjectHeader = firstNonEmpty(cfg.SubjectHeader, subjectHeader)
		nameHeader = firstNonEmpty(cfg.NameHeader, nameHeader)
		rolesHeader = firstNonEmpty(cfg.RolesHeader, rolesHeader)
	}

	subject := strings.TrimSpace(c.GetHeader(subjectHeader))
	if subject == "" {
		return domain.Principal{}, false
	}

	return domain.Principal{
		UserID: subject,
		Name:   firstNonEmpty(strings.TrimSpace(c.GetHeader(nameHeader)), subject),
		Role:   highestRole(c.GetHeader(rolesHeader)),
	}, true
}

// RequireAuth resolves the principal of every request. Without identity
// headers it answers 401, unless auth is disabled, in which case
// LocalPrincipal is used. Mutating requests record the caller in users so
// it can be referenced as a submitter or voter.
func RequireAuth(cfg *config.AuthConfig, users ports.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := ExtractPrincipal(c, cfg)
		if !ok {
			if cfg != nil && cfg.Enabled {
				dto.Abort(c, dto.ErrorCodeUnauthorized, "authentication required")
				return
			}

			p = LocalPrincipal
		}

		ctx := logging.WithUserID(ContextWithPrincipal(c.Request.Context(), p), p.UserID)
		c.Request = c.Request.WithContext(ctx)

		if users != nil && isMutating(c.Request.Method) {
			if err := users.EnsureUser(ctx, p); err != nil {
				dto.HandleError(c, err)
				return
			}
		}

		c.Next()
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	default:
		return true
	}
}

func highestRole(header string) domain.Role {
	best := domain.RoleUser

	for part := range strings.SplitSeq(header, ",") {
		if r, ok := domain.ParseRole(part); ok && r.AtLeast(best) {
			best = r
		}
	}

	return best
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
