package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/dto"
	"github.com/hearsayhub/hearsay-hub/internal/domain"
	"github.com/hearsayhub/hearsay-hub/internal/mocks"
	"github.com/hearsayhub/hearsay-hub/internal/platform/config"
	"github.com/hearsayhub/hearsay-hub/internal/platform/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var authConfig = &config.AuthConfig{
	Enabled:       true,
	SubjectHeader: "X-User-ID",
	NameHeader:    "X-User-Name",
	RolesHeader:   "X-User-Roles",
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

func principalEcho(c *gin.Context) {
	p := Principal(c)
	c.JSON(http.StatusOK, gin.H{"id": p.UserID, "name": p.Name, "role": p.Role})
}

func TestExtractPrincipal(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    domain.Principal
		wantOK  bool
	}{
		{
			name:    "full headers",
			headers: map[string]string{"X-User-ID": "u1", "X-User-Name": "Ada", "X-User-Roles": "user, moderator"},
			want:    domain.Principal{UserID: "u1", Name: "Ada", Role: domain.RoleModerator},
			wantOK:  true,
		},
		{
			name:    "highest role wins regardless of order",
			headers: map[string]string{"X-User-ID": "u2", "X-User-Roles": "OWNER,admin"},
			want:    domain.Principal{UserID: "u2", Name: "u2", Role: domain.RoleOwner},
			wantOK:  true,
		},
		{
			name:    "unknown roles fall back to user",
			headers: map[string]string{"X-User-ID": "u3", "X-User-Roles": "superuser"},
			want:    domain.Principal{UserID: "u3", Name: "u3", Role: domain.RoleUser},
			wantOK:  true,
		},
		{
			name:    "blank subject",
			headers: map[string]string{"X-User-ID": "  "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}

			got, ok := ExtractPrincipal(c, authConfig)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPrincipal_CustomHeaders(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-Discord-ID", "248163264")

	got, ok := ExtractPrincipal(c, &config.AuthConfig{SubjectHeader: "X-Discord-ID"})
	require.True(t, ok)
	assert.Equal(t, "248163264", got.UserID)
}

func TestRequireAuth(t *testing.T) {
	t.Run("read requests skip user recording", func(t *testing.T) {
		users := mocks.NewMockUserStore(t)

		r := gin.New()
		r.GET("/", RequireAuth(authConfig, users), principalEcho)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-ID", "u1")
		req.Header.Set("X-User-Name", "Ada")

		w := serve(r, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"u1","name":"Ada","role":"USER"}`, w.Body.String())
	})

	t.Run("writes record the caller", func(t *testing.T) {
		users := mocks.NewMockUserStore(t)
		users.EXPECT().
			EnsureUser(mock.Anything, domain.Principal{UserID: "u1", Name: "Ada", Role: domain.RoleAdmin}).
			Return(nil).
			Once()

		r := gin.New()
		r.POST("/", RequireAuth(authConfig, users), principalEcho)

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("X-User-ID", "u1")
		req.Header.Set("X-User-Name", "Ada")
		req.Header.Set("X-User-Roles", "admin")

		assert.Equal(t, http.StatusOK, serve(r, req).Code)
	})

	t.Run("recording failure aborts", func(t *testing.T) {
		users := mocks.NewMockUserStore(t)
		users.EXPECT().EnsureUser(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

		r := gin.New()
		r.DELETE("/", RequireAuth(authConfig, users), principalEcho)

		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		req.Header.Set("X-User-ID", "u1")

		w := serve(r, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, dto.ErrorCodeInternal, decodeError(t, w).Error.Code)
	})

	t.Run("missing identity", func(t *testing.T) {
		r := gin.New()
		r.GET("/", RequireAuth(authConfig, nil), principalEcho)

		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrorCodeUnauthorized, decodeError(t, w).Error.Code)
	})

	t.Run("disabled auth uses the local principal", func(t *testing.T) {
		r := gin.New()
		r.GET("/", RequireAuth(&config.AuthConfig{Enabled: false}, nil), principalEcho)

		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"local"`)
	})
}

func TestRequireGuildMember(t *testing.T) {
	tests := []struct {
		name       string
		member     bool
		err        error
		wantStatus int
	}{
		{name: "member", member: true, wantStatus: http.StatusOK},
		{name: "outsider", member: false, wantStatus: http.StatusForbidden},
		{name: "lookup unavailable", err: domain.NewUnavailableError("discord", "circuit open"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members := mocks.NewMockGuildMembership(t)
			members.EXPECT().IsMember(mock.Anything, "u1").Return(tt.member, tt.err).Once()

			r := gin.New()
			r.GET("/", RequireAuth(authConfig, nil), RequireGuildMember(members), principalEcho)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("X-User-ID", "u1")

			assert.Equal(t, tt.wantStatus, serve(r, req).Code)
		})
	}
}

func TestIDs(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), CorrelationID())
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"request":     RequestIDFromContext(c.Request.Context()),
			"correlation": CorrelationIDFromContext(c.Request.Context()),
		})
	})

	t.Run("generated", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, w.Header().Get(HeaderRequestID), 36)
		assert.Len(t, w.Header().Get(HeaderCorrelationID), 36)
		assert.Contains(t, w.Body.String(), w.Header().Get(HeaderRequestID))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "req-1")
		req.Header.Set(HeaderCorrelationID, "corr-1")

		w := serve(r, req)
		assert.Equal(t, "req-1", w.Header().Get(HeaderRequestID))
		assert.JSONEq(t, `{"request":"req-1","correlation":"corr-1"}`, w.Body.String())
	})
}

func TestContextHelpers_NilSafe(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(nil))     //nolint:staticcheck // nil guard
	assert.Empty(t, CorrelationIDFromContext(nil)) //nolint:staticcheck // nil guard

	_, ok := PrincipalFromContext(context.Background())
	assert.False(t, ok)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer

	original := slog.Default()
	logging.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { logging.SetDefault(original) })

	r := gin.New()
	r.Use(RequestID(), Logging())
	r.GET("/api/v1/quotes/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/-/live", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, httptest.NewRequest(http.MethodGet, "/-/live", nil))
	assert.Empty(t, buf.String())

	serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/quotes/9", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "/api/v1/quotes/:id", entry["route"])
	assert.InDelta(t, 404, entry["status"], 0)
	assert.NotEmpty(t, entry["request_id"])
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/", func(*gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, dto.ErrorCodeInternal, decodeError(t, w).Error.Code)
}

func TestTimeout(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(50 * time.Millisecond))
	r.GET("/", func(c *gin.Context) {
		deadline, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
		c.Status(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}
