package dto

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

// Listing defaults for /quotes.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// PageQuery is the page/limit pair of listing endpoints.
type PageQuery struct {
	Page  *int `form:"page"  validate:"omitempty,min=1"`
	Limit *int `form:"limit" validate:"omitempty,min=1,max=100"`
}

// Values returns the page and limit with defaults applied.
func (p *PageQuery) Values() (page, limit int) {
	page, limit = 1, DefaultLimit

	if p.Page != nil {
		page = *p.Page
	}

	if p.Limit != nil {
		limit = *p.Limit
	}

	return page, limit
}

// PathID parses a positive integer path parameter.
func PathID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationErrorWithValue(name, "must be a positive integer", raw)
	}

	return id, nil
}

// PathInt parses an integer path parameter.
func PathInt(c *gin.Context, name string) (int, error) {
	raw := c.Param(name)

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationErrorWithValue(name, "must be an integer", raw)
	}

	return n, nil
}

// ParseDate parses an optional YYYY-MM-DD value. Empty input yields nil.
func ParseDate(field, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil //nolint:nilnil // absent date
	}

	t, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return nil, domain.NewValidationErrorWithValue(field, "must be a date in YYYY-MM-DD format", raw)
	}

	return &t, nil
}

// FormatDate renders an optional date as YYYY-MM-DD.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}

	s := t.UTC().Format(domain.DateLayout)

	return &s
}
