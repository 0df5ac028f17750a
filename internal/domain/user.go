package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Role is a user's authorization level.
type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
	RoleOwner     Role = "OWNER"
)

var roleRank = map[Role]int{
	RoleUser:      0,
	RoleModerator: 1,
	RoleAdmin:     2,
	RoleOwner:     3,
}

// ParseRole parses a role name case-insensitively. Unknown names are rejected.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := roleRank[r]; !ok {
		return "", false
	}

	return r, true
}

// AtLeast reports whether r ranks at or above min.
func (r Role) AtLeast(minimum Role) bool {
	rank, ok := roleRank[r]
	if !ok {
		return false
	}

	return rank >= roleRank[minimum]
}

// User is referenced by quotes, speakers and votes but not managed here.
type User struct {
	ID   string
	Name string
	Role Role
}

// UserProfile is a user together with the totals of what they submitted.
// Votes counts the votes received on their quotes.
type UserProfile struct {
	User        User
	QuotesCount int
	Votes       VoteCounts
}

// NetScore is the net score of every quote the user submitted.
func (p UserProfile) NetScore() int {
	return NetScore(p.Votes.Upvotes, p.Votes.Downvotes)
}

// Principal is the already-authenticated caller of an operation.
type Principal struct {
	UserID string
	Name   string
	Role   Role
}

// CanModify reports whether the principal may edit or remove a quote
// submitted by submitterID.
func (p Principal) CanModify(submitterID string) bool {
	return p.UserID == submitterID || p.Role.AtLeast(RoleAdmin)
}

// Speaker limits.
const MaxSpeakerNameLength = 256

// Speaker is a named person credited with quotes.
type Speaker struct {
	ID            int64
	Name          string
	CreatedByID   string
	CreatedByName string
	CreatedAt     time.Time
}

// ValidateSpeakerName trims name and checks its length.
func ValidateSpeakerName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", NewValidationError("name", "must not be empty")
	}

	if utf8.RuneCountInString(trimmed) > MaxSpeakerNameLength {
		return "", NewValidationError("name", "must be at most 256 characters")
	}

	return trimmed, nil
}
