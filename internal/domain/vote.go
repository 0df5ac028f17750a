package domain

import "time"

// VoteType is the direction of a vote.
type VoteType string

const (
	VoteUp   VoteType = "upvote"
	VoteDown VoteType = "downvote"
)

// ParseVoteType validates a vote type string.
func ParseVoteType(s string) (VoteType, error) {
	switch VoteType(s) {
	case VoteUp, VoteDown:
		return VoteType(s), nil
	default:
		return "", NewValidationErrorWithValue("voteType", "must be one of: upvote, downvote", s)
	}
}

// VoteAction reports what a cast did to the (quote, user) vote row.
type VoteAction string

const (
	VoteCreated VoteAction = "created"
	VoteUpdated VoteAction = "updated"
	VoteRemoved VoteAction = "removed"
)

// Vote is a single user's vote on a quote. At most one exists per pair.
type Vote struct {
	ID        int64
	QuoteID   int64
	UserID    string
	Type      VoteType
	CreatedAt time.Time
}

// ResolveCast decides how a new vote of type next interacts with the
// existing row: no row inserts, the same type toggles off, the other type
// overwrites in place.
func ResolveCast(existing *Vote, next VoteType) VoteAction {
	switch {
	case existing == nil:
		return VoteCreated
	case existing.Type == next:
		return VoteRemoved
	default:
		return VoteUpdated
	}
}

// VoteCounts are the per-type totals for a quote.
type VoteCounts struct {
	Upvotes   int
	Downvotes int
}

// NetScore returns upvotes minus downvotes.
func (c VoteCounts) NetScore() int {
	return NetScore(c.Upvotes, c.Downvotes)
}

// NetScore is the single definition of a quote's community score.
func NetScore(upvotes, downvotes int) int {
	return upvotes - downvotes
}

// Tally counts votes by type.
func Tally(votes []Vote) VoteCounts {
	var c VoteCounts

	for _, v := range votes {
		switch v.Type {
		case VoteUp:
			c.Upvotes++
		case VoteDown:
			c.Downvotes++
		}
	}

	return c
}

// VoteStats is what a caller sees for one quote. UserVote is nil when the
// caller has not voted.
type VoteStats struct {
	Upvotes   int
	Downvotes int
	UserVote  *VoteType
}

// Voter is one entry of a quote's voters list.
type Voter struct {
	UserID  string
	Name    string
	VotedAt time.Time
}
