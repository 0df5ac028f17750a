package dto

import (
	"time"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

// CastVoteRequest is the body of POST /quotes/:id/votes.
type CastVoteRequest struct {
	VoteType string `json:"voteType" validate:"required,oneof=upvote downvote"`
}

// CastVoteResponse reports what the cast did.
type CastVoteResponse struct {
	Success bool   `json:"success"`
	Action  string `json:"action"`
}

// VoteStatsResponse holds the counts for a quote and the caller's vote.
type VoteStatsResponse struct {
	Upvotes   int     `json:"upvotes"`
	Downvotes int     `json:"downvotes"`
	UserVote  *string `json:"userVote"`
}

// NewVoteStatsResponse converts domain stats.
func NewVoteStatsResponse(s *domain.VoteStats) VoteStatsResponse {
	resp := VoteStatsResponse{Upvotes: s.Upvotes, Downvotes: s.Downvotes}
	if s.UserVote != nil {
		v := string(*s.UserVote)
		resp.UserVote = &v
	}

	return resp
}

// VotersQuery selects which voters to list.
type VotersQuery struct {
	VoteType string `form:"voteType" validate:"required,oneof=upvote downvote"`
}

// VoterResponse is one voter.
type VoterResponse struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	VotedAt time.Time `json:"votedAt"`
}

// NewVoterList converts domain voters.
func NewVoterList(voters []domain.Voter) []VoterResponse {
	out := make([]VoterResponse, len(voters))
	for i, v := range voters {
		out[i] = VoterResponse{ID: v.UserID, Name: v.Name, VotedAt: v.VotedAt}
	}

	return out
}
