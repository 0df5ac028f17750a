package dto

import "github.com/hearsayhub/hearsay-hub/internal/domain"

// UserStatsResponse totals a user's submissions and the votes they drew.
type UserStatsResponse struct {
	QuotesCount    int `json:"quotesCount"`
	TotalUpvotes   int `json:"totalUpvotes"`
	TotalDownvotes int `json:"totalDownvotes"`
	NetScore       int `json:"netScore"`
}

// ProfileResponse is a user profile.
type ProfileResponse struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Role  string            `json:"role"`
	Stats UserStatsResponse `json:"stats"`
}

// NewProfileResponse converts a domain profile.
func NewProfileResponse(p *domain.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:   p.User.ID,
		Name: p.User.Name,
		Role: string(p.User.Role),
		Stats: UserStatsResponse{
			QuotesCount:    p.QuotesCount,
			TotalUpvotes:   p.Votes.Upvotes,
			TotalDownvotes: p.Votes.Downvotes,
			NetScore:       p.NetScore(),
		},
	}
}
