package dto

import (
	"time"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

// SpeakerRequest is the body of speaker create and rename.
type SpeakerRequest struct {
	Name string `json:"name" validate:"notblank,max=256"`
}

// SpeakerResponse is a speaker with its creator.
type SpeakerResponse struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	CreatedBy SubmitterResponse `json:"createdBy"`
	CreatedAt time.Time         `json:"createdAt"`
}

// NewSpeakerResponse converts a domain speaker.
func NewSpeakerResponse(s *domain.Speaker) SpeakerResponse {
	return SpeakerResponse{
		ID:        s.ID,
		Name:      s.Name,
		CreatedBy: SubmitterResponse{Name: s.CreatedByName},
		CreatedAt: s.CreatedAt,
	}
}

// NewSpeakerList converts domain speakers.
func NewSpeakerList(speakers []domain.Speaker) []SpeakerResponse {
	out := make([]SpeakerResponse, len(speakers))
	for i := range speakers {
		out[i] = NewSpeakerResponse(&speakers[i])
	}

	return out
}

// OptionResponse is an id/name pair for pick-lists.
type OptionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewUserOptions converts users into pick-list entries.
func NewUserOptions(users []domain.User) []OptionResponse {
	out := make([]OptionResponse, len(users))
	for i, u := range users {
		out[i] = OptionResponse{ID: u.ID, Name: u.Name}
	}

	return out
}

// SpeakerOptionResponse is a speaker pick-list entry.
type SpeakerOptionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewSpeakerOptions converts speakers into pick-list entries.
func NewSpeakerOptions(speakers []domain.Speaker) []SpeakerOptionResponse {
	out := make([]SpeakerOptionResponse, len(speakers))
	for i, s := range speakers {
		out[i] = SpeakerOptionResponse{ID: s.ID, Name: s.Name}
	}

	return out
}
