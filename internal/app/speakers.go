package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
	"github.com/hearsayhub/hearsay-hub/internal/ports"
)

const speakerComponent = "app.SpeakerService"

// SpeakerService manages the speakers quotes are credited to.
type SpeakerService struct {
	speakers ports.SpeakerStore
	logger   *slog.Logger
}

// SpeakerServiceConfig holds the dependencies of a SpeakerService.
type SpeakerServiceConfig struct {
	Speakers ports.SpeakerStore
	Logger   *slog.Logger
}

// NewSpeakerService panics without a speaker store.
func NewSpeakerService(cfg SpeakerServiceConfig) *SpeakerService {
	if cfg.Speakers == nil {
		panic("app: SpeakerService requires Speakers")
	}

	return &SpeakerService{
		speakers: cfg.Speakers,
		logger:   componentLogger(cfg.Logger, speakerComponent),
	}
}

// List returns every speaker ordered by name.
func (s *SpeakerService) List(ctx context.Context) ([]domain.Speaker, error) {
	speakers, err := s.speakers.ListSpeakers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing speakers: %w", err)
	}

	return speakers, nil
}

// Create adds a speaker. Requires MODERATOR.
func (s *SpeakerService) Create(ctx context.Context, p domain.Principal, name string) (*domain.Speaker, error) {
	if !p.Role.AtLeast(domain.RoleModerator) {
		return nil, domain.NewForbiddenError("create speaker", "requires MODERATOR")
	}

	name, err := domain.ValidateSpeakerName(name)
	if err != nil {
		return nil, err
	}

	sp, err := s.speakers.CreateSpeaker(ctx, name, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("creating speaker: %w", err)
	}

	scopedLogger(ctx, s.logger, speakerComponent).InfoContext(ctx, "speaker created",
		slog.Int64("speaker_id", sp.ID),
		slog.String("user_id", p.UserID),
	)

	return sp, nil
}

// Rename changes a speaker's name. Requires MODERATOR.
func (s *SpeakerService) Rename(ctx context.Context, p domain.Principal, id int64, name string) (*domain.Speaker, error) {
	if !p.Role.AtLeast(domain.RoleModerator) {
		return nil, domain.NewForbiddenError("rename speaker", "requires MODERATOR")
	}

	name, err := domain.ValidateSpeakerName(name)
	if err != nil {
		return nil, err
	}

	sp, err := s.speakers.RenameSpeaker(ctx, id, name)
	if err != nil {
		return nil, fmt.Errorf("renaming speaker %d: %w", id, err)
	}

	return sp, nil
}

// Delete removes a speaker that no quote references. Requires ADMIN.
func (s *SpeakerService) Delete(ctx context.Context, p domain.Principal, id int64) error {
	if !p.Role.AtLeast(domain.RoleAdmin) {
		return domain.NewForbiddenError("delete speaker", "requires ADMIN")
	}

	if err := s.speakers.DeleteSpeaker(ctx, id); err != nil {
		return fmt.Errorf("deleting speaker %d: %w", id, err)
	}

	scopedLogger(ctx, s.logger, speakerComponent).InfoContext(ctx, "speaker deleted",
		slog.Int64("speaker_id", id),
		slog.String("user_id", p.UserID),
	)

	return nil
}
