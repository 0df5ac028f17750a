package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

// PostgreSQL error codes mapped onto domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// mapError converts pgx errors into domain errors. Context errors pass
// through wrapped but unmapped.
func mapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewNotFoundError(entity, id)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return domain.NewConflictError(entity, "already exists")
		case codeForeignKeyViolation:
			return domain.NewNotFoundError(referencedEntity(pgErr.ConstraintName), "")
		case codeCheckViolation:
			return domain.NewValidationError(pgErr.ColumnName, pgErr.Message)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// referencedEntity names the row a foreign key points at.
func referencedEntity(constraint string) string {
	switch constraint {
	case "quotes_submitted_by_id_fkey", "quote_votes_user_id_fkey", "speakers_created_by_id_fkey":
		return "user"
	case "quote_speakers_speaker_id_fkey":
		return "speaker"
	case "quote_votes_quote_id_fkey", "quote_speakers_quote_id_fkey":
		return "quote"
	default:
		return "referenced row"
	}
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}
