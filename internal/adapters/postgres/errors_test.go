package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    error
		wantMsg string
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: domain.ErrNotFound, wantMsg: "quote"},
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "speakers_name_key"},
			want: domain.ErrConflict,
		},
		{
			name:    "missing speaker",
			err:     &pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "quote_speakers_speaker_id_fkey"},
			want:    domain.ErrNotFound,
			wantMsg: "speaker",
		},
		{
			name:    "missing user",
			err:     &pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "quote_votes_user_id_fkey"},
			want:    domain.ErrNotFound,
			wantMsg: "user",
		},
		{
			name:    "check violation",
			err:     &pgconn.PgError{Code: codeCheckViolation, ColumnName: "content", Message: "too long"},
			want:    domain.ErrValidation,
			wantMsg: "content",
		},
		{name: "deadline", err: context.DeadlineExceeded, want: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapError(tt.err, "quote", "7")
			require.ErrorIs(t, err, tt.want)

			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestMapError_Passthrough(t *testing.T) {
	assert.NoError(t, mapError(nil, "quote", "1"))

	boom := errors.New("connection reset")
	err := mapError(boom, "quote", "1")
	require.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: codeForeignKeyViolation}))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: codeUniqueViolation}))
	assert.False(t, isForeignKeyViolation(errors.New("other")))
}
