package implementation

import (
	"errors"
	"fmt"
	"testing"

	"numero-be/internal/repository/contract"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	plain := errors.New("boom")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil stays nil", nil, nil},
		{"foreign key", &pgconn.PgError{Code: "23503", ConstraintName: "fk_questions_conversation"}, contract.ErrReferenceNotFound},
		{"unique", fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23505"}), contract.ErrDuplicate},
		{"other pg error passes through", &pgconn.PgError{Code: "42P01"}, nil},
		{"plain error passes through", plain, plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.in)
			switch {
			case tt.in == nil:
				assert.NoError(t, got)
			case tt.want == nil:
				assert.Equal(t, tt.in, got)
			default:
				assert.ErrorIs(t, got, tt.want)
			}
		})
	}
}
