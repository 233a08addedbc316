package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateConstraint(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unique", err: &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_username_key"}, want: ErrDuplicate},
		{name: "self follow", err: &pgconn.PgError{Code: pgCheckViolation, ConstraintName: constraintPreventSelfFollow}, want: ErrSelfReference},
		{name: "foreign key", err: &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "reviews_ticket_id_fkey"}, want: ErrReferenceMissing},
		{name: "unrelated", err: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateConstraint(tt.err), tt.want)
		})
	}
}

func TestTranslateConstraint_OtherCheckPassesThrough(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "reviews_rating_check"}
	err := translateConstraint(pgErr)
	assert.Same(t, pgErr, err)
	assert.NotErrorIs(t, err, ErrSelfReference)
}
