package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(&pgconn.PgError{Code: pgUniqueViolation}))
	assert.True(t, isUniqueConstraintViolation(
		errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation}, "failed to create user")))

	// Error text that merely mentions a constraint must not trigger the mapping.
	assert.False(t, isUniqueConstraintViolation(errors.New(`value "duplicate key 23505" is invalid`)))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.True(t, isForeignKeyConstraintViolation(
		errors.Wrap(&pgconn.PgError{Code: pgForeignKeyViolation}, "failed to create post")))

	assert.False(t, isForeignKeyConstraintViolation(errors.New("violates foreign key")))
	assert.False(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgUniqueViolation}))
}
