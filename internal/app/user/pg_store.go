package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"userreg/internal/app/db"
	dbc "userreg/internal/app/db/sqlc"
)

// Names of the unique constraints declared by the users migration.
const (
	emailConstraint = "users_email_key"
	phoneConstraint = "users_phone_key"
)

// PGStore is the PostgreSQL implementation of UserStore.
type PGStore struct {
	q *dbc.Queries
}

// NewPGStore returns a UserStore running its queries on conn.
func NewPGStore(conn dbc.DBTX) *PGStore {
	return &PGStore{q: dbc.New(conn)}
}

// InsertUser implements UserStore.
func (s *PGStore) InsertUser(ctx context.Context, u NewUser) (*User, error) {
	return InsertWith(ctx, s.q, u)
}

// GetUser implements UserStore.
func (s *PGStore) GetUser(ctx context.Context, id int64) (*User, error) {
	row, err := s.q.GetUserByID(ctx, id)
	if err != nil {
		return nil, ClassifyPGError(fmt.Sprintf("get user %d", id), err)
	}
	return fromRow(row), nil
}

// InsertWith inserts u through q, which may be bound to a transaction.
func InsertWith(ctx context.Context, q *dbc.Queries, u NewUser) (*User, error) {
	row, err := q.CreateUser(ctx, dbc.CreateUserParams{
		FullName:     u.FullName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Phone:        u.Phone,
	})
	if err != nil {
		return nil, ClassifyPGError("insert user", err)
	}
	return fromRow(row), nil
}

// ClassifyPGError wraps a pgx error with the matching package sentinel.
func ClassifyPGError(op string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case db.IsUniqueViolation(err):
		switch db.ConstraintName(err) {
		case emailConstraint:
			return fmt.Errorf("%s: %w: %w", op, ErrConflict, ErrEmailTaken)
		case phoneConstraint:
			return fmt.Errorf("%s: %w: %w", op, ErrConflict, ErrPhoneTaken)
		}
		return fmt.Errorf("%s: %w", op, ErrConflict)
	case db.IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case db.IsStringTooLong(err):
		return fmt.Errorf("%s: %w: %w", op, ErrInvalidInput, err)
	case db.IsUnavailable(err):
		return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func fromRow(row dbc.User) *User {
	return &User{
		ID:           row.UserID,
		FullName:     row.FullName,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Phone:        row.Phone,
	}
}
