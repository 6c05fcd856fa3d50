package user

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"user_id", "full_name", "email", "password_hash", "phone"}

const (
	insertUserQuery = `INSERT INTO users \(full_name, email, password_hash, phone\)`
	selectUserQuery = `SELECT user_id, full_name, email, password_hash, phone\s+FROM users\s+WHERE user_id = \$1`
)

func newMockStore(t *testing.T) (*PGStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return NewPGStore(mock), mock
}

func TestPGStore_InsertUser(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(insertUserQuery).
		WithArgs("A B", "a@x.com", "hash", "123").
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(int64(1), "A B", "a@x.com", "hash", "123"))

	u, err := store.InsertUser(context.Background(), NewUser{FullName: "A B", Email: "a@x.com", PasswordHash: "hash", Phone: "123"})
	require.NoError(t, err)
	assert.Equal(t, &User{ID: 1, FullName: "A B", Email: "a@x.com", PasswordHash: "hash", Phone: "123"}, u)
}

func TestPGStore_InsertUser_Conflicts(t *testing.T) {
	cases := []struct {
		name       string
		constraint string
		want       error
	}{
		{"email", "users_email_key", ErrEmailTaken},
		{"phone", "users_phone_key", ErrPhoneTaken},
		{"other", "users_pkey", ErrConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, mock := newMockStore(t)

			mock.ExpectQuery(insertUserQuery).
				WithArgs("A B", "a@x.com", "hash", "456").
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: tc.constraint})

			u, err := store.InsertUser(context.Background(), NewUser{FullName: "A B", Email: "a@x.com", PasswordHash: "hash", Phone: "456"})
			assert.Nil(t, u)
			assert.ErrorIs(t, err, ErrConflict)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPGStore_InsertUser_TooLong(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(insertUserQuery).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "22001"})

	_, err := store.InsertUser(context.Background(), NewUser{FullName: "x", Email: "e", PasswordHash: "h", Phone: "p"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPGStore_InsertUser_Unavailable(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(insertUserQuery).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(context.DeadlineExceeded)

	_, err := store.InsertUser(context.Background(), NewUser{FullName: "x", Email: "e", PasswordHash: "h", Phone: "p"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrConflict)
}

func TestPGStore_GetUser(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(selectUserQuery).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(int64(1), "A B", "a@x.com", "hash", "123"))

	u, err := store.GetUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)
	assert.EqualValues(t, 1, u.ID)
}

func TestPGStore_GetUser_NotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(selectUserQuery).
		WithArgs(int64(5)).
		WillReturnError(pgx.ErrNoRows)

	_, err := store.GetUser(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClassifyPGError_Passthrough(t *testing.T) {
	cause := errors.New("syntax error")
	err := ClassifyPGError("op", cause)

	assert.ErrorIs(t, err, cause)
	for _, sentinel := range []error{ErrNotFound, ErrConflict, ErrStoreUnavailable, ErrInvalidInput} {
		assert.NotErrorIs(t, err, sentinel)
	}
}
