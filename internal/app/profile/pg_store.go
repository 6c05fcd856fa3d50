package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"userreg/internal/app/db"
	dbc "userreg/internal/app/db/sqlc"
	"userreg/internal/app/user"
)

// PGStore keeps the picture in the profile table, which references users with ON DELETE CASCADE.
// It shares the user store's database, so it also registers both rows in one transaction.
type PGStore struct {
	conn db.Conn
	q    *dbc.Queries
}

// NewPGStore returns a store running its queries on conn.
func NewPGStore(conn db.Conn) *PGStore {
	return &PGStore{conn: conn, q: dbc.New(conn)}
}

// PutProfileAttribute upserts the profile row of userID. A missing user yields user.ErrNotFound.
func (s *PGStore) PutProfileAttribute(ctx context.Context, userID int64, value string) error {
	err := s.q.UpsertProfile(ctx, dbc.UpsertProfileParams{UserID: userID, ProfilePicture: value})
	if err != nil {
		return user.ClassifyPGError(fmt.Sprintf("put profile attribute for user %d", userID), err)
	}
	return nil
}

// GetProfileAttribute reads the profile row of userID. A missing row is reported as not found.
func (s *PGStore) GetProfileAttribute(ctx context.Context, userID int64) (string, bool, error) {
	picture, err := s.q.GetProfilePicture(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, user.ClassifyPGError(fmt.Sprintf("get profile attribute for user %d", userID), err)
	}
	return picture, true, nil
}

// RegisterWithProfile implements user.AtomicRegistrar.
func (s *PGStore) RegisterWithProfile(ctx context.Context, nu user.NewUser, profilePicture string) (*user.User, error) {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return nil, user.ClassifyPGError("begin registration", err)
	}

	qtx := s.q.WithTx(tx)

	u, err := user.InsertWith(ctx, qtx, nu)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}

	if err := qtx.UpsertProfile(ctx, dbc.UpsertProfileParams{UserID: u.ID, ProfilePicture: profilePicture}); err != nil {
		_ = tx.Rollback(ctx)
		return nil, user.ClassifyPGError(fmt.Sprintf("put profile attribute for user %d", u.ID), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, user.ClassifyPGError("commit registration", err)
	}

	return u, nil
}
