package user

import (
	"context"

	"userreg/internal/app/events"
)

// UserStore is the relational store owning user rows.
type UserStore interface {
	// InsertUser writes a new row and returns it with the assigned identifier.
	InsertUser(ctx context.Context, u NewUser) (*User, error)

	// GetUser returns the row for id or an error wrapping ErrNotFound.
	GetUser(ctx context.Context, id int64) (*User, error)
}

// ProfileStore holds the profile picture of a user, keyed by user identifier.
type ProfileStore interface {
	// PutProfileAttribute associates value with userID, replacing any previous value.
	PutProfileAttribute(ctx context.Context, userID int64, value string) error

	// GetProfileAttribute returns the stored value. found is false when nothing was stored;
	// a non-nil error always means the store itself failed.
	GetProfileAttribute(ctx context.Context, userID int64) (value string, found bool, err error)
}

// AtomicRegistrar is implemented by profile stores that share a transaction with the user
// store and can write both records atomically.
type AtomicRegistrar interface {
	RegisterWithProfile(ctx context.Context, u NewUser, profilePicture string) (*User, error)
}

// EventPublisher delivers domain events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, evt events.Event) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, events.Event) error { return nil }
