package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"userreg/internal/app/events"
	"userreg/internal/pkg/logx"
	"userreg/internal/pkg/metrics"
)

// DefaultStoreTimeout bounds a single store call when no WithStoreTimeout option is given.
const DefaultStoreTimeout = 5 * time.Second

// Service registers users and reads back merged records.
type Service struct {
	users    UserStore
	profiles ProfileStore
	events   EventPublisher
	timeout  time.Duration
	hashCost int
}

// Option configures a Service.
type Option func(*Service)

// WithStoreTimeout sets the deadline applied to every individual store call.
func WithStoreTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithHashCost sets the bcrypt cost used for password hashes.
func WithHashCost(cost int) Option {
	return func(s *Service) { s.hashCost = cost }
}

// WithEvents sets the publisher receiving registration events.
func WithEvents(p EventPublisher) Option {
	return func(s *Service) {
		if p != nil {
			s.events = p
		}
	}
}

// NewService wires a Service to its stores.
func NewService(users UserStore, profiles ProfileStore, opts ...Option) *Service {
	s := &Service{
		users:    users,
		profiles: profiles,
		events:   nopPublisher{},
		timeout:  DefaultStoreTimeout,
		hashCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register hashes the password, writes the user row, then the profile attribute.
//
// When the profile store is an AtomicRegistrar both writes share one transaction. Otherwise the
// user insert commits first; if the profile write then fails the account stays without a profile
// attribute, and Register returns the created record together with an error wrapping
// ErrPartialWrite.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Record, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("hash password: %w", ErrInvalidInput)
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	nu := NewUser{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Phone:        in.Phone,
	}

	if reg, ok := s.profiles.(AtomicRegistrar); ok {
		storeCtx, cancel := context.WithTimeout(ctx, s.timeout)
		u, err := reg.RegisterWithProfile(storeCtx, nu, in.ProfilePicture)
		cancel()
		if err != nil {
			return nil, err
		}

		rec := newRecord(u, in.ProfilePicture)
		s.publish(ctx, events.New(events.UserRegistered, u.ID, ""))
		return rec, nil
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	u, err := s.users.InsertUser(storeCtx, nu)
	cancel()
	if err != nil {
		return nil, err
	}

	storeCtx, cancel = context.WithTimeout(ctx, s.timeout)
	err = s.profiles.PutProfileAttribute(storeCtx, u.ID, in.ProfilePicture)
	cancel()
	if err != nil {
		logx.FromContext(ctx).Error().
			Err(err).
			Int64("user_id", u.ID).
			Msg("Profile attribute write failed after user insert; account has no profile picture")
		metrics.ProfileWriteFailures.Inc()
		s.publish(ctx, events.New(events.ProfileWriteFailed, u.ID, in.ProfilePicture))

		return newRecord(u, ""), fmt.Errorf("%w: user %d: %w", ErrPartialWrite, u.ID, err)
	}

	rec := newRecord(u, in.ProfilePicture)
	s.publish(ctx, events.New(events.UserRegistered, u.ID, ""))
	return rec, nil
}

// Get returns the merged record for id. A missing profile attribute yields an empty picture;
// a failing profile store yields an error wrapping ErrStoreUnavailable.
func (s *Service) Get(ctx context.Context, id int64) (*Record, error) {
	if id <= 0 {
		return nil, fmt.Errorf("get user %d: %w", id, ErrNotFound)
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	u, err := s.users.GetUser(storeCtx, id)
	cancel()
	if err != nil {
		return nil, err
	}

	storeCtx, cancel = context.WithTimeout(ctx, s.timeout)
	picture, found, err := s.profiles.GetProfileAttribute(storeCtx, id)
	cancel()
	if err != nil {
		if !errors.Is(err, ErrStoreUnavailable) {
			err = fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return nil, fmt.Errorf("get profile attribute for user %d: %w", id, err)
	}
	if !found {
		picture = ""
	}

	return newRecord(u, picture), nil
}

// publish delivers evt on a context detached from request cancellation. Failures are only logged.
func (s *Service) publish(ctx context.Context, evt events.Event) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	if err := s.events.Publish(pubCtx, evt); err != nil {
		logx.FromContext(ctx).Warn().
			Err(err).
			Str("event_type", string(evt.Type)).
			Int64("user_id", evt.UserID).
			Msg("Failed to publish user event")
	}
}
