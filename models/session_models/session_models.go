package session_models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hallbook/hallbook/logger"
	"github.com/hallbook/hallbook/models/booking_models"
	"github.com/hallbook/hallbook/models/user_models"
	"github.com/hallbook/hallbook/models/venue_models"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// ErrSessionNotFound is returned when a session ID is unknown or expired.
var ErrSessionNotFound = errors.New("session not found or expired")

// PortalSession is the per-visitor state: the logged-in user, the venue
// being booked and the booking-flow machine. It is populated at login,
// mutated through the flow endpoints and cleared at logout; the TTL bounds
// abandoned sessions.
type PortalSession struct {
	ID            string                 `json:"id"`
	User          *user_models.User      `json:"user,omitempty"`
	SelectedVenue *venue_models.Venue    `json:"selectedVenue,omitempty"`
	Flow          *booking_models.Flow   `json:"flow,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// BookingFlow returns the session's flow, starting one on first use.
func (s *PortalSession) BookingFlow() *booking_models.Flow {
	if s.Flow == nil {
		s.Flow = booking_models.NewFlow()
	}
	return s.Flow
}

// Store persists portal sessions in Redis with a sliding TTL.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore returns a session store writing through the given client.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Create starts a fresh session for a just-logged-in user.
func (st *Store) Create(ctx context.Context, user *user_models.User) (*PortalSession, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}
	sess := &PortalSession{
		ID:        id.String(),
		User:      user,
		CreatedAt: time.Now().UTC(),
	}
	if err := st.Save(ctx, sess); err != nil {
		return nil, err
	}
	logger.InfoLogger.Infof("Session %s created for user %s", sess.ID, user.ID)
	return sess, nil
}

// Get loads a session by ID.
func (st *Store) Get(ctx context.Context, id string) (*PortalSession, error) {
	raw, err := st.rdb.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to load session %s: %v", id, err)
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var sess PortalSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		logger.ErrorLogger.Errorf("Corrupt session record %s: %v", id, err)
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

// Save writes the session back and refreshes its TTL.
func (st *Store) Save(ctx context.Context, sess *PortalSession) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := st.rdb.Set(ctx, sessionKeyPrefix+sess.ID, raw, st.ttl).Err(); err != nil {
		logger.ErrorLogger.Errorf("Failed to save session %s: %v", sess.ID, err)
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes a session, e.g. at logout.
func (st *Store) Delete(ctx context.Context, id string) error {
	if err := st.rdb.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		logger.ErrorLogger.Errorf("Failed to delete session %s: %v", id, err)
		return fmt.Errorf("failed to delete session: %w", err)
	}
	logger.InfoLogger.Infof("Session %s deleted", id)
	return nil
}
