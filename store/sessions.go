package store

import (
	"context"
	"fmt"
	"time"

	"food-order/models"

	"github.com/google/uuid"
)

// CreateSession records a login for userID that expires after ttl.
func (s *Store) CreateSession(ctx context.Context, userID uint, ttl time.Duration) (*models.Session, error) {
	sess := &models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
	if err := s.db(ctx).Create(sess).Error; err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

// SessionUser returns the user behind an unexpired session token.
func (s *Store) SessionUser(ctx context.Context, token string) (*models.User, error) {
	var sess models.Session
	err := s.db(ctx).Where("token = ? AND expires_at > ?", token, time.Now().UTC()).First(&sess).Error
	if err != nil {
		return nil, notFound(err, "session by token")
	}
	return s.UserByID(ctx, sess.UserID)
}

// DeleteSession forgets a login. Unknown tokens are not an error.
func (s *Store) DeleteSession(ctx context.Context, token string) error {
	if err := s.db(ctx).Where("token = ?", token).Delete(&models.Session{}).Error; err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PruneSessions removes expired sessions and reports how many were dropped.
func (s *Store) PruneSessions(ctx context.Context) (int64, error) {
	res := s.db(ctx).Where("expires_at <= ?", time.Now().UTC()).Delete(&models.Session{})
	if res.Error != nil {
		return 0, fmt.Errorf("prune sessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}
