package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"edulift_backend/internal/model"

	"github.com/go-redis/redis/v8"
)

// SessionRepository keeps per-user, per-test adaptive performance history in
// redis. The scoring core stays pure; this store owns state continuity across
// questions within a test attempt.
type SessionRepository struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{
		RDB: rdb,
		TTL: 24 * time.Hour,
	}
}

func sessionKey(userID uint, testID string) string {
	return fmt.Sprintf("adaptive:history:%d:%s", userID, testID)
}

// History returns the stored performance history, oldest first. A missing key
// yields an empty history, not an error.
func (r *SessionRepository) History(ctx context.Context, userID uint, testID string) ([]model.AnswerRecord, error) {
	data, err := r.RDB.Get(ctx, sessionKey(userID, testID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var history []model.AnswerRecord
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// Append adds grading outcomes to the history. Within an attempt the history
// only grows; Reset marks the attempt boundary.
func (r *SessionRepository) Append(ctx context.Context, userID uint, testID string, records []model.AnswerRecord) error {
	history, err := r.History(ctx, userID, testID)
	if err != nil {
		return err
	}
	history = append(history, records...)

	data, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return r.RDB.Set(ctx, sessionKey(userID, testID), data, r.TTL).Err()
}

// Reset clears a session's history, e.g. when a new attempt starts.
func (r *SessionRepository) Reset(ctx context.Context, userID uint, testID string) error {
	return r.RDB.Del(ctx, sessionKey(userID, testID)).Err()
}
