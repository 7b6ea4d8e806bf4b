// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// RefreshTTL is how long a refresh token lives in Valkey before
	// automatic expiry.
	RefreshTTL = 30 * 24 * time.Hour

	// refreshPrefix namespaces refresh-token keys in Valkey.
	refreshPrefix = "refresh:"

	// tokenLength is the byte length of the random token (32 bytes =
	// 64 hex chars).
	tokenLength = 32
)

// ErrRefreshNotFound is returned when a refresh token is unknown, expired,
// or already redeemed.
var ErrRefreshNotFound = errors.New("refresh token not found")

// refreshPayload is the value stored under a refresh-token key.
type refreshPayload struct {
	UserID   uuid.UUID `json:"user_id"`
	IssuedAt time.Time `json:"issued_at"`
}

// RefreshStore manages single-use refresh tokens in Valkey.
type RefreshStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRefreshStore creates a refresh-token store backed by the given Valkey
// client.
func NewRefreshStore(client *redis.Client) *RefreshStore {
	return &RefreshStore{client: client, ttl: RefreshTTL}
}

// Issue creates a new refresh token for the user and stores it with TTL.
func (s *RefreshStore) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("refresh issue: %w", err)
	}

	payload, err := json.Marshal(refreshPayload{UserID: userID, IssuedAt: time.Now()})
	if err != nil {
		return "", fmt.Errorf("refresh marshal: %w", err)
	}

	if err := s.client.Set(ctx, refreshPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("refresh store: %w", err)
	}
	return token, nil
}

// Redeem consumes a refresh token and returns the user it belongs to. The
// token is deleted atomically with the read, so it can be used only once.
func (s *RefreshStore) Redeem(ctx context.Context, token string) (uuid.UUID, error) {
	raw, err := s.client.GetDel(ctx, refreshPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrRefreshNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("refresh redeem: %w", err)
	}

	var payload refreshPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return uuid.Nil, fmt.Errorf("refresh unmarshal: %w", err)
	}
	return payload.UserID, nil
}

// Revoke deletes a refresh token, if it exists.
func (s *RefreshStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, refreshPrefix+token).Err(); err != nil {
		return fmt.Errorf("refresh revoke: %w", err)
	}
	return nil
}

// generateToken produces a cryptographically random hex token.
func generateToken() (string, error) {
	b := make([]byte, tokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
