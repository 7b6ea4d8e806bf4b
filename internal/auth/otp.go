// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// OTPTTL is how long an emailed login code stays redeemable.
	OTPTTL = 10 * time.Minute

	// otpPrefix namespaces OTP keys in Valkey.
	otpPrefix = "otp:"

	// otpThrottlePrefix namespaces per-email request throttles.
	otpThrottlePrefix = "otp_throttle:"

	// otpThrottleWindow is the minimum gap between code requests for the
	// same email.
	otpThrottleWindow = 60 * time.Second

	otpDigits = 6
)

var (
	// ErrOTPInvalid is returned when a code is wrong, expired, or was
	// never requested.
	ErrOTPInvalid = errors.New("otp invalid")

	// ErrOTPThrottled is returned when a code was requested again too
	// soon for the same email.
	ErrOTPThrottled = errors.New("otp throttled")
)

// OTPStore manages emailed one-time login codes in Valkey.
type OTPStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOTPStore creates an OTP store backed by the given Valkey client.
func NewOTPStore(client *redis.Client) *OTPStore {
	return &OTPStore{client: client, ttl: OTPTTL}
}

// Request generates a 6-digit code for the email, stores it with TTL, and
// returns it for delivery. A second request inside the throttle window
// returns ErrOTPThrottled without generating a code.
func (s *OTPStore) Request(ctx context.Context, email string) (string, error) {
	ok, err := s.client.SetNX(ctx, otpThrottlePrefix+email, 1, otpThrottleWindow).Result()
	if err != nil {
		return "", fmt.Errorf("otp throttle: %w", err)
	}
	if !ok {
		return "", ErrOTPThrottled
	}

	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("otp generate: %w", err)
	}

	if err := s.client.Set(ctx, otpPrefix+email, code, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("otp store: %w", err)
	}
	return code, nil
}

// Verify checks the code for the email and consumes it on success. A wrong
// code does not consume the stored one.
func (s *OTPStore) Verify(ctx context.Context, email, code string) error {
	stored, err := s.client.Get(ctx, otpPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return ErrOTPInvalid
	}
	if err != nil {
		return fmt.Errorf("otp verify: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return ErrOTPInvalid
	}

	if err := s.client.Del(ctx, otpPrefix+email).Err(); err != nil {
		return fmt.Errorf("otp consume: %w", err)
	}
	return nil
}

// generateCode produces a uniformly random 6-digit decimal code.
func generateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpDigits, n), nil
}
