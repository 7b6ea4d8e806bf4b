package cache

import (
	"os"
	"testing"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	client, err := ConnectValkey(
		envOr("VALKEY_HOST", "localhost"),
		envOr("VALKEY_PORT", "6379"),
		os.Getenv("VALKEY_PASSWORD"),
	)
	if err != nil {
		t.Skipf("skipping: valkey not available: %v", err)
	}
	defer client.Close()

	if client.Options().DB != 0 {
		t.Errorf("expected DB 0, got %d", client.Options().DB)
	}
}

func TestConnectValkeyUnreachable(t *testing.T) {
	_, err := ConnectValkey("localhost", "1", "")
	if err == nil {
		t.Error("expected error for unreachable valkey")
	}
}
