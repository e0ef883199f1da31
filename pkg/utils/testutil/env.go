package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the value of the environment variable, or skips the test
// when it is empty. Integration tests use it for settings such as TEST_REDIS_ADDR.
func GetEnvOrSkip(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s is not set", key)
	}
	return value
}
