// Package testing gates the tests that need live services, like a NATS
// server. They run only when MINLOG_RUN_INTEGRATION_TESTS=true; setting
// MINLOG_UNIT_TESTS_ONLY=true forces them off even then. Plain runs and
// -short runs stay unit-only.
package testing

import (
	"os"
	"testing"
)

// Unit reports whether only unit tests should run. This is the default;
// any value but the exact string "true" in the environment keys leaves
// it in force.
func Unit() bool {
	if os.Getenv("MINLOG_UNIT_TESTS_ONLY") == "true" {
		return true
	}
	return os.Getenv("MINLOG_RUN_INTEGRATION_TESTS") != "true"
}

// Integration reports whether the live-service tests should run.
func Integration() bool {
	return !Unit()
}

// SkipIfUnit skips t in unit mode. The optional message names what the
// test needs.
func SkipIfUnit(t *testing.T, message ...string) {
	if Unit() {
		msg := "integration tests are not enabled"
		if len(message) > 0 {
			msg = message[0]
		}
		t.Skip(msg)
	}
}

// SkipIfIntegration skips t in integration mode, for tests that only
// make sense without live services.
func SkipIfIntegration(t *testing.T, message ...string) {
	if Integration() {
		msg := "unit-only test"
		if len(message) > 0 {
			msg = message[0]
		}
		t.Skip(msg)
	}
}
