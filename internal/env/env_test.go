package env

import (
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		if got := GetEnv("PORTAL_TEST_UNSET", "fallback"); got != "fallback" {
			t.Errorf("Expected 'fallback', got '%s'", got)
		}
	})

	t.Run("Set", func(t *testing.T) {
		t.Setenv("PORTAL_TEST_STR", "value")
		if got := GetEnv("PORTAL_TEST_STR", "fallback"); got != "value" {
			t.Errorf("Expected 'value', got '%s'", got)
		}
	})
}

func TestGetBool(t *testing.T) {
	t.Setenv("PORTAL_TEST_BOOL", "true")
	if !GetBool("PORTAL_TEST_BOOL", false) {
		t.Error("Expected true")
	}

	t.Setenv("PORTAL_TEST_BOOL", "not-a-bool")
	if GetBool("PORTAL_TEST_BOOL", false) {
		t.Error("Expected default on unparsable value")
	}
}

func TestGetDuration(t *testing.T) {
	t.Setenv("PORTAL_TEST_DUR", "90m")
	if got := GetDuration("PORTAL_TEST_DUR", time.Hour); got != 90*time.Minute {
		t.Errorf("Expected 90m, got %v", got)
	}

	if got := GetDuration("PORTAL_TEST_DUR_UNSET", time.Hour); got != time.Hour {
		t.Errorf("Expected default 1h, got %v", got)
	}
}
