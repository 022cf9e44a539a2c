package config

import (
	"testing"
	"time"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true},
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	t.Setenv("DURATION_TEST", "0s")
	if got := durationEnvOrDefault("DURATION_TEST", time.Second); got != time.Second {
		t.Fatalf("expected default on non-positive value, got %s", got)
	}
	t.Setenv("DURATION_TEST", "250ms")
	if got := durationEnvOrDefault("DURATION_TEST", time.Second); got != 250*time.Millisecond {
		t.Fatalf("expected parsed duration, got %s", got)
	}
}

func TestEnvOrDefaultTrims(t *testing.T) {
	t.Setenv("STRING_TEST", "   ")
	if got := envOrDefault("STRING_TEST", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for blank value, got %q", got)
	}
}
