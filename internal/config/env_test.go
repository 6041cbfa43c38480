package config

import (
	"testing"
	"time"
)

func TestEnvOrDefault(t *testing.T) {
	const key = "CONFIG_TEST_STRING"
	if got := envOrDefault(key, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}
	t.Setenv(key, "value")
	if got := envOrDefault(key, "fallback"); got != "value" {
		t.Fatalf("expected value, got %s", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	const key = "CONFIG_TEST_DURATION"
	if got := durationEnvOrDefault(key, time.Minute); got != time.Minute {
		t.Fatalf("expected default, got %s", got)
	}
	t.Setenv(key, "not-a-duration")
	if got := durationEnvOrDefault(key, time.Minute); got != time.Minute {
		t.Fatalf("expected default on parse failure, got %s", got)
	}
	t.Setenv(key, "-5s")
	if got := durationEnvOrDefault(key, time.Minute); got != time.Minute {
		t.Fatalf("expected default on non-positive, got %s", got)
	}
	t.Setenv(key, "90s")
	if got := durationEnvOrDefault(key, time.Minute); got != 90*time.Second {
		t.Fatalf("expected 90s, got %s", got)
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	const key = "CONFIG_TEST_INT"
	t.Setenv(key, "abc")
	if got := intEnvOrDefault(key, 7); got != 7 {
		t.Fatalf("expected default on parse failure, got %d", got)
	}
	t.Setenv(key, "0")
	if got := intEnvOrDefault(key, 7); got != 7 {
		t.Fatalf("expected default on non-positive, got %d", got)
	}
	t.Setenv(key, "3")
	if got := intEnvOrDefault(key, 7); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	const key = "CONFIG_TEST_BOOL"
	cases := map[string]bool{
		"1": true, "true": true, "YES": true,
		"0": false, "false": false, "No": false,
		"maybe": true, // falls back to default
	}
	for raw, expected := range cases {
		t.Setenv(key, raw)
		if got := boolEnvOrDefault(key, true); got != expected {
			t.Fatalf("bool %q expected %v, got %v", raw, expected, got)
		}
	}
}
