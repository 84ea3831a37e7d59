package env

import "testing"

func TestGetFallsBackWhenUnset(t *testing.T) {
	if got := Get("ATELIER_ENV_TEST_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}

	t.Setenv("ATELIER_ENV_TEST_SET", "value")
	if got := Get("ATELIER_ENV_TEST_SET", "fallback"); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}
}

func TestGetBoolParsesTruthyValues(t *testing.T) {
	if !GetBool("ATELIER_ENV_TEST_UNSET", true) {
		t.Fatalf("unset variable must return the fallback")
	}

	for _, truthy := range []string{"1", "true", "YES"} {
		t.Setenv("ATELIER_ENV_TEST_BOOL", truthy)
		if !GetBool("ATELIER_ENV_TEST_BOOL", false) {
			t.Fatalf("%q must parse as true", truthy)
		}
	}

	t.Setenv("ATELIER_ENV_TEST_BOOL", "nope")
	if GetBool("ATELIER_ENV_TEST_BOOL", true) {
		t.Fatalf("unknown value must parse as false")
	}
}
