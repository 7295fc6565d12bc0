package cache

import "testing"

func TestMatchKeys(t *testing.T) {
	if got := JobMatchesKey("j1"); got != "match:job:j1" {
		t.Fatalf("JobMatchesKey() = %q", got)
	}
	if got := WorkerMatchesKey("w1"); got != "match:worker:w1" {
		t.Fatalf("WorkerMatchesKey() = %q", got)
	}

	keys := WorkerMatchesKeys([]string{"a", "b"})
	if len(keys) != 2 || keys[0] != "match:worker:a" || keys[1] != "match:worker:b" {
		t.Fatalf("WorkerMatchesKeys() = %v", keys)
	}
	if keys := JobMatchesKeys(nil); len(keys) != 0 {
		t.Fatalf("expected no keys for empty input, got %v", keys)
	}
}
