package postgres

import "testing"

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"plumbing":  "plumbing",
		"100%":      `100\%`,
		"c_sharp":   `c\_sharp`,
		`back\path`: `back\\path`,
	}
	for in, want := range tests {
		if got := escapeLike(in); got != want {
			t.Errorf("escapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}
