package usecase

import "testing"

func TestAllowPolicy(t *testing.T) {
	allow := NewAllowPolicy([]string{"Jared@Example.com", " charlee@example.com ", ""})

	tests := []struct {
		email string
		want  bool
	}{
		{"jared@example.com", true},
		{"JARED@EXAMPLE.COM", true},
		{"  charlee@example.com", true},
		{"stranger@example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := allow(tt.email); got != tt.want {
			t.Errorf("allow(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestAllowPolicyEmptyListDeniesEveryone(t *testing.T) {
	allow := NewAllowPolicy(nil)

	if allow("anyone@example.com") {
		t.Error("empty allowlist let someone in")
	}
}
