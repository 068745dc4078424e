package utils

import "testing"

func TestUUIDGeneratorGenerate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	if !IsValidID(first) {
		t.Errorf("generated ID is not a valid UUID: %s", first)
	}
	if first == second {
		t.Error("expected consecutive generated IDs to differ")
	}
}

func TestIsValidID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"v7 uuid", "0191b3a9-1111-7000-8000-00000000000f", true},
		{"v4 uuid", "9f86d081-884c-4d63-a1fd-0d2b0a7c2f3a", true},
		{"empty", "", false},
		{"random text", "not-a-uuid", false},
		{"truncated", "0191b3a9-1111-7000-8000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidID(tt.id); got != tt.want {
				t.Errorf("IsValidID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
