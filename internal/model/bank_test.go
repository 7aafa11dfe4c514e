package model

import "testing"

func TestTestTypeLabel(t *testing.T) {
	tests := []struct {
		testType TestType
		want     string
	}{
		{PreTest, "Pre Test"},
		{PostTest, "Post Test"},
		{TestType("other"), "other"},
	}

	for _, tt := range tests {
		if got := tt.testType.Label(); got != tt.want {
			t.Errorf("%s.Label() = %q, want %q", tt.testType, got, tt.want)
		}
	}
}
