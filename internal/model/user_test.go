package model

import "testing"

func TestRoleSegment(t *testing.T) {
	tests := []struct {
		role UserRole
		want Segment
	}{
		{Admin, SegmentAdmin},
		{SuperAdmin, SegmentAdmin},
		{Management, SegmentManagement},
		{HealthWorker, SegmentHealthWorker},
		{Patient, SegmentPatient},
	}

	for _, tt := range tests {
		if got := tt.role.Segment(); got != tt.want {
			t.Errorf("%s.Segment() = %s, want %s", tt.role, got, tt.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	for _, role := range []UserRole{Admin, SuperAdmin, Management, HealthWorker, Patient} {
		if !role.Valid() {
			t.Errorf("%s should be valid", role)
		}
	}
	for _, role := range []UserRole{"", "guest", "ADMIN", "pasien"} {
		if role.Valid() {
			t.Errorf("%q should not be valid", role)
		}
	}
}
