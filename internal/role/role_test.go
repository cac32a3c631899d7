package role

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"student", RoleStudent, false},
		{"teacher", RoleTeacher, false},
		{"admin", RoleAdmin, false},
		{"", "", true},
		{"Teacher", "", true},
		{"superuser", "", true},
	}

	for _, tc := range tests {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCapabilities(t *testing.T) {
	if RoleStudent.CanAuthor() {
		t.Error("students must not author")
	}
	if !RoleTeacher.CanAuthor() || !RoleAdmin.CanAuthor() {
		t.Error("teachers and admins must author")
	}
	for _, r := range []Role{RoleStudent, RoleTeacher, RoleAdmin} {
		if !r.CanTake() {
			t.Errorf("%s should be able to take quizzes", r)
		}
	}
}
