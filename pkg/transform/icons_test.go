package transform

import "testing"

func TestCategoryIcon(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"frontend", "code"},
		{"backend", "server"},
		{"design", "palette"},
		{"made-up-category", "target"},
		{"", "target"},
	}
	for _, tc := range tests {
		if got := CategoryIcon(tc.category); got != tc.want {
			t.Errorf("CategoryIcon(%q) = %q, want %q", tc.category, got, tc.want)
		}
	}
}

func TestCategoryTitle(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"frontend", "Frontend Development"},
		{"other", "Soft Skills & Methods"},
		{"cms", "Cms"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := CategoryTitle(tc.category); got != tc.want {
			t.Errorf("CategoryTitle(%q) = %q, want %q", tc.category, got, tc.want)
		}
	}
}

func TestRoleIcon(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{"Engineering Lead", "rocket"},
		{"Product Manager", "rocket"}, // manager keyword checked before product
		{"Creative Director", "rocket"},
		{"Senior Engineer", "file-text"},
		{"Product Designer", "file-text"},
		{"UI Developer", "pen-tool"},
		{"UX Researcher", "pen-tool"},
		{"Software Engineer", "briefcase"},
		{"", "briefcase"},
	}
	for _, tc := range tests {
		if got := RoleIcon(tc.role); got != tc.want {
			t.Errorf("RoleIcon(%q) = %q, want %q", tc.role, got, tc.want)
		}
	}
}

func TestFocusIcon(t *testing.T) {
	if got := FocusIcon("Sparkles"); got != "sparkles" {
		t.Errorf("FocusIcon(Sparkles) = %q, want sparkles", got)
	}
	if got := FocusIcon("no-such-icon"); got != "target" {
		t.Errorf("FocusIcon(no-such-icon) = %q, want target", got)
	}
}

func TestServiceIcon(t *testing.T) {
	if got := ServiceIcon("Gauge"); got != "Gauge" {
		t.Errorf("ServiceIcon(Gauge) = %q, want Gauge", got)
	}
	if got := ServiceIcon(""); got != "Code2" {
		t.Errorf("ServiceIcon(empty) = %q, want Code2", got)
	}
}
