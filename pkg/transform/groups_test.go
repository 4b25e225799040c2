package transform

import (
	"testing"

	"github.com/bmelese/portfolio/pkg/core"
)

func TestGroupSkillsOrder(t *testing.T) {
	skills := []core.Skill{
		{ID: "1", Name: "React", Category: "frontend", Order: 2},
		{ID: "2", Name: "Workshops", Category: "unknown", Order: 1},
		{ID: "3", Name: "Figma", Category: "design", Order: 1},
		{ID: "4", Name: "CSS", Category: "frontend", Order: 1},
	}

	groups := GroupSkills(skills)

	wantOrder := []string{"design", "frontend", "unknown"}
	if len(groups) != len(wantOrder) {
		t.Fatalf("got %d groups, want %d", len(groups), len(wantOrder))
	}
	for i, want := range wantOrder {
		if groups[i].Category != want {
			t.Errorf("group[%d] = %q, want %q", i, groups[i].Category, want)
		}
	}

	// Within frontend, CSS (order 1) must precede React (order 2).
	frontend := groups[1]
	if frontend.Skills[0].Name != "CSS" || frontend.Skills[1].Name != "React" {
		t.Errorf("frontend order = [%s, %s], want [CSS, React]",
			frontend.Skills[0].Name, frontend.Skills[1].Name)
	}
}

func TestGroupSkillsUnknownsFirstSeen(t *testing.T) {
	skills := []core.Skill{
		{ID: "1", Category: "zeta"},
		{ID: "2", Category: "alpha"},
		{ID: "3", Category: "backend"},
	}

	groups := GroupSkills(skills)

	// Known category first, then unknowns in first-seen order (not
	// alphabetical).
	want := []string{"backend", "zeta", "alpha"}
	for i, cat := range want {
		if groups[i].Category != cat {
			t.Errorf("group[%d] = %q, want %q", i, groups[i].Category, cat)
		}
	}
}

func TestGroupSkillsTiesKeepFetchOrder(t *testing.T) {
	skills := []core.Skill{
		{ID: "a", Name: "First", Category: "tools", Order: 5},
		{ID: "b", Name: "Second", Category: "tools", Order: 5},
		{ID: "c", Name: "Third", Category: "tools", Order: 5},
	}

	groups := GroupSkills(skills)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if groups[0].Skills[i].Name != want {
			t.Errorf("skill[%d] = %q, want %q", i, groups[0].Skills[i].Name, want)
		}
	}
}

func TestGroupSkillsEmpty(t *testing.T) {
	if groups := GroupSkills(nil); len(groups) != 0 {
		t.Errorf("GroupSkills(nil) = %v, want empty", groups)
	}
}

func TestSortProjects(t *testing.T) {
	projects := []core.Project{
		{ID: "late", Order: 2, CompletedDate: "2024-01-01"},
		{ID: "older", Order: 1, CompletedDate: "2022-01-01"},
		{ID: "newer", Order: 1, CompletedDate: "2023-06-01"},
	}

	sorted := SortProjects(projects)

	want := []string{"newer", "older", "late"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Errorf("sorted[%d] = %q, want %q", i, sorted[i].ID, id)
		}
	}

	// Input untouched.
	if projects[0].ID != "late" {
		t.Error("SortProjects mutated its input")
	}
}

func TestFeatured(t *testing.T) {
	projects := []core.Project{
		{ID: "a", Featured: true},
		{ID: "b"},
		{ID: "c", Featured: true},
	}

	got := Featured(projects)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("Featured = %v, want [a c]", got)
	}
}
