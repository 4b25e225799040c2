// Package transform contains the pure display transformations applied to
// CMS collections: grouping, ordering, date-range formatting, and the
// icon/title lookup tables. Everything here is deterministic and total.
package transform

import (
	"sort"

	"github.com/bmelese/portfolio/pkg/core"
)

// categoryPriority fixes the display order of known skill categories.
// Categories outside this list sort after all known ones, in the order they
// were first seen.
var categoryPriority = []string{"design", "frontend", "backend", "database", "devops", "tools", "other"}

// SkillGroup is one display bucket of skills sharing a category.
type SkillGroup struct {
	Category string       `json:"category"`
	Title    string       `json:"title"`
	Icon     string       `json:"icon"`
	Skills   []core.Skill `json:"skills"`
}

// GroupSkills partitions skills by category and orders the result for
// display. Unknown categories form their own group rather than being
// dropped. Within a group, skills sort by Order ascending with ties kept in
// fetch order.
func GroupSkills(skills []core.Skill) []SkillGroup {
	grouped := make(map[string][]core.Skill)
	var firstSeen []string
	for _, s := range skills {
		if _, ok := grouped[s.Category]; !ok {
			firstSeen = append(firstSeen, s.Category)
		}
		grouped[s.Category] = append(grouped[s.Category], s)
	}

	categories := append([]string(nil), firstSeen...)
	sort.SliceStable(categories, func(i, j int) bool {
		return categoryRank(categories[i]) < categoryRank(categories[j])
	})

	groups := make([]SkillGroup, 0, len(categories))
	for _, cat := range categories {
		members := grouped[cat]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Order < members[j].Order
		})
		groups = append(groups, SkillGroup{
			Category: cat,
			Title:    CategoryTitle(cat),
			Icon:     CategoryIcon(cat),
			Skills:   members,
		})
	}
	return groups
}

// categoryRank maps a category to its position in the priority list.
// Unknown categories rank after every known one; SliceStable keeps their
// first-seen order among themselves.
func categoryRank(category string) int {
	for i, c := range categoryPriority {
		if c == category {
			return i
		}
	}
	return len(categoryPriority)
}

// SortProjects orders projects for display: Order ascending, then
// CompletedDate descending, ties kept in fetch order. The input slice is
// not modified.
func SortProjects(projects []core.Project) []core.Project {
	out := append([]core.Project(nil), projects...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CompletedDate > out[j].CompletedDate
	})
	return out
}

// Featured filters projects down to the featured subset, preserving order.
func Featured(projects []core.Project) []core.Project {
	var out []core.Project
	for _, p := range projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
