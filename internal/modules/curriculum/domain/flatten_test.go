package domain_test

import (
	"reflect"
	"testing"

	"pathora/internal/modules/curriculum/domain"
)

func TestFlattenPreservesOrderAndCategories(t *testing.T) {
	t.Parallel()
	path := domain.Path{
		ID: 1,
		Modules: []domain.Module{
			{Title: "Foundations", Lessons: []domain.Lesson{{ID: 10, Title: "A"}, {ID: 11, Title: "B"}}},
			{Title: "Advanced", Lessons: []domain.Lesson{{ID: 12, Title: "C"}}},
		},
	}

	skills := domain.Flatten(path)
	if len(skills) != 3 {
		t.Fatalf("expected 3 skills, got %d", len(skills))
	}
	wantTitles := []string{"A", "B", "C"}
	wantCategories := []string{"Foundations", "Foundations", "Advanced"}
	for i, skill := range skills {
		if skill.Title != wantTitles[i] || skill.Category != wantCategories[i] {
			t.Fatalf("skill %d = %s/%s, want %s/%s", i, skill.Title, skill.Category, wantTitles[i], wantCategories[i])
		}
		if skill.Position != i {
			t.Fatalf("skill %d has position %d", i, skill.Position)
		}
		if skill.PathID != 1 {
			t.Fatalf("skill %d missing path id", i)
		}
	}
}

func TestFlattenFillsDisplayDefaults(t *testing.T) {
	t.Parallel()
	path := domain.Path{Modules: []domain.Module{{Title: "M", Lessons: []domain.Lesson{{ID: 1, Title: "Bare"}}}}}

	skill := domain.Flatten(path)[0]
	if skill.Difficulty != "beginner" {
		t.Fatalf("difficulty default = %q", skill.Difficulty)
	}
	if skill.EstimatedTime != "1 week" {
		t.Fatalf("estimated time default = %q", skill.EstimatedTime)
	}
	if skill.Status != domain.StatusUpcoming {
		t.Fatalf("status default = %q", skill.Status)
	}
	if skill.WhyItMatters != domain.DefaultWhyItMatters {
		t.Fatalf("why-it-matters default = %q", skill.WhyItMatters)
	}
	if !reflect.DeepEqual(skill.WhatYouLearn, domain.DefaultWhatYouLearn()) {
		t.Fatalf("what-you-learn default = %v", skill.WhatYouLearn)
	}
}

func TestFlattenKeepsProvidedValues(t *testing.T) {
	t.Parallel()
	lesson := domain.Lesson{
		ID:            1,
		Title:         "Full",
		Difficulty:    "advanced",
		EstimatedTime: "3 days",
		WhyItMatters:  "Because.",
		WhatYouLearn:  []string{"X"},
		Status:        domain.StatusInProgress,
	}
	skill := domain.Flatten(domain.Path{Modules: []domain.Module{{Title: "M", Lessons: []domain.Lesson{lesson}}}})[0]
	if skill.Difficulty != "advanced" || skill.EstimatedTime != "3 days" || skill.Status != domain.StatusInProgress {
		t.Fatalf("provided values were overwritten: %+v", skill)
	}
	if !reflect.DeepEqual(skill.WhatYouLearn, []string{"X"}) {
		t.Fatalf("what-you-learn was overwritten: %v", skill.WhatYouLearn)
	}
}

func TestFlattenNormalizesUnknownStatus(t *testing.T) {
	t.Parallel()
	path := domain.Path{Modules: []domain.Module{{Lessons: []domain.Lesson{{ID: 1, Status: "weird"}}}}}
	if got := domain.Flatten(path)[0].Status; got != domain.StatusUpcoming {
		t.Fatalf("unknown status should normalize to upcoming, got %q", got)
	}
}

func TestFlattenLocksBehindIncompletePrerequisites(t *testing.T) {
	t.Parallel()
	path := domain.Path{Modules: []domain.Module{{
		Title: "M",
		Lessons: []domain.Lesson{
			{ID: 1, Title: "Variables", Status: domain.StatusCompleted},
			{ID: 2, Title: "Loops", Status: domain.StatusUpcoming},
			{ID: 3, Title: "Functions", Prerequisites: []string{"Variables"}},
			{ID: 4, Title: "Closures", Prerequisites: []string{"Variables", "Loops"}},
		},
	}}}

	skills := domain.Flatten(path)
	if skills[2].Locked {
		t.Fatalf("skill with completed prerequisite must be unlocked")
	}
	if !skills[3].Locked {
		t.Fatalf("skill with an incomplete prerequisite must be locked")
	}
}

func TestFlattenNeverLocksStartedOrFinishedSkills(t *testing.T) {
	t.Parallel()
	path := domain.Path{Modules: []domain.Module{{
		Title: "M",
		Lessons: []domain.Lesson{
			{ID: 1, Title: "Loops", Status: domain.StatusUpcoming},
			{ID: 2, Title: "Recursion", Status: domain.StatusCompleted, Prerequisites: []string{"Loops"}},
			{ID: 3, Title: "Trees", Status: domain.StatusInProgress, Prerequisites: []string{"Loops"}},
		},
	}}}

	skills := domain.Flatten(path)
	if skills[1].Locked {
		t.Fatalf("a completed skill must not be locked by its prerequisites")
	}
	if skills[2].Locked {
		t.Fatalf("an in-progress skill must not be locked by its prerequisites")
	}
}
