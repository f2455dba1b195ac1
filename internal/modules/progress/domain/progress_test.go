package domain_test

import (
	"testing"

	"pathora/internal/modules/progress/domain"
)

func TestCompletionPercentage(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"empty path", 0, 0, 0},
		{"none done", 0, 10, 0},
		{"all done", 10, 10, 100},
		{"rounds up", 1, 3, 33},
		{"rounds half up", 1, 2, 50},
		{"two thirds", 2, 3, 67},
		{"negative total", 3, -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := domain.CompletionPercentage(tc.completed, tc.total); got != tc.want {
				t.Fatalf("CompletionPercentage(%d, %d) = %d, want %d", tc.completed, tc.total, got, tc.want)
			}
		})
	}
}

func TestStatusSetTransitionsAreIdempotent(t *testing.T) {
	t.Parallel()
	s := domain.NewStatusSet()

	s.Start(1)
	s.Start(1)
	if s.InProgressCount() != 1 {
		t.Fatalf("double start must count once, got %d", s.InProgressCount())
	}

	s.Complete(1)
	s.Complete(1)
	if s.CompletedCount() != 1 {
		t.Fatalf("double complete must count once, got %d", s.CompletedCount())
	}
}

func TestStatusSetsAreMutuallyExclusive(t *testing.T) {
	t.Parallel()
	s := domain.NewStatusSet()

	s.Start(5)
	s.Complete(5)
	if s.InProgress(5) {
		t.Fatalf("completed skill must leave the in-progress set")
	}
	if !s.Completed(5) {
		t.Fatalf("skill should be completed")
	}

	// A completed skill cannot be restarted.
	s.Start(5)
	if s.InProgress(5) {
		t.Fatalf("restarting a completed skill must be a no-op")
	}
	if s.StatusOf(5) != "completed" {
		t.Fatalf("unexpected status: %s", s.StatusOf(5))
	}
}

func TestSkillCompletionPercentageCountsOnlyListedSkills(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		completed []string
		skills    []string
		want      int
	}{
		{"no skills", []string{"1"}, nil, 0},
		{"nothing done", nil, []string{"1", "2"}, 0},
		{"half done", []string{"1"}, []string{"1", "2"}, 50},
		{"all done", []string{"1", "2"}, []string{"1", "2"}, 100},
		{"stale ids ignored", []string{"1", "99"}, []string{"1", "2"}, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := domain.SkillCompletionPercentage(tc.completed, tc.skills); got != tc.want {
				t.Fatalf("SkillCompletionPercentage(%v, %v) = %d, want %d", tc.completed, tc.skills, got, tc.want)
			}
		})
	}
}

func TestWeeklyHoursSummary(t *testing.T) {
	t.Parallel()
	o := domain.Overview{
		WeeklyGoalHours: 10,
		WeeklyActivity: []domain.DayActivity{
			{Day: "Mon", Hours: 2},
			{Day: "Tue", Hours: 1.5},
		},
	}
	summary := o.WeeklyHoursSummary()
	if summary.Spent != 3.5 || summary.Goal != 10 || summary.Percent != 35 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestWeeklyHoursSummaryClampsAtFullGoal(t *testing.T) {
	t.Parallel()
	o := domain.Overview{
		WeeklyGoalHours: 5,
		WeeklyActivity:  []domain.DayActivity{{Day: "Mon", Hours: 12}},
	}
	if got := o.WeeklyHoursSummary().Percent; got != 100 {
		t.Fatalf("percent must clamp at 100, got %d", got)
	}
}

func TestWeeklyHoursSummaryWithoutGoal(t *testing.T) {
	t.Parallel()
	o := domain.Overview{WeeklyActivity: []domain.DayActivity{{Day: "Mon", Hours: 4}}}
	if got := o.WeeklyHoursSummary().Percent; got != 0 {
		t.Fatalf("no goal means no percentage, got %d", got)
	}
}

func TestNormalizeClampsNegativeHours(t *testing.T) {
	t.Parallel()
	o := domain.Overview{
		WeeklyGoalHours: -2,
		TotalHoursSpent: -10,
		WeeklyActivity: []domain.DayActivity{
			{Day: "Mon", Hours: 1.5},
			{Day: "Tue", Hours: -3},
		},
	}
	n := o.Normalize()
	if n.WeeklyGoalHours != 0 || n.TotalHoursSpent != 0 {
		t.Fatalf("negative totals must clamp to zero: %+v", n)
	}
	if n.WeeklyActivity[1].Hours != 0 {
		t.Fatalf("negative day must clamp to zero: %+v", n.WeeklyActivity)
	}
	if got := n.WeeklyHoursTotal(); got != 1.5 {
		t.Fatalf("weekly total = %v, want 1.5", got)
	}
}
