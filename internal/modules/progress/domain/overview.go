// Package domain holds the progress aggregates and their reducers.
package domain

import "math"

// Overview is the server's progress summary. The backend reports the
// completed and in-progress sets as lists of stringified lesson ids; counts
// are derived here, never stored.
type Overview struct {
	CompletedSkillIDs  []string
	InProgressSkillIDs []string
	WeeklyStreak       int
	WeeklyGoalHours    float64
	TotalHoursSpent    float64
	WeeklyActivity     []DayActivity
	Trajectory         []TrajectoryPoint
	Milestones         []Milestone
	CurrentPath        string
}

func (o Overview) CompletedCount() int  { return len(o.CompletedSkillIDs) }
func (o Overview) InProgressCount() int { return len(o.InProgressSkillIDs) }

type DayActivity struct {
	Day   string
	Hours float64
}

type TrajectoryPoint struct {
	Month  string
	Skills int
}

// Milestone is achieved exactly when the backend stamped it with a date.
type Milestone struct {
	Title       string
	Description string
	Date        string
	Achieved    bool
}

type PathProgress struct {
	PathID           int
	CompletedLessons int
	TotalLessons     int
	Percent          int
}

// CompletionPercentage is the rounded percentage of completed items. An
// empty path reports 0, never a division error.
func CompletionPercentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}

// SkillCompletionPercentage reports how much of the given skill list the
// user has finished: |completed ∩ skills| over |skills|. Completed ids
// outside the list (other paths, deleted lessons) do not count.
func SkillCompletionPercentage(completedIDs, skillIDs []string) int {
	if len(skillIDs) == 0 {
		return 0
	}
	completed := make(map[string]bool, len(completedIDs))
	for _, id := range completedIDs {
		completed[id] = true
	}
	n := 0
	for _, id := range skillIDs {
		if completed[id] {
			n++
		}
	}
	return CompletionPercentage(n, len(skillIDs))
}

// WeeklyHours is the hours-toward-goal summary the dashboard renders.
type WeeklyHours struct {
	Spent   float64
	Goal    float64
	Percent int
}

// WeeklyHoursSummary totals the per-day activity against the weekly goal.
// Percent clamps at 100; without a goal it stays 0.
func (o Overview) WeeklyHoursSummary() WeeklyHours {
	summary := WeeklyHours{Spent: o.WeeklyHoursTotal(), Goal: o.WeeklyGoalHours}
	if summary.Goal > 0 {
		summary.Percent = int(math.Round(summary.Spent * 100 / summary.Goal))
		if summary.Percent > 100 {
			summary.Percent = 100
		}
	}
	return summary
}

// Normalize clamps negative hour values coming off the wire to zero so a
// buggy backend row cannot render a negative bar.
func (o Overview) Normalize() Overview {
	if o.WeeklyGoalHours < 0 {
		o.WeeklyGoalHours = 0
	}
	if o.TotalHoursSpent < 0 {
		o.TotalHoursSpent = 0
	}
	activity := make([]DayActivity, len(o.WeeklyActivity))
	for i, day := range o.WeeklyActivity {
		if day.Hours < 0 {
			day.Hours = 0
		}
		activity[i] = day
	}
	o.WeeklyActivity = activity
	return o
}

// WeeklyHoursTotal sums the normalized per-day activity.
func (o Overview) WeeklyHoursTotal() float64 {
	var total float64
	for _, day := range o.WeeklyActivity {
		if day.Hours > 0 {
			total += day.Hours
		}
	}
	return total
}
