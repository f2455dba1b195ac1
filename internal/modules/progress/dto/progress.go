package dto

type OverviewOutput struct {
	CompletedSkillIDs  []string
	InProgressSkillIDs []string
	CompletedSkills    int
	InProgressSkills   int
	WeeklyStreak       int
	WeeklyGoalHours    float64
	TotalHoursSpent    float64
	WeeklyHours        WeeklyHoursOutput
	WeeklyActivity     []DayActivityOutput
	Trajectory         []TrajectoryOutput
	Milestones         []MilestoneOutput
	CurrentPath        string
}

type WeeklyHoursOutput struct {
	Spent   float64
	Goal    float64
	Percent int
}

type DayActivityOutput struct {
	Day   string
	Hours float64
}

type TrajectoryOutput struct {
	Month  string
	Skills int
}

type MilestoneOutput struct {
	Title       string
	Description string
	Date        string
	Achieved    bool
}

type PathProgressOutput struct {
	PathID           int
	CompletedLessons int
	TotalLessons     int
	Percent          int
}

type CompleteSkillInput struct {
	SkillID    int
	SkillTitle string
	PathTitle  string
	Minutes    int
	Note       string
}
