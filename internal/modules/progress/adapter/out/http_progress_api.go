package adapterout

import (
	"context"
	"fmt"

	"pathora/internal/modules/progress/domain"
	portout "pathora/internal/modules/progress/port/out"
	"pathora/internal/platform/rest"
)

// HTTPProgressAPI implements the progress port over /progress. Both progress
// endpoints answer in camelCase; the skill sets arrive as stringified lesson
// ids and a milestone's achievement is encoded as a nullable achievedDate.
type HTTPProgressAPI struct {
	client *rest.Client
}

var _ portout.ProgressAPI = (*HTTPProgressAPI)(nil)

func NewHTTPProgressAPI(client *rest.Client) *HTTPProgressAPI {
	return &HTTPProgressAPI{client: client}
}

type overviewPayload struct {
	CompletedSkills  []string `json:"completedSkills"`
	InProgressSkills []string `json:"inProgressSkills"`
	WeeklyStreak     int      `json:"weeklyStreak"`
	WeeklyGoalHours  float64  `json:"weeklyGoalHours"`
	TotalHoursSpent  float64  `json:"totalHoursSpent"`
	WeeklyActivity   []struct {
		Day   string  `json:"day"`
		Hours float64 `json:"hours"`
	} `json:"weeklyActivity"`
	Trajectory []struct {
		Month  string `json:"month"`
		Skills int    `json:"skills"`
	} `json:"trajectory"`
	Milestones []struct {
		Title        string  `json:"title"`
		Description  string  `json:"description"`
		AchievedDate *string `json:"achievedDate"`
	} `json:"milestones"`
	CurrentPath string `json:"currentPath"`
}

func (a *HTTPProgressAPI) Overview(ctx context.Context, userID int) (domain.Overview, error) {
	var payload overviewPayload
	if err := a.client.Get(ctx, fmt.Sprintf("/progress/overview/%d", userID), &payload); err != nil {
		return domain.Overview{}, err
	}

	overview := domain.Overview{
		CompletedSkillIDs:  payload.CompletedSkills,
		InProgressSkillIDs: payload.InProgressSkills,
		WeeklyStreak:       payload.WeeklyStreak,
		WeeklyGoalHours:    payload.WeeklyGoalHours,
		TotalHoursSpent:    payload.TotalHoursSpent,
		CurrentPath:        payload.CurrentPath,
	}
	for _, day := range payload.WeeklyActivity {
		overview.WeeklyActivity = append(overview.WeeklyActivity, domain.DayActivity{Day: day.Day, Hours: day.Hours})
	}
	for _, point := range payload.Trajectory {
		overview.Trajectory = append(overview.Trajectory, domain.TrajectoryPoint{Month: point.Month, Skills: point.Skills})
	}
	for _, m := range payload.Milestones {
		milestone := domain.Milestone{Title: m.Title, Description: m.Description}
		if m.AchievedDate != nil {
			milestone.Date = *m.AchievedDate
			milestone.Achieved = true
		}
		overview.Milestones = append(overview.Milestones, milestone)
	}
	return overview, nil
}

type pathProgressPayload struct {
	PathID           int `json:"pathId"`
	CompletedLessons int `json:"completedLessons"`
	TotalLessons     int `json:"totalLessons"`
}

func (a *HTTPProgressAPI) PathProgress(ctx context.Context, pathID, userID int) (domain.PathProgress, error) {
	var payload pathProgressPayload
	if err := a.client.Get(ctx, fmt.Sprintf("/progress/path/%d/%d", pathID, userID), &payload); err != nil {
		return domain.PathProgress{}, err
	}
	return domain.PathProgress{
		PathID:           payload.PathID,
		CompletedLessons: payload.CompletedLessons,
		TotalLessons:     payload.TotalLessons,
	}, nil
}

// CompleteLesson records time spent in hours: the backend sums time_spent
// straight into its hour totals.
func (a *HTTPProgressAPI) CompleteLesson(ctx context.Context, lessonID, userID int, timeSpentHours float64) error {
	path := fmt.Sprintf("/progress/complete/%d?user_id=%d&time_spent=%g", lessonID, userID, timeSpentHours)
	return a.client.Post(ctx, path, nil, nil)
}
