package adapterout_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	adapterout "pathora/internal/modules/progress/adapter/out"
	"pathora/internal/platform/rest"
)

// The overview endpoint answers in camelCase, with the skill sets as
// stringified lesson ids and milestone achievement as a nullable date.
const overviewBody = `{
  "completedSkills": ["10", "11"],
  "inProgressSkills": ["12"],
  "weeklyStreak": 4,
  "weeklyGoalHours": 10,
  "totalHoursSpent": 37.5,
  "weeklyActivity": [{"day": "Mon", "hours": 2.5}],
  "trajectory": [{"month": "Aug", "skills": 3}],
  "milestones": [
    {"id": 1, "title": "First Steps", "description": "Complete your first lesson", "icon": "star", "achievedDate": "2026-08-01"},
    {"id": 2, "title": "Path Master", "description": "Finish a full path", "icon": "trophy", "achievedDate": null}
  ],
  "currentPath": "Backend Foundations"
}`

func TestOverviewDecodesBackendShape(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/progress/overview/3" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(overviewBody))
	}))
	defer srv.Close()

	api := adapterout.NewHTTPProgressAPI(rest.NewClient(srv.URL, func() string { return "" }, nil))
	overview, err := api.Overview(context.Background(), 3)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if !reflect.DeepEqual(overview.CompletedSkillIDs, []string{"10", "11"}) {
		t.Fatalf("completed ids = %v", overview.CompletedSkillIDs)
	}
	if overview.InProgressCount() != 1 || overview.CompletedCount() != 2 {
		t.Fatalf("counts must derive from the id lists: %+v", overview)
	}
	if overview.TotalHoursSpent != 37.5 || overview.WeeklyStreak != 4 {
		t.Fatalf("totals did not decode: %+v", overview)
	}
	if len(overview.Milestones) != 2 {
		t.Fatalf("expected 2 milestones, got %+v", overview.Milestones)
	}
	if !overview.Milestones[0].Achieved || overview.Milestones[0].Date != "2026-08-01" {
		t.Fatalf("dated milestone must be achieved: %+v", overview.Milestones[0])
	}
	if overview.Milestones[1].Achieved || overview.Milestones[1].Date != "" {
		t.Fatalf("null achievedDate means not achieved: %+v", overview.Milestones[1])
	}
}

func TestPathProgressDecodesBackendShape(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/progress/path/7/3" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pathId": 7, "completedLessons": 5, "totalLessons": 12, "progressPercent": 41.67}`))
	}))
	defer srv.Close()

	api := adapterout.NewHTTPProgressAPI(rest.NewClient(srv.URL, func() string { return "" }, nil))
	progress, err := api.PathProgress(context.Background(), 7, 3)
	if err != nil {
		t.Fatalf("path progress: %v", err)
	}
	if progress.PathID != 7 || progress.CompletedLessons != 5 || progress.TotalLessons != 12 {
		t.Fatalf("unexpected progress: %+v", progress)
	}
}

func TestCompleteLessonSendsHoursOnTheQuery(t *testing.T) {
	t.Parallel()
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Path + "?" + r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "ok"}`))
	}))
	defer srv.Close()

	api := adapterout.NewHTTPProgressAPI(rest.NewClient(srv.URL, func() string { return "" }, nil))
	if err := api.CompleteLesson(context.Background(), 10, 3, 0.5); err != nil {
		t.Fatalf("complete lesson: %v", err)
	}
	if got != "/progress/complete/10?user_id=3&time_spent=0.5" {
		t.Fatalf("unexpected request: %s", got)
	}
}
