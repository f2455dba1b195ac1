package adapterout

import (
	"context"
	"fmt"
	"time"

	"pathora/internal/modules/workspace/domain"
	portout "pathora/internal/modules/workspace/port/out"
	"pathora/internal/platform/rest"
)

// HTTPProjectAPI implements the project port over /projects. Technologies
// travel as one comma separated string; file contents travel inline as a
// path-to-content map.
type HTTPProjectAPI struct {
	client *rest.Client
}

var _ portout.ProjectAPI = (*HTTPProjectAPI)(nil)

func NewHTTPProjectAPI(client *rest.Client) *HTTPProjectAPI {
	return &HTTPProjectAPI{client: client}
}

type projectPayload struct {
	ID             int               `json:"id"`
	UserID         int               `json:"user_id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Status         string            `json:"status,omitempty"`
	Difficulty     string            `json:"difficulty"`
	Technologies   string            `json:"technologies"`
	Files          map[string]string `json:"files"`
	StartDate      string            `json:"start_date,omitempty"`
	EstimatedHours string            `json:"estimated_hours"`
}

func (a *HTTPProjectAPI) ListProjects(ctx context.Context, userID int) ([]domain.Project, error) {
	var payload []projectPayload
	if err := a.client.Get(ctx, fmt.Sprintf("/projects/user/%d", userID), &payload); err != nil {
		return nil, err
	}
	projects := make([]domain.Project, 0, len(payload))
	for _, p := range payload {
		projects = append(projects, p.toDomain())
	}
	return projects, nil
}

func (a *HTTPProjectAPI) Project(ctx context.Context, projectID int) (domain.Project, error) {
	var payload projectPayload
	if err := a.client.Get(ctx, fmt.Sprintf("/projects/%d", projectID), &payload); err != nil {
		return domain.Project{}, err
	}
	return payload.toDomain(), nil
}

func (a *HTTPProjectAPI) CreateProject(ctx context.Context, userID int, project domain.Project) (domain.Project, error) {
	var payload projectPayload
	path := fmt.Sprintf("/projects/?user_id=%d", userID)
	if err := a.client.Post(ctx, path, fromDomain(project), &payload); err != nil {
		return domain.Project{}, err
	}
	return payload.toDomain(), nil
}

func (a *HTTPProjectAPI) UpdateProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	var payload projectPayload
	if err := a.client.Put(ctx, fmt.Sprintf("/projects/%d", project.ID), fromDomain(project), &payload); err != nil {
		return domain.Project{}, err
	}
	return payload.toDomain(), nil
}

func (a *HTTPProjectAPI) UpdateStatus(ctx context.Context, projectID int, status string) error {
	path := fmt.Sprintf("/projects/%d/status?status=%s", projectID, status)
	return a.client.Put(ctx, path, nil, nil)
}

func (p projectPayload) toDomain() domain.Project {
	project := domain.Project{
		ID:             p.ID,
		UserID:         p.UserID,
		Title:          p.Title,
		Description:    p.Description,
		Status:         p.Status,
		Difficulty:     p.Difficulty,
		Technologies:   domain.ParseTechnologies(p.Technologies),
		Files:          p.Files,
		EstimatedHours: p.EstimatedHours,
	}
	if t, err := parseStartDate(p.StartDate); err == nil {
		project.StartDate = t
	}
	return project
}

// start_date arrives as a datetime, RFC 3339 or zoneless. Zoneless values
// are read as UTC; a bare date still parses for safety.
func parseStartDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty start date")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05.999999", value, time.UTC); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", value, time.UTC)
}

func fromDomain(project domain.Project) projectPayload {
	payload := projectPayload{
		ID:             project.ID,
		UserID:         project.UserID,
		Title:          project.Title,
		Description:    project.Description,
		Status:         project.Status,
		Difficulty:     project.Difficulty,
		Technologies:   domain.JoinTechnologies(project.Technologies),
		Files:          project.Files,
		EstimatedHours: project.EstimatedHours,
	}
	if !project.StartDate.IsZero() {
		payload.StartDate = project.StartDate.UTC().Format(time.RFC3339)
	}
	return payload
}
