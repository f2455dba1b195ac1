package adapterout

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"pathora/internal/modules/curriculum/domain"
	portout "pathora/internal/modules/curriculum/port/out"
	"pathora/internal/platform/rest"
)

// HTTPPathAPI implements the path port over /learning-paths. Two lesson
// fields arrive as JSON encoded inside strings; a value that fails to parse
// degrades to the client-side default for that one lesson instead of failing
// the whole path.
type HTTPPathAPI struct {
	client *rest.Client
}

var _ portout.PathAPI = (*HTTPPathAPI)(nil)

func NewHTTPPathAPI(client *rest.Client) *HTTPPathAPI {
	return &HTTPPathAPI{client: client}
}

type pathPayload struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Difficulty  string          `json:"difficulty"`
	Modules     []modulePayload `json:"modules"`
}

type modulePayload struct {
	ID      int             `json:"id"`
	Title   string          `json:"title"`
	Order   int             `json:"order"`
	Lessons []lessonPayload `json:"lessons"`
}

type lessonPayload struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Difficulty    string `json:"difficulty"`
	EstimatedTime string `json:"estimated_time"`
	WhyItMatters  string `json:"why_it_matters"`
	WhatYouLearn  string `json:"what_you_learn"`
	AIResources   string `json:"ai_resources"`
	Status        string `json:"status"`
	// Prerequisites are serialized as the titles of the required lessons,
	// not their ids.
	PrerequisitesList []string `json:"prerequisites_list"`
}

func (a *HTTPPathAPI) ListPaths(ctx context.Context, userID int) ([]domain.Path, error) {
	var payload []pathPayload
	if err := a.client.Get(ctx, fmt.Sprintf("/learning-paths/?user_id=%d", userID), &payload); err != nil {
		return nil, err
	}
	paths := make([]domain.Path, 0, len(payload))
	for _, p := range payload {
		paths = append(paths, p.toDomain())
	}
	return paths, nil
}

func (a *HTTPPathAPI) PathDetail(ctx context.Context, pathID, userID int) (domain.Path, error) {
	var payload pathPayload
	if err := a.client.Get(ctx, fmt.Sprintf("/learning-paths/%d?user_id=%d", pathID, userID), &payload); err != nil {
		return domain.Path{}, err
	}
	return payload.toDomain(), nil
}

func (p pathPayload) toDomain() domain.Path {
	path := domain.Path{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Difficulty:  p.Difficulty,
	}
	modules := make([]domain.Module, 0, len(p.Modules))
	for _, m := range p.Modules {
		modules = append(modules, m.toDomain())
	}
	sort.SliceStable(modules, func(i, j int) bool { return modules[i].Order < modules[j].Order })
	path.Modules = modules
	return path
}

func (m modulePayload) toDomain() domain.Module {
	mod := domain.Module{ID: m.ID, Title: m.Title, Order: m.Order}
	for _, l := range m.Lessons {
		mod.Lessons = append(mod.Lessons, l.toDomain())
	}
	return mod
}

func (l lessonPayload) toDomain() domain.Lesson {
	return domain.Lesson{
		ID:            l.ID,
		Title:         l.Title,
		Content:       l.Content,
		Difficulty:    l.Difficulty,
		EstimatedTime: l.EstimatedTime,
		WhyItMatters:  l.WhyItMatters,
		WhatYouLearn:  parseStringList(l.WhatYouLearn),
		AIResources:   parseResources(l.AIResources),
		Status:        l.Status,
		Prerequisites: l.PrerequisitesList,
	}
}

func parseStringList(raw string) []string {
	if raw == "" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return items
}

type resourcePayload struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

func parseResources(raw string) []domain.LessonResource {
	if raw == "" {
		return nil
	}
	var items []resourcePayload
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	resources := make([]domain.LessonResource, 0, len(items))
	for _, r := range items {
		resources = append(resources, domain.LessonResource{Title: r.Title, URL: r.URL, Kind: r.Type})
	}
	return resources
}
