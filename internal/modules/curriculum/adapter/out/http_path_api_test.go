package adapterout_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	adapterout "pathora/internal/modules/curriculum/adapter/out"
	"pathora/internal/platform/rest"
)

// Mirrors what the backend actually serializes: statuses merged per user,
// prerequisites as lesson titles, and the two embedded-JSON string fields.
const pathListBody = `[
  {
    "id": 7,
    "title": "Backend Foundations",
    "description": "SQL and friends",
    "difficulty": "beginner",
    "modules": [
      {
        "id": 1,
        "title": "Databases",
        "order": 1,
        "lessons": [
          {
            "id": 10,
            "title": "Intro to SQL",
            "content": "...",
            "difficulty": "beginner",
            "estimated_time": "2 days",
            "why_it_matters": "",
            "what_you_learn": "[\"SELECT\",\"WHERE\"]",
            "ai_resources": "[{\"title\":\"SQLBolt\",\"url\":\"https://sqlbolt.com\",\"type\":\"tutorial\"}]",
            "status": "completed",
            "prerequisites_list": []
          },
          {
            "id": 11,
            "title": "Joins",
            "content": "...",
            "difficulty": "intermediate",
            "estimated_time": "3 days",
            "why_it_matters": "",
            "what_you_learn": "",
            "ai_resources": "",
            "status": "upcoming",
            "prerequisites_list": ["Intro to SQL"]
          }
        ]
      }
    ]
  }
]`

func TestListPathsDecodesBackendShape(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/learning-paths/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(pathListBody))
	}))
	defer srv.Close()

	api := adapterout.NewHTTPPathAPI(rest.NewClient(srv.URL, func() string { return "" }, nil))
	paths, err := api.ListPaths(context.Background(), 3)
	if err != nil {
		t.Fatalf("list paths: %v", err)
	}
	if len(paths) != 1 || len(paths[0].Modules) != 1 {
		t.Fatalf("unexpected shape: %+v", paths)
	}

	lessons := paths[0].Modules[0].Lessons
	if len(lessons) != 2 {
		t.Fatalf("expected 2 lessons, got %d", len(lessons))
	}
	if !reflect.DeepEqual(lessons[1].Prerequisites, []string{"Intro to SQL"}) {
		t.Fatalf("prerequisites must keep the lesson titles, got %v", lessons[1].Prerequisites)
	}
	if !reflect.DeepEqual(lessons[0].WhatYouLearn, []string{"SELECT", "WHERE"}) {
		t.Fatalf("embedded what_you_learn must parse, got %v", lessons[0].WhatYouLearn)
	}
	if len(lessons[0].AIResources) != 1 || lessons[0].AIResources[0].Kind != "tutorial" {
		t.Fatalf("embedded ai_resources must parse, got %+v", lessons[0].AIResources)
	}
	if lessons[1].WhatYouLearn != nil {
		t.Fatalf("empty embedded field must stay nil, got %v", lessons[1].WhatYouLearn)
	}
}
