// Package domain models learning paths and their flattened skill view.
package domain

// Lesson statuses as the backend reports them. "upcoming" is the client-side
// default for anything unrecognized.
const (
	StatusUpcoming   = "upcoming"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Fallback copy used when the backend omits optional lesson fields.
const (
	DefaultDifficulty    = "beginner"
	DefaultEstimatedTime = "1 week"
	DefaultWhyItMatters  = "This skill is essential for your career path."
)

func DefaultWhatYouLearn() []string {
	return []string{"Core concepts", "Practical application", "Industry standards"}
}

type Path struct {
	ID          int
	Title       string
	Description string
	Difficulty  string
	Modules     []Module
}

// PathSummary is the listing row kept in the offline cache: enough to show
// the path picker without the module tree.
type PathSummary struct {
	ID          int
	Title       string
	Description string
	Difficulty  string
	ModuleCount int
	SkillCount  int
}

func Summarize(p Path) PathSummary {
	skills := 0
	for _, mod := range p.Modules {
		skills += len(mod.Lessons)
	}
	return PathSummary{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Difficulty:  p.Difficulty,
		ModuleCount: len(p.Modules),
		SkillCount:  skills,
	}
}

type Module struct {
	ID      int
	Title   string
	Order   int
	Lessons []Lesson
}

type Lesson struct {
	ID            int
	Title         string
	Content       string
	Difficulty    string
	EstimatedTime string
	WhyItMatters  string
	WhatYouLearn  []string
	AIResources   []LessonResource
	Status        string
	Prerequisites []string
}

type LessonResource struct {
	Title string
	URL   string
	Kind  string
}

// Skill is one row of the flattened path: a lesson annotated with its
// module's title as category, with display defaults filled in and a lock
// derived from its prerequisites.
type Skill struct {
	ID            int
	PathID        int
	Title         string
	Category      string
	Content       string
	Difficulty    string
	EstimatedTime string
	WhyItMatters  string
	WhatYouLearn  []string
	AIResources   []LessonResource
	Status        string
	Prerequisites []string
	Locked        bool
	Position      int
}

// Flatten walks the path's modules in order and the lessons inside each in
// order, producing the skill list the UI renders. Order is preserved exactly;
// an upcoming skill is locked while any of its prerequisites is not
// completed. Prerequisites reference lessons by title, which is how the
// backend serializes them.
func Flatten(path Path) []Skill {
	completed := make(map[string]bool)
	for _, mod := range path.Modules {
		for _, lesson := range mod.Lessons {
			if lesson.Status == StatusCompleted {
				completed[lesson.Title] = true
			}
		}
	}

	var skills []Skill
	position := 0
	for _, mod := range path.Modules {
		for _, lesson := range mod.Lessons {
			skills = append(skills, newSkill(path.ID, mod.Title, lesson, completed, position))
			position++
		}
	}
	return skills
}

func newSkill(pathID int, category string, lesson Lesson, completed map[string]bool, position int) Skill {
	skill := Skill{
		ID:            lesson.ID,
		PathID:        pathID,
		Title:         lesson.Title,
		Category:      category,
		Content:       lesson.Content,
		Difficulty:    lesson.Difficulty,
		EstimatedTime: lesson.EstimatedTime,
		WhyItMatters:  lesson.WhyItMatters,
		WhatYouLearn:  lesson.WhatYouLearn,
		AIResources:   lesson.AIResources,
		Status:        normalizeStatus(lesson.Status),
		Prerequisites: lesson.Prerequisites,
		Position:      position,
	}
	if skill.Difficulty == "" {
		skill.Difficulty = DefaultDifficulty
	}
	if skill.EstimatedTime == "" {
		skill.EstimatedTime = DefaultEstimatedTime
	}
	if skill.WhyItMatters == "" {
		skill.WhyItMatters = DefaultWhyItMatters
	}
	if len(skill.WhatYouLearn) == 0 {
		skill.WhatYouLearn = DefaultWhatYouLearn()
	}
	// A skill the user has already started or finished is never locked,
	// whatever its prerequisites say.
	if skill.Status == StatusUpcoming {
		for _, prereq := range lesson.Prerequisites {
			if !completed[prereq] {
				skill.Locked = true
				break
			}
		}
	}
	return skill
}

func normalizeStatus(status string) string {
	switch status {
	case StatusInProgress, StatusCompleted:
		return status
	default:
		return StatusUpcoming
	}
}
