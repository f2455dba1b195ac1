package domain

// StatusSet tracks which skills are started and which are done. The two sets
// are mutually exclusive: completing a skill removes it from the in-progress
// set, and a completed skill cannot be restarted. Every transition is
// idempotent.
type StatusSet struct {
	inProgress map[int]bool
	completed  map[int]bool
}

func NewStatusSet() *StatusSet {
	return &StatusSet{inProgress: make(map[int]bool), completed: make(map[int]bool)}
}

// NewStatusSetFrom seeds the set from already-known completed lesson ids.
func NewStatusSetFrom(completed []int) *StatusSet {
	s := NewStatusSet()
	for _, id := range completed {
		s.completed[id] = true
	}
	return s
}

// Start marks a skill in progress. Starting a completed or already-started
// skill changes nothing.
func (s *StatusSet) Start(id int) {
	if s.completed[id] {
		return
	}
	s.inProgress[id] = true
}

// Complete marks a skill done and drops it from the in-progress set.
func (s *StatusSet) Complete(id int) {
	delete(s.inProgress, id)
	s.completed[id] = true
}

func (s *StatusSet) InProgress(id int) bool { return s.inProgress[id] }
func (s *StatusSet) Completed(id int) bool  { return s.completed[id] }

func (s *StatusSet) CompletedCount() int  { return len(s.completed) }
func (s *StatusSet) InProgressCount() int { return len(s.inProgress) }

// StatusOf reports the display status for a skill.
func (s *StatusSet) StatusOf(id int) string {
	switch {
	case s.completed[id]:
		return "completed"
	case s.inProgress[id]:
		return "in-progress"
	default:
		return "upcoming"
	}
}
