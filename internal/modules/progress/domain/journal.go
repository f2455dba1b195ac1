package domain

import "time"

// JournalEntry is one locally kept record of a completed skill. The journal
// is append-only history the server never sees.
type JournalEntry struct {
	SkillID    int
	SkillTitle string
	PathTitle  string
	Minutes    int
	Note       string
	When       time.Time
}
