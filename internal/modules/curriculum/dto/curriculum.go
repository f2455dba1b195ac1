package dto

import progressdto "pathora/internal/modules/progress/dto"

type PathOutput struct {
	ID          int
	Title       string
	Description string
	Difficulty  string
	ModuleCount int
	SkillCount  int
}

type SkillOutput struct {
	ID            int
	PathID        int
	Title         string
	Category      string
	Content       string
	Difficulty    string
	EstimatedTime string
	WhyItMatters  string
	WhatYouLearn  []string
	AIResources   []ResourceOutput
	Status        string
	Prerequisites []string
	Locked        bool
	Position      int
}

type ResourceOutput struct {
	Title string
	URL   string
	Kind  string
}

// LoadOptions steers path selection for the initial load.
type LoadOptions struct {
	RequestedPathID int
	ForceLatest     bool
}

// InitialData is everything the dashboard needs, fetched in one shot.
// Completion is the share of the selected path's skills present in the
// overview's completed set.
type InitialData struct {
	Paths      []PathOutput
	Selected   PathOutput
	Skills     []SkillOutput
	Overview   progressdto.OverviewOutput
	Completion int
}
