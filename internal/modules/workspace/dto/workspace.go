package dto

import "time"

type ProjectOutput struct {
	ID             int
	Title          string
	Description    string
	Status         string
	Difficulty     string
	Technologies   []string
	FileCount      int
	StartDate      time.Time
	EstimatedHours string
}

type CreateProjectInput struct {
	Title          string
	Description    string
	Difficulty     string
	Technologies   []string
	EstimatedHours string
}

type CheckoutOutput struct {
	Project ProjectOutput
	Dir     string
}

type RunnerOutput struct {
	Name        string
	Version     string
	Description string
}

type RunCommandInput struct {
	Runner    string
	CommandID string
	InputJSON string
	ProjectID int
}

type RunResultOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
}
