// Package domain models practice projects and their local checkouts.
package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "pathora/internal/platform/errors"
)

const (
	StatusPlanning   = "planning"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Project mirrors the backend record. EstimatedHours is free text on the
// wire ("40" as much as "40-60 hours"), so it stays a string here.
type Project struct {
	ID             int
	UserID         int
	Title          string
	Description    string
	Status         string
	Difficulty     string
	Technologies   []string
	Files          map[string]string
	StartDate      time.Time
	EstimatedHours string
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPlanning, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func (p Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: project title is required", apperrors.ErrInvalidInput)
	}
	if p.Status != "" && !ValidStatus(p.Status) {
		return fmt.Errorf("%w: unknown project status %q", apperrors.ErrInvalidInput, p.Status)
	}
	return nil
}

// ParseTechnologies splits the wire format, a comma separated string.
func ParseTechnologies(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	techs := make([]string, 0, len(parts))
	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			techs = append(techs, t)
		}
	}
	return techs
}

func JoinTechnologies(techs []string) string {
	return strings.Join(techs, ", ")
}
