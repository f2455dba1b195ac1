package dto

import "time"

type LoginInput struct {
	Identifier string
	Password   string
}

type RegisterInput struct {
	FullName string
	Email    string
	Phone    string
	Password string
	Role     string
}

// SessionOutput is what callers (CLI, TUI router) see of the session.
type SessionOutput struct {
	UserID    int
	FullName  string
	Email     string
	Phone     string
	Role      string
	Onboarded bool
	State     string
}

type OnboardingInput struct {
	CareerGoal      string
	ExperienceLevel string
	WeeklyHours     int
	Topic           string
	DurationWeeks   int
}

type ProfileOutput struct {
	UserID          int
	FullName        string
	Email           string
	Phone           string
	Bio             string
	CareerGoal      string
	ExperienceLevel string
	WeeklyHours     string
	JoinedDate      time.Time
}

type ProfileUpdateInput struct {
	FullName        string
	Email           string
	Phone           string
	Bio             string
	CareerGoal      string
	ExperienceLevel string
	WeeklyHours     string
}
