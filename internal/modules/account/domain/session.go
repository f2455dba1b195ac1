package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"

	apperrors "pathora/internal/platform/errors"
)

// State is the three-way session state the view router branches on.
// The auth check strictly precedes the onboarding check.
type State string

const (
	StateUnauthenticated    State = "unauthenticated"
	StateOnboardingRequired State = "onboarding-required"
	StateActive             State = "active"
)

// Session is the durable client-side session record. It exists only after
// a successful login or registration and is destroyed by logout.
type Session struct {
	UserID    int    `json:"user_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Token     string `json:"token"`
	Onboarded bool   `json:"onboarded"`
}

// Validate enforces the invariant: token present ⇔ user id present.
func (s Session) Validate() error {
	hasToken := strings.TrimSpace(s.Token) != ""
	hasUser := s.UserID != 0
	if hasToken != hasUser {
		return fmt.Errorf("session token and user id must be set together")
	}
	return nil
}

func (s Session) Authenticated() bool {
	return s.UserID != 0 && strings.TrimSpace(s.Token) != ""
}

// TokenExpired parses the bearer token's exp claim without verifying the
// signature — verification is the server's job; the client only avoids
// presenting a token it can already see is dead. Unparseable tokens are
// treated as live and left for the server to reject.
func (s Session) TokenExpired(now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.Token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

// StateAt reports the router-facing state for this session.
func (s Session) StateAt(now time.Time) State {
	if !s.Authenticated() || s.TokenExpired(now) {
		return StateUnauthenticated
	}
	if !s.Onboarded {
		return StateOnboardingRequired
	}
	return StateActive
}

type Profile struct {
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

type LoginInput struct {
	Identifier string `validate:"required"`
	Password   string `validate:"required"`
}

// Roles the backend accepts. Clients register as Student; Admin accounts
// are provisioned elsewhere.
const (
	RoleStudent = "Student"
	RoleAdmin   = "Admin"
)

type RegisterInput struct {
	FullName string `validate:"required"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required"`
	Password string `validate:"required,min=8"`
	Role     string `validate:"required,oneof=Student Admin"`
}

type ProfileUpdate struct {
	FullName        string
	Email           string `validate:"omitempty,email"`
	Phone           string
	Bio             string
	CareerGoal      string
	ExperienceLevel string
	WeeklyHours     string
}

// OnboardingAnswers is the one-time questionnaire gating first dashboard
// access; it also seeds the first AI-generated path.
type OnboardingAnswers struct {
	CareerGoal      string `validate:"required"`
	ExperienceLevel string `validate:"required,oneof=beginner intermediate advanced"`
	WeeklyHours     int    `validate:"required,min=1,max=80"`
	Topic           string `validate:"required"`
	DurationWeeks   int    `validate:"required,min=1,max=52"`
}

var validate = validator.New()

// CheckInput runs struct-tag validation locally, before any network call.
func CheckInput(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, firstViolation(err))
	}
	return nil
}

func firstViolation(err error) string {
	var errs validator.ValidationErrors
	if !castValidationErrors(err, &errs) || len(errs) == 0 {
		return err.Error()
	}
	f := errs[0]
	switch f.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", strings.ToLower(f.Field()))
	case "email":
		return "email address is not valid"
	case "min":
		return fmt.Sprintf("%s is too short or too small", strings.ToLower(f.Field()))
	default:
		return fmt.Sprintf("%s is invalid", strings.ToLower(f.Field()))
	}
}

func castValidationErrors(err error, out *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*out = verrs
	}
	return ok
}
