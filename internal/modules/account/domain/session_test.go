package domain_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pathora/internal/modules/account/domain"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "4",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestStateAtChecksAuthBeforeOnboarding(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// Not onboarded AND not authenticated: auth wins.
	s := domain.Session{Onboarded: false}
	if got := s.StateAt(now); got != domain.StateUnauthenticated {
		t.Fatalf("expected unauthenticated, got %s", got)
	}

	s = domain.Session{UserID: 1, Token: signedToken(t, now.Add(time.Hour))}
	if got := s.StateAt(now); got != domain.StateOnboardingRequired {
		t.Fatalf("expected onboarding-required, got %s", got)
	}

	s.Onboarded = true
	if got := s.StateAt(now); got != domain.StateActive {
		t.Fatalf("expected active, got %s", got)
	}
}

func TestExpiredTokenDropsToUnauthenticated(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s := domain.Session{UserID: 1, Onboarded: true, Token: signedToken(t, now.Add(-time.Minute))}
	if got := s.StateAt(now); got != domain.StateUnauthenticated {
		t.Fatalf("expected unauthenticated for expired token, got %s", got)
	}
}

func TestOpaqueTokenIsLeftForTheServer(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s := domain.Session{UserID: 1, Onboarded: true, Token: "not-a-jwt"}
	if s.TokenExpired(now) {
		t.Fatalf("opaque tokens must not be treated as expired")
	}
}
