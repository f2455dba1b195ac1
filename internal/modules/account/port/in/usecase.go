// Package portin declares the inbound boundary of the account module.
package portin

import (
	"context"

	"pathora/internal/modules/account/dto"
)

type Usecase interface {
	// Login authenticates against the backend and persists the session.
	Login(ctx context.Context, in dto.LoginInput) (dto.SessionOutput, error)
	// Register creates the account, then logs in with the same credentials.
	Register(ctx context.Context, in dto.RegisterInput) (dto.SessionOutput, error)
	// Logout destroys the stored session. Calling it while logged out is a no-op.
	Logout(ctx context.Context) error
	// Current returns the stored session, or ErrNotAuthenticated.
	Current(ctx context.Context) (dto.SessionOutput, error)
	// CompleteOnboarding records the questionnaire server-side and flips the
	// stored session's onboarded flag.
	CompleteOnboarding(ctx context.Context) error
	Profile(ctx context.Context) (dto.ProfileOutput, error)
	UpdateProfile(ctx context.Context, in dto.ProfileUpdateInput) (dto.ProfileOutput, error)
	// Token exposes the current bearer token for the REST client; empty when
	// logged out.
	Token() string
}
