// Package portout declares the outbound dependencies of the account module.
package portout

import (
	"context"

	"pathora/internal/modules/account/domain"
)

// CredentialStore persists the session across process runs. Load returns
// apperrors.ErrNotAuthenticated when no session is stored.
type CredentialStore interface {
	Save(ctx context.Context, session domain.Session) error
	Load(ctx context.Context) (domain.Session, error)
	Clear(ctx context.Context) error
}

// AuthAPI talks to the backend's auth and user endpoints.
type AuthAPI interface {
	Login(ctx context.Context, identifier, password string) (domain.Session, error)
	Register(ctx context.Context, in domain.RegisterInput) error
	CompleteOnboarding(ctx context.Context, userID int) error
	Profile(ctx context.Context) (domain.Profile, error)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.Profile, error)
}

// SelectionClearer drops the remembered path selection on logout so the next
// login starts from the server's default again.
type SelectionClearer interface {
	ClearSelectedPath(ctx context.Context) error
}
