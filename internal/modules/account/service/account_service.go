// Package service implements the account module's session lifecycle.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"pathora/internal/modules/account/domain"
	portout "pathora/internal/modules/account/port/out"
	"pathora/internal/platform/clock"
	apperrors "pathora/internal/platform/errors"
)

type AccountService struct {
	creds     portout.CredentialStore
	api       portout.AuthAPI
	selection portout.SelectionClearer
	clock     clock.Clock
	log       *zap.Logger
}

func NewAccountService(
	creds portout.CredentialStore,
	api portout.AuthAPI,
	selection portout.SelectionClearer,
	clk clock.Clock,
	log *zap.Logger,
) *AccountService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AccountService{creds: creds, api: api, selection: selection, clock: clk, log: log}
}

func (s *AccountService) Login(ctx context.Context, in domain.LoginInput) (domain.Session, error) {
	if err := domain.CheckInput(in); err != nil {
		return domain.Session{}, err
	}

	session, err := s.api.Login(ctx, in.Identifier, in.Password)
	if err != nil {
		if apperrors.Unauthorized(err) {
			return domain.Session{}, apperrors.ErrInvalidCredentials
		}
		return domain.Session{}, err
	}
	if err := session.Validate(); err != nil {
		return domain.Session{}, fmt.Errorf("login response: %w", err)
	}

	if err := s.creds.Save(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("persist session: %w", err)
	}
	s.log.Info("logged in", zap.Int("user_id", session.UserID))
	return session, nil
}

// Register creates the account and immediately logs in with the same
// credentials, mirroring the backend's register-then-login handshake.
// Callers never pick a role; anyone registering here is a Student.
func (s *AccountService) Register(ctx context.Context, in domain.RegisterInput) (domain.Session, error) {
	if in.Role == "" {
		in.Role = domain.RoleStudent
	}
	if err := domain.CheckInput(in); err != nil {
		return domain.Session{}, err
	}
	if err := s.api.Register(ctx, in); err != nil {
		return domain.Session{}, err
	}
	return s.Login(ctx, domain.LoginInput{Identifier: in.Email, Password: in.Password})
}

// Logout clears the stored session and the remembered path selection. The
// onboarding flag lives server-side on the user record, so a re-login lands
// straight on the dashboard. Logging out while logged out succeeds.
func (s *AccountService) Logout(ctx context.Context) error {
	if err := s.creds.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if err := s.selection.ClearSelectedPath(ctx); err != nil {
		return fmt.Errorf("clear path selection: %w", err)
	}
	s.log.Info("logged out")
	return nil
}

func (s *AccountService) Current(ctx context.Context) (domain.Session, error) {
	session, err := s.creds.Load(ctx)
	if err != nil {
		return domain.Session{}, err
	}
	if session.TokenExpired(s.clock.Now()) {
		return domain.Session{}, apperrors.ErrNotAuthenticated
	}
	return session, nil
}

func (s *AccountService) CompleteOnboarding(ctx context.Context) error {
	session, err := s.Current(ctx)
	if err != nil {
		return err
	}
	if session.Onboarded {
		return nil
	}
	if err := s.api.CompleteOnboarding(ctx, session.UserID); err != nil {
		return err
	}
	session.Onboarded = true
	if err := s.creds.Save(ctx, session); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	s.log.Info("onboarding complete", zap.Int("user_id", session.UserID))
	return nil
}

func (s *AccountService) Profile(ctx context.Context) (domain.Profile, error) {
	if _, err := s.Current(ctx); err != nil {
		return domain.Profile{}, err
	}
	return s.api.Profile(ctx)
}

func (s *AccountService) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.Profile, error) {
	if err := domain.CheckInput(update); err != nil {
		return domain.Profile{}, err
	}
	session, err := s.Current(ctx)
	if err != nil {
		return domain.Profile{}, err
	}

	profile, err := s.api.UpdateProfile(ctx, update)
	if err != nil {
		return domain.Profile{}, err
	}

	// Keep the cached display name in sync with the server copy.
	if profile.FullName != "" && profile.FullName != session.FullName {
		session.FullName = profile.FullName
		session.Email = profile.Email
		if err := s.creds.Save(ctx, session); err != nil {
			return domain.Profile{}, fmt.Errorf("persist session: %w", err)
		}
	}
	return profile, nil
}

// Token returns the stored bearer token without an expiry check; the server
// is the authority on rejecting stale tokens mid-flight.
func (s *AccountService) Token() string {
	session, err := s.creds.Load(context.Background())
	if err != nil {
		return ""
	}
	return session.Token
}
