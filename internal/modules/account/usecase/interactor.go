// Package usecase adapts the account service to the inbound port.
package usecase

import (
	"context"

	"pathora/internal/modules/account/domain"
	"pathora/internal/modules/account/dto"
	portin "pathora/internal/modules/account/port/in"
	"pathora/internal/modules/account/service"
	"pathora/internal/platform/clock"
)

type Interactor struct {
	svc   *service.AccountService
	clock clock.Clock
}

var _ portin.Usecase = (*Interactor)(nil)

func NewInteractor(svc *service.AccountService, clk clock.Clock) *Interactor {
	return &Interactor{svc: svc, clock: clk}
}

func (i *Interactor) Login(ctx context.Context, in dto.LoginInput) (dto.SessionOutput, error) {
	session, err := i.svc.Login(ctx, domain.LoginInput{Identifier: in.Identifier, Password: in.Password})
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return i.toOutput(session), nil
}

func (i *Interactor) Register(ctx context.Context, in dto.RegisterInput) (dto.SessionOutput, error) {
	session, err := i.svc.Register(ctx, domain.RegisterInput{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Password: in.Password,
		Role:     in.Role,
	})
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return i.toOutput(session), nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.svc.Logout(ctx)
}

func (i *Interactor) Current(ctx context.Context) (dto.SessionOutput, error) {
	session, err := i.svc.Current(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return i.toOutput(session), nil
}

func (i *Interactor) CompleteOnboarding(ctx context.Context) error {
	return i.svc.CompleteOnboarding(ctx)
}

func (i *Interactor) Profile(ctx context.Context) (dto.ProfileOutput, error) {
	profile, err := i.svc.Profile(ctx)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toProfileOutput(profile), nil
}

func (i *Interactor) UpdateProfile(ctx context.Context, in dto.ProfileUpdateInput) (dto.ProfileOutput, error) {
	profile, err := i.svc.UpdateProfile(ctx, domain.ProfileUpdate{
		FullName:        in.FullName,
		Email:           in.Email,
		Phone:           in.Phone,
		Bio:             in.Bio,
		CareerGoal:      in.CareerGoal,
		ExperienceLevel: in.ExperienceLevel,
		WeeklyHours:     in.WeeklyHours,
	})
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toProfileOutput(profile), nil
}

func (i *Interactor) Token() string {
	return i.svc.Token()
}

func (i *Interactor) toOutput(session domain.Session) dto.SessionOutput {
	return dto.SessionOutput{
		UserID:    session.UserID,
		FullName:  session.FullName,
		Email:     session.Email,
		Phone:     session.Phone,
		Role:      session.Role,
		Onboarded: session.Onboarded,
		State:     string(session.StateAt(i.clock.Now())),
	}
}

func toProfileOutput(profile domain.Profile) dto.ProfileOutput {
	return dto.ProfileOutput{
		UserID:          profile.UserID,
		FullName:        profile.FullName,
		Email:           profile.Email,
		Phone:           profile.Phone,
		Bio:             profile.Bio,
		CareerGoal:      profile.CareerGoal,
		ExperienceLevel: profile.ExperienceLevel,
		WeeklyHours:     profile.WeeklyHours,
		JoinedDate:      profile.JoinedDate,
	}
}
