package adapterout

import (
	"context"
	"fmt"

	"pathora/internal/modules/account/domain"
	portout "pathora/internal/modules/account/port/out"
	"pathora/internal/platform/rest"
)

// HTTPAuthAPI implements the auth port over the backend's /login and /users
// endpoints.
type HTTPAuthAPI struct {
	client *rest.Client
}

var _ portout.AuthAPI = (*HTTPAuthAPI)(nil)

func NewHTTPAuthAPI(client *rest.Client) *HTTPAuthAPI {
	return &HTTPAuthAPI{client: client}
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        struct {
		ID          int    `json:"id"`
		FullName    string `json:"full_name"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		Role        string `json:"role"`
		IsOnboarded bool   `json:"is_onboarded"`
	} `json:"user"`
}

func (a *HTTPAuthAPI) Login(ctx context.Context, identifier, password string) (domain.Session, error) {
	var resp loginResponse
	err := a.client.Post(ctx, "/login", loginRequest{Identifier: identifier, Password: password}, &resp)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{
		UserID:    resp.User.ID,
		Email:     resp.User.Email,
		FullName:  resp.User.FullName,
		Phone:     resp.User.Phone,
		Role:      resp.User.Role,
		Token:     resp.AccessToken,
		Onboarded: resp.User.IsOnboarded,
	}, nil
}

type registerRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (a *HTTPAuthAPI) Register(ctx context.Context, in domain.RegisterInput) error {
	return a.client.Post(ctx, "/register", registerRequest{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Password: in.Password,
		Role:     in.Role,
	}, nil)
}

func (a *HTTPAuthAPI) CompleteOnboarding(ctx context.Context, userID int) error {
	return a.client.Patch(ctx, fmt.Sprintf("/users/%d/complete-onboarding", userID), nil, nil)
}

type profilePayload struct {
	ID              int    `json:"id"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Bio             string `json:"bio"`
	CareerGoal      string `json:"career_goal"`
	ExperienceLevel string `json:"experience_level"`
	WeeklyHours     string `json:"weekly_hours"`
	CreatedAt       string `json:"created_at"`
}

func (a *HTTPAuthAPI) Profile(ctx context.Context) (domain.Profile, error) {
	var payload profilePayload
	if err := a.client.Get(ctx, "/users/profile", &payload); err != nil {
		return domain.Profile{}, err
	}
	return payload.toDomain(), nil
}

func (a *HTTPAuthAPI) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.Profile, error) {
	body := map[string]string{
		"full_name":        update.FullName,
		"email":            update.Email,
		"phone":            update.Phone,
		"bio":              update.Bio,
		"career_goal":      update.CareerGoal,
		"experience_level": update.ExperienceLevel,
		"weekly_hours":     update.WeeklyHours,
	}
	var payload profilePayload
	if err := a.client.Put(ctx, "/users/profile/update", body, &payload); err != nil {
		return domain.Profile{}, err
	}
	return payload.toDomain(), nil
}

func (p profilePayload) toDomain() domain.Profile {
	profile := domain.Profile{
		UserID:          p.ID,
		FullName:        p.FullName,
		Email:           p.Email,
		Phone:           p.Phone,
		Bio:             p.Bio,
		CareerGoal:      p.CareerGoal,
		ExperienceLevel: p.ExperienceLevel,
		WeeklyHours:     p.WeeklyHours,
	}
	if t, err := parseServerTime(p.CreatedAt); err == nil {
		profile.JoinedDate = t
	}
	return profile
}
