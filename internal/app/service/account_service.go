package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/flyair-flight-service/internal/app/dto"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/utils"
)

type AccountDirectory interface {
	CreateAccount(ctx context.Context, email, password string) (dto.Session, error)
	DeleteAccount(ctx context.Context, session dto.Session) error
	SignIn(ctx context.Context, email, password string) (dto.Session, error)
	SignOut(ctx context.Context, token string) error
	SendPasswordReset(ctx context.Context, email string) error
	GetProfile(ctx context.Context, userID string) (dto.Profile, bool, error)
	SetProfile(ctx context.Context, userID string, profile dto.Profile) error
}

type AccountService struct {
	Directory AccountDirectory
	now       func() time.Time
}

func NewAccountService(directory AccountDirectory) *AccountService {
	return &AccountService{
		Directory: directory,
		now:       time.Now,
	}
}

// Register godoc
// @Summary      Create an account and its profile
// @Tags         Auth
// @Param        request  body      dto.RegisterRequest  true  "Account"
// @Success      201      {object}  dto.AuthResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/v1/auth/register [post]
func (s *AccountService) Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	session, err := s.Directory.CreateAccount(ctx, req.Email, req.Password)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	profile := dto.Profile{
		Fullname:  req.Fullname,
		Email:     session.Email,
		Phone:     req.Phone,
		CreatedAt: utils.FormatISO(s.now()),
	}

	if err := s.Directory.SetProfile(ctx, session.UserID, profile); err != nil {
		// undo the sign-up so the email can register again
		if delErr := s.Directory.DeleteAccount(ctx, session); delErr != nil {
			slog.ErrorContext(ctx, "failed to roll back account",
				slog.String("uid", session.UserID), slog.String("error", delErr.Error()))
		}

		return dto.AuthResponse{}, fmt.Errorf("failed to create profile: %w", err)
	}

	return toAuthResponse(session), nil
}

func (s *AccountService) Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	session, err := s.Directory.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	return toAuthResponse(session), nil
}

func (s *AccountService) Logout(ctx context.Context, session dto.Session) error {
	return s.Directory.SignOut(ctx, session.Token)
}

func (s *AccountService) RequestPasswordReset(ctx context.Context, req dto.PasswordResetRequest) error {
	return s.Directory.SendPasswordReset(ctx, req.Email)
}

func (s *AccountService) GetProfile(ctx context.Context, userID string) (dto.ProfileResponse, error) {
	profile, found, err := s.Directory.GetProfile(ctx, userID)
	if err != nil {
		return dto.ProfileResponse{}, err
	}

	if !found {
		return dto.ProfileResponse{}, ErrProfileNotFound
	}

	return dto.ProfileResponse{UserID: userID, Profile: profile}, nil
}

// UpdateProfile changes the name and phone. Email and creation date are kept.
func (s *AccountService) UpdateProfile(
	ctx context.Context,
	userID string,
	req dto.UpdateProfileRequest,
) (dto.ProfileResponse, error) {
	current, err := s.GetProfile(ctx, userID)
	if err != nil {
		return dto.ProfileResponse{}, err
	}

	profile := current.Profile
	profile.Fullname = req.Fullname
	profile.Phone = req.Phone

	if err := s.Directory.SetProfile(ctx, userID, profile); err != nil {
		return dto.ProfileResponse{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return dto.ProfileResponse{UserID: userID, Profile: profile}, nil
}

func toAuthResponse(session dto.Session) dto.AuthResponse {
	return dto.AuthResponse{
		Token:  session.Token,
		UserID: session.UserID,
		Email:  session.Email,
	}
}
