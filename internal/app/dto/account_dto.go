package dto

import (
	"net/http"

	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/exception"
)

// Session is the persisted login token. Its presence is what "logged in" means.
type Session struct {
	Token     string `json:"token"`
	UserID    string `json:"uid"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// Profile is the user document written at sign-up.
type Profile struct {
	Fullname  string `json:"fullname"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"createdAt"`
}

type RegisterRequest struct {
	Fullname        string `json:"fullname" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,len=8,number"`
	Password        string `json:"password" validate:"required,max=72,strongpassword"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=Password"`
}

func (r *RegisterRequest) Bind(_ *http.Request) error {
	return validateRequest(r)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Bind(_ *http.Request) error {
	return validateRequest(r)
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r *PasswordResetRequest) Bind(_ *http.Request) error {
	return validateRequest(r)
}

type UpdateProfileRequest struct {
	Fullname string `json:"fullname" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,len=8,number"`
}

func (r *UpdateProfileRequest) Bind(_ *http.Request) error {
	return validateRequest(r)
}

type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"uid"`
	Email  string `json:"email"`
}

type ProfileResponse struct {
	UserID  string  `json:"uid"`
	Profile Profile `json:"profile"`
}

func validateRequest(req interface{}) error {
	if err := ValidateSingleError(req); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}
