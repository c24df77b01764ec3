package endpoints

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/flyair-flight-service/internal/app/dto"
)

type AccountService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	Logout(ctx context.Context, session dto.Session) error
	RequestPasswordReset(ctx context.Context, req dto.PasswordResetRequest) error
	GetProfile(ctx context.Context, userID string) (dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (dto.ProfileResponse, error)
}

type AccountEndpoint struct {
	Register             endpoint.Endpoint
	Login                endpoint.Endpoint
	Logout               endpoint.Endpoint
	RequestPasswordReset endpoint.Endpoint
	GetProfile           endpoint.Endpoint
	UpdateProfile        endpoint.Endpoint
}

func MakeAccountEndpoint(service AccountService) AccountEndpoint {
	return AccountEndpoint{
		Register:             makeRegisterEndpoint(service),
		Login:                makeLoginEndpoint(service),
		Logout:               makeLogoutEndpoint(service),
		RequestPasswordReset: makeRequestPasswordResetEndpoint(service),
		GetProfile:           makeGetProfileEndpoint(service),
		UpdateProfile:        makeUpdateProfileEndpoint(service),
	}
}

func makeRegisterEndpoint(service AccountService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.RegisterRequest)
		if !ok || request == nil {
			return nil, errInvalidRequest
		}

		res, err := service.Register(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("account service: %w", err)
		}

		return res, nil
	}
}

func makeLoginEndpoint(service AccountService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.LoginRequest)
		if !ok || request == nil {
			return nil, errInvalidRequest
		}

		res, err := service.Login(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("account service: %w", err)
		}

		return res, nil
	}
}

func makeLogoutEndpoint(service AccountService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		if err := service.Logout(ctx, session); err != nil {
			return nil, fmt.Errorf("account service: %w", err)
		}

		return nil, nil
	}
}

func makeRequestPasswordResetEndpoint(service AccountService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.PasswordResetRequest)
		if !ok || request == nil {
			return nil, errInvalidRequest
		}

		if err := service.RequestPasswordReset(ctx, *request); err != nil {
			return nil, fmt.Errorf("account service: %w", err)
		}

		return dto.Response{Message: "password reset email sent"}, nil
	}
}

func makeGetProfileEndpoint(service AccountService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		res, err := service.GetProfile(ctx, session.UserID)
		if err != nil {
			return nil, fmt.Errorf("account service: %w", err)
		}

		return res, nil
	}
}

func makeUpdateProfileEndpoint(service AccountService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.UpdateProfileRequest)
		if !ok || request == nil {
			return nil, errInvalidRequest
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		res, err := service.UpdateProfile(ctx, session.UserID, *request)
		if err != nil {
			return nil, fmt.Errorf("account service: %w", err)
		}

		return res, nil
	}
}
