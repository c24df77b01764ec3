package endpoints

import (
	"context"
	"errors"

	"github.com/ijalalfrz/flyair-flight-service/internal/app/dto"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/account"
)

var errInvalidRequest = errors.New("invalid type")

type Endpoints struct {
	Flight      FlightEndpoint
	Reservation ReservationEndpoint
	Account     AccountEndpoint
}

func sessionFromContext(ctx context.Context) (dto.Session, error) {
	session, ok := account.SessionFromContext(ctx)
	if !ok {
		return dto.Session{}, account.ErrSessionNotFound
	}

	return session, nil
}
