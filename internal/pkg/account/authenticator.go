package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ijalalfrz/flyair-flight-service/internal/app/dto"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/events"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/kvstore"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// record is the persisted account. The password never leaves this package.
type record struct {
	UserID       string `json:"uid"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	CreatedAt    string `json:"createdAt"`
}

type resetRequest struct {
	Token     string `json:"token"`
	UserID    string `json:"uid"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

type Config struct {
	NotificationsTopic string
	BcryptCost         int
}

// Authenticator provides sign-up, sign-in, sessions, password reset and
// profile documents on top of the key-value store.
type Authenticator struct {
	store     kvstore.Store
	limiter   Limiter
	publisher events.Publisher
	cfg       Config
	now       func() time.Time
}

func NewAuthenticator(store kvstore.Store, limiter Limiter, publisher events.Publisher, cfg Config) *Authenticator {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}

	return &Authenticator{
		store:     store,
		limiter:   limiter,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

// CreateAccount registers email and opens a session for it. The account key is
// claimed atomically, so concurrent sign-ups for one email yield a single account.
func (a *Authenticator) CreateAccount(ctx context.Context, email, password string) (dto.Session, error) {
	email = normalizeEmail(email)

	_, found, err := a.findAccount(ctx, email)
	if err != nil {
		return dto.Session{}, err
	}

	if found {
		return dto.Session{}, ErrEmailAlreadyInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.cfg.BcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return dto.Session{}, ErrPasswordTooLong
	}

	if err != nil {
		return dto.Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	acc := record{
		UserID:       uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    utils.FormatISO(a.now()),
	}

	data, err := json.Marshal(acc)
	if err != nil {
		return dto.Session{}, fmt.Errorf("failed to marshal account: %w", err)
	}

	claimed, err := a.store.SetIfAbsent(ctx, kvstore.Scoped(kvstore.AccountsKey, email), string(data))
	if err != nil {
		return dto.Session{}, fmt.Errorf("failed to save account: %w", err)
	}

	if !claimed {
		return dto.Session{}, ErrEmailAlreadyInUse
	}

	slog.InfoContext(ctx, "account created", slog.String("uid", acc.UserID))

	return a.openSession(ctx, acc)
}

// DeleteAccount removes the account, its session and its profile. It undoes a
// registration that could not be completed.
func (a *Authenticator) DeleteAccount(ctx context.Context, session dto.Session) error {
	keys := []string{
		kvstore.Scoped(kvstore.ProfilesKey, session.UserID),
		kvstore.Scoped(kvstore.UserTokenKey, session.Token),
		kvstore.Scoped(kvstore.AccountsKey, normalizeEmail(session.Email)),
	}

	for _, key := range keys {
		if err := a.store.Remove(ctx, key); err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}
	}

	slog.InfoContext(ctx, "account deleted", slog.String("uid", session.UserID))

	return nil
}

// SignIn checks the credentials and opens a session.
func (a *Authenticator) SignIn(ctx context.Context, email, password string) (dto.Session, error) {
	email = normalizeEmail(email)

	if a.limiter != nil {
		allowed, err := a.limiter.Allow(ctx, "login:"+email)
		if err != nil {
			return dto.Session{}, fmt.Errorf("failed to rate limit: %w", err)
		}

		if !allowed {
			return dto.Session{}, ErrTooManyAttempts
		}
	}

	acc, found, err := a.findAccount(ctx, email)
	if err != nil {
		return dto.Session{}, err
	}

	if !found {
		return dto.Session{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return dto.Session{}, ErrInvalidCredentials
	}

	return a.openSession(ctx, acc)
}

func (a *Authenticator) SignOut(ctx context.Context, token string) error {
	if err := a.store.Remove(ctx, kvstore.Scoped(kvstore.UserTokenKey, token)); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}

	return nil
}

// ResolveSession returns the session behind a login token.
func (a *Authenticator) ResolveSession(ctx context.Context, token string) (dto.Session, error) {
	if token == "" {
		return dto.Session{}, ErrSessionNotFound
	}

	var session dto.Session

	found, err := a.get(ctx, kvstore.Scoped(kvstore.UserTokenKey, token), &session)
	if err != nil {
		return dto.Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	if !found {
		return dto.Session{}, ErrSessionNotFound
	}

	return session, nil
}

// SendPasswordReset records a reset token and hands it to the notification topic.
func (a *Authenticator) SendPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	acc, found, err := a.findAccount(ctx, email)
	if err != nil {
		return err
	}

	if !found {
		return ErrAccountNotFound
	}

	req := resetRequest{
		Token:     uuid.New().String(),
		UserID:    acc.UserID,
		Email:     acc.Email,
		CreatedAt: utils.FormatISO(a.now()),
	}

	if err := a.put(ctx, kvstore.Scoped(kvstore.PasswordResetKey, req.Token), req); err != nil {
		return fmt.Errorf("failed to save password reset: %w", err)
	}

	if a.publisher != nil {
		payload := map[string]string{
			"type":  events.PasswordResetRequested,
			"email": req.Email,
			"token": req.Token,
		}
		if err := a.publisher.Publish(ctx, a.cfg.NotificationsTopic, acc.UserID, payload); err != nil {
			return fmt.Errorf("failed to send password reset: %w", err)
		}
	}

	return nil
}

// GetProfile returns the profile document; found is false when none was written.
func (a *Authenticator) GetProfile(ctx context.Context, userID string) (dto.Profile, bool, error) {
	var profile dto.Profile

	found, err := a.get(ctx, kvstore.Scoped(kvstore.ProfilesKey, userID), &profile)
	if err != nil {
		return dto.Profile{}, false, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, found, nil
}

func (a *Authenticator) SetProfile(ctx context.Context, userID string, profile dto.Profile) error {
	if err := a.put(ctx, kvstore.Scoped(kvstore.ProfilesKey, userID), profile); err != nil {
		return fmt.Errorf("failed to set profile: %w", err)
	}

	return nil
}

func (a *Authenticator) openSession(ctx context.Context, acc record) (dto.Session, error) {
	session := dto.Session{
		Token:     uuid.New().String(),
		UserID:    acc.UserID,
		Email:     acc.Email,
		CreatedAt: utils.FormatISO(a.now()),
	}

	if err := a.put(ctx, kvstore.Scoped(kvstore.UserTokenKey, session.Token), session); err != nil {
		return dto.Session{}, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

func (a *Authenticator) findAccount(ctx context.Context, email string) (record, bool, error) {
	var acc record

	found, err := a.get(ctx, kvstore.Scoped(kvstore.AccountsKey, email), &acc)
	if err != nil {
		return record{}, false, fmt.Errorf("failed to get account: %w", err)
	}

	return acc, found, nil
}

func (a *Authenticator) get(ctx context.Context, key string, v interface{}) (bool, error) {
	data, found, err := a.store.Get(ctx, key)
	if err != nil {
		return false, err
	}

	if !found {
		return false, nil
	}

	if err := json.Unmarshal([]byte(data), v); err != nil {
		return false, errors.Join(fmt.Errorf("malformed %s", key), err)
	}

	return true, nil
}

func (a *Authenticator) put(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return a.store.Set(ctx, key, string(data))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
