package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/auth"
	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/Misha2007/smart-city-event-map/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultSessionTTL = 7 * 24 * time.Hour
	minPasswordLen    = 8
)

type AuthService struct {
	users    ports.UserRepo
	sessions ports.SessionRepo
	profiles ports.ProfileRepo
	ttl      time.Duration
	logger   logger.Logger
	now      func() time.Time
}

func NewAuthService(
	users ports.UserRepo,
	sessions ports.SessionRepo,
	profiles ports.ProfileRepo,
	ttl time.Duration,
	logger logger.Logger,
) *AuthService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		users:    users,
		sessions: sessions,
		profiles: profiles,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// SignUp registers a user with a starter profile and signs them in.
func (s *AuthService) SignUp(ctx context.Context, creds domain.Credentials) (domain.IssuedSession, error) {
	user, err := s.register(ctx, creds)
	if err != nil {
		return domain.IssuedSession{}, err
	}
	return s.issue(ctx, user)
}

func (s *AuthService) register(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	email, err := normalizeEmail(creds.Email)
	if err != nil {
		return domain.User{}, err
	}
	if len(creds.Password) < minPasswordLen {
		return domain.User{}, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	hash, err := auth.HashPassword(creds.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, email, hash)
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	if _, err = s.profiles.Upsert(ctx, user.ID, defaultProfileInput(user)); err != nil {
		s.logger.Warn("failed to create starter profile",
			logger.String("user_id", user.ID),
			logger.String("error", err.Error()),
		)
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (domain.IssuedSession, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(creds.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.IssuedSession{}, domain.ErrInvalidLogin
		}
		return domain.IssuedSession{}, fmt.Errorf("get user: %w", err)
	}

	ok, err := auth.VerifyPassword(creds.Password, user.PasswordHash)
	if err != nil {
		return domain.IssuedSession{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return domain.IssuedSession{}, domain.ErrInvalidLogin
	}

	return s.issue(ctx, user)
}

func (s *AuthService) issue(ctx context.Context, user domain.User) (domain.IssuedSession, error) {
	token, hash, err := auth.NewToken()
	if err != nil {
		return domain.IssuedSession{}, err
	}

	now := s.now().UTC()
	rec := domain.SessionRecord{
		TokenHash: hash,
		UserID:    user.ID,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err = s.sessions.Create(ctx, rec); err != nil {
		return domain.IssuedSession{}, fmt.Errorf("create session: %w", err)
	}

	return domain.IssuedSession{Token: token, ExpiresAt: rec.ExpiresAt, User: user}, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, auth.HashToken(token)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Resolve turns a bearer token into the caller's identity and role.
func (s *AuthService) Resolve(ctx context.Context, token string) (domain.Session, error) {
	if token == "" {
		return domain.Session{}, domain.ErrUnauthorized
	}

	hash := auth.HashToken(token)
	rec, err := s.sessions.Get(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return domain.Session{}, domain.ErrUnauthorized
		}
		return domain.Session{}, fmt.Errorf("get session: %w", err)
	}
	if !s.now().Before(rec.ExpiresAt) {
		if err = s.sessions.Delete(ctx, hash); err != nil {
			s.logger.Warn("failed to delete expired session", logger.String("error", err.Error()))
		}
		return domain.Session{}, domain.ErrSessionExpired
	}

	user, err := s.users.GetByID(ctx, rec.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Session{}, domain.ErrUnauthorized
		}
		return domain.Session{}, fmt.Errorf("get user: %w", err)
	}

	role, err := s.users.GetRole(ctx, user.ID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("get role: %w", err)
	}

	return domain.Session{User: user, Role: role, ExpiresAt: rec.ExpiresAt}, nil
}

func (s *AuthService) SetRole(ctx context.Context, userID string, role domain.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	if err := s.users.SetRole(ctx, userID, role); err != nil {
		return fmt.Errorf("set role: %w", err)
	}
	return nil
}

// EnsureUser registers creds if the email is new and grants role either way.
// It backs the create-admin command.
func (s *AuthService) EnsureUser(ctx context.Context, creds domain.Credentials, role domain.Role) (domain.User, error) {
	if !role.Valid() {
		return domain.User{}, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	user, err := s.register(ctx, creds)
	if errors.Is(err, domain.ErrEmailTaken) {
		email, _ := normalizeEmail(creds.Email)
		user, err = s.users.GetByEmail(ctx, email)
	}
	if err != nil {
		return domain.User{}, err
	}

	if err = s.SetRole(ctx, user.ID, role); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// PurgeExpiredSessions satisfies the scheduler's sessionPurger.
func (s *AuthService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := s.sessions.PurgeExpired(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("purge expired sessions: %w", err)
	}
	return n, nil
}

func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil || addr.Name != "" {
		return "", fmt.Errorf("%w: email is invalid", domain.ErrValidation)
	}
	return strings.ToLower(addr.Address), nil
}
