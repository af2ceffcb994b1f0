package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	repo "github.com/Rihab-nikh/followUp-Backend/internal/domain/repository"
	"github.com/Rihab-nikh/followUp-Backend/pkg/helpers"
	"github.com/Rihab-nikh/followUp-Backend/pkg/mailer"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

func resetTokenKey(token string) string {
	return "pwd:reset:token:" + token
}

// AuthService owns registration, login, token refresh and the password
// flows. Redis and Queue are optional; without them the reset-password flow
// reports itself unavailable and everything else still works.
type AuthService struct {
	Users    repo.UserRepository
	JWT      *helpers.JWTManager
	Redis    *redis.Client
	Queue    *helpers.RabbitPublisher
	Logger   *logrus.Logger
	ResetURL string
	ResetTTL time.Duration
}

type TokenPair struct {
	AccessToken   string
	AccessExpiry  time.Time
	RefreshToken  string
	RefreshExpiry time.Time
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, queue *helpers.RabbitPublisher, logger *logrus.Logger, resetURL string, resetTTL time.Duration) *AuthService {
	return &AuthService{
		Users:    users,
		JWT:      jwt,
		Redis:    rdb,
		Queue:    queue,
		Logger:   logger,
		ResetURL: resetURL,
		ResetTTL: resetTTL,
	}
}

// Register creates a user account with the default role and preferences.
// Password strength is validated by the handler before it gets here.
func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (*entity.User, error) {
	if _, err := s.Users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:          email,
		Password:       hash,
		FullName:       fullName,
		Role:           entity.RoleUser,
		AvatarInitials: entity.AvatarInitialsFor(fullName),
		Preferences:    entity.DefaultPreferences(),
	}
	if _, err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login validates credentials, stamps last_login and issues a token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, TokenPair, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, TokenPair{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.Users.UpdateLastLogin(ctx, u.ID, now); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("update last_login failed")
	}
	u.LastLogin = &now

	pair, err := s.IssueTokens(u.ID)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// IssueTokens generates a fresh access/refresh pair for the user.
func (s *AuthService) IssueTokens(userID string) (TokenPair, error) {
	access, aexp, err := s.JWT.Generate(userID, helpers.TokenAccess)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.Generate(userID, helpers.TokenRefresh)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, AccessExpiry: aexp, RefreshToken: refresh, RefreshExpiry: rexp}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The refresh
// token itself is not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	claims, err := s.JWT.Verify(refreshToken, helpers.TokenRefresh)
	if err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if _, err := s.Users.GetByID(ctx, claims.UserID); err != nil {
		return "", time.Time{}, ErrUserNotFound
	}
	return s.JWT.Generate(claims.UserID, helpers.TokenAccess)
}

// ChangePassword verifies the current password before storing the new hash.
// New-password strength is validated by the handler.
func (s *AuthService) ChangePassword(ctx context.Context, userID, current, next string) error {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return ErrUserNotFound
	}
	if !helpers.CompareHashAndPassword(u.Password, current) {
		return ErrWrongPassword
	}
	hash, err := helpers.HashPassword(next)
	if err != nil {
		return err
	}
	_, err = s.Users.Update(ctx, userID, repo.UserPatch{Password: &hash})
	return err
}

// ForgotPassword issues a single-use reset token and queues the email. It
// succeeds silently for unknown addresses so the endpoint never leaks which
// emails have accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if s.Redis == nil {
		return errors.New("password reset unavailable: redis not configured")
	}
	u, err := s.Users.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	token := uuid.NewString()
	if err := s.Redis.Set(ctx, resetTokenKey(token), u.ID, s.ResetTTL).Err(); err != nil {
		return err
	}

	if s.Queue != nil {
		job := mailer.EmailJob{
			To:       u.Email,
			Template: "reset_password",
			Data: map[string]any{
				"name":      u.FullName,
				"reset_url": s.ResetURL + "?token=" + token,
				"expires":   s.ResetTTL.String(),
			},
		}
		if err := s.Queue.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Error("queue reset email failed")
		}
	}
	return nil
}

// ResetPassword consumes a reset token and stores the new password hash.
// New-password strength is validated by the handler.
func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	if s.Redis == nil {
		return errors.New("password reset unavailable: redis not configured")
	}
	key := resetTokenKey(token)
	userID, err := s.Redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return ErrInvalidResetToken
	}
	if err != nil {
		return err
	}
	if err := s.Redis.Del(ctx, key).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("delete reset token failed")
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}
	ok, err := s.Users.Update(ctx, userID, repo.UserPatch{Password: &hash})
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidResetToken
	}
	return nil
}
