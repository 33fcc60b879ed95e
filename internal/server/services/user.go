package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/logging"
	"github.com/dmitrijs2005/tasktracker/internal/server/auth"
	"github.com/dmitrijs2005/tasktracker/internal/server/config"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tasktracker/internal/shared"
	"github.com/dmitrijs2005/tasktracker/internal/timex"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUserNameLength = 3
	maxUserNameLength = 150
	minPasswordLength = 8
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Registration is the sign-up form.
type Registration struct {
	UserName        string
	Email           string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
}

// UserService provides account operations:
// - Register / Login: create users, verify credentials and mint tokens
// - RefreshToken / Logout: rotate and revoke refresh tokens
// - Profile / DeleteAccount
type UserService struct {
	repomanager                  repomanager.RepositoryManager
	clock                        timex.Clock
	logger                       logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	bcryptCost                   int
	// dummyHash is compared against when the login name is unknown, so both
	// failure paths cost one bcrypt comparison.
	dummyHash []byte
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config, clock timex.Clock, logger logging.Logger) *UserService {
	s := &UserService{
		repomanager:                  m,
		clock:                        clock,
		logger:                       logger.With("module", "users"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
	s.setBcryptCost(bcrypt.DefaultCost)
	return s
}

func (s *UserService) setBcryptCost(cost int) {
	s.bcryptCost = cost
	s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), cost)
}

func (r Registration) validate() *common.ValidationError {
	v := &common.ValidationError{}
	name := strings.TrimSpace(r.UserName)
	if n := utf8.RuneCountInString(name); n < minUserNameLength || n > maxUserNameLength {
		v.Add("username", fmt.Sprintf("username must be %d to %d characters", minUserNameLength, maxUserNameLength))
	}
	if utf8.RuneCountInString(r.Password) < minPasswordLength {
		v.Add("password", fmt.Sprintf("ensure this field has at least %d characters", minPasswordLength))
	}
	if r.Password != r.PasswordConfirm {
		v.Add("password_confirm", "passwords don't match")
	}
	return v
}

// Register creates a user and logs them in.
func (s *UserService) Register(ctx context.Context, r Registration) (*models.User, *TokenPair, error) {
	if err := r.validate().OrNil(); err != nil {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), s.bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		UserName:     strings.TrimSpace(r.UserName),
		Email:        strings.TrimSpace(r.Email),
		FirstName:    strings.TrimSpace(r.FirstName),
		LastName:     strings.TrimSpace(r.LastName),
		PasswordHash: hash,
	}

	var pair *TokenPair
	err = s.repomanager.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		u, err := repos.Users().Create(ctx, user)
		if err != nil {
			return err
		}
		user = u
		pair, err = s.generateTokenPair(ctx, repos, u)
		return err
	})
	if err != nil {
		logUnexpected(ctx, s.logger, "register", err)
		return nil, nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return user, pair, nil
}

// Login verifies the password and, on success, returns a new TokenPair.
// Unknown users and wrong passwords are indistinguishable.
func (s *UserService) Login(ctx context.Context, userName, password string) (*TokenPair, error) {
	user, err := s.repomanager.Users().GetUserByLogin(ctx, strings.TrimSpace(userName))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, common.ErrorUnauthorized
		}
		logUnexpected(ctx, s.logger, "login", err)
		return nil, common.ErrorInternal
	}
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, common.ErrorUnauthorized
	}
	return s.generateTokenPair(ctx, s.repomanager, user)
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	token, err := s.repomanager.RefreshTokens().Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expired(s.clock.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	if err := s.repomanager.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		if err := repos.RefreshTokens().Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		user, err := repos.Users().GetByID(ctx, token.UserID)
		if err != nil {
			return fmt.Errorf("error loading token owner: %w", err)
		}
		pair, err = s.generateTokenPair(ctx, repos, user)
		return err
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// Logout revokes one of the caller's refresh tokens.
func (s *UserService) Logout(ctx context.Context, ownerID, refreshToken string) error {
	token, err := s.repomanager.RefreshTokens().Find(ctx, refreshToken)
	if err != nil {
		return fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.UserID != ownerID {
		return common.ErrorForbidden
	}
	if err := s.repomanager.RefreshTokens().Delete(ctx, refreshToken); err != nil {
		return fmt.Errorf("error deleting refresh token: %w", err)
	}
	return nil
}

func (s *UserService) Profile(ctx context.Context, ownerID string) (*models.User, error) {
	u, err := s.repomanager.Users().GetByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error loading profile: %w", err)
	}
	return u, nil
}

// DeleteAccount removes the user's refresh tokens, tasks and categories and
// then the user, in one transaction.
func (s *UserService) DeleteAccount(ctx context.Context, ownerID string) error {
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		if err := repos.RefreshTokens().DeleteByUser(ctx, ownerID); err != nil {
			return err
		}
		if err := repos.Tasks().DeleteByUser(ctx, ownerID); err != nil {
			return err
		}
		if err := repos.Categories().DeleteByUser(ctx, ownerID); err != nil {
			return err
		}
		return repos.Users().Delete(ctx, ownerID)
	})
	if err != nil {
		logUnexpected(ctx, s.logger, "delete account", err)
		return fmt.Errorf("error deleting account: %w", err)
	}
	s.logger.Info(ctx, "account deleted", "user_id", ownerID)
	return nil
}

// --- helpers below ---

func (s *UserService) generateAccessToken(user *models.User) (string, error) {
	return auth.GenerateToken(user.ID, user.UserName, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return shared.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, repos repomanager.Repositories, user *models.User) (*TokenPair, error) {
	access, err := s.generateAccessToken(user)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	expires := s.clock.Now().Add(s.refreshTokenValidityDuration)
	if err := repos.RefreshTokens().Create(ctx, user.ID, refresh, expires); err != nil {
		logUnexpected(ctx, s.logger, "store refresh token", err)
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
