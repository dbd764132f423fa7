package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/voy/internal/config"
	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/store"
	"github.com/MKhiriev/voy/internal/utils"
	"github.com/MKhiriev/voy/internal/validators"
	"github.com/MKhiriev/voy/models"
)

// authService registers and authenticates accounts. Passwords are kept as
// HMAC-SHA256 under hashKey and sessions are HS256 JWTs.
type authService struct {
	userRepository store.UserRepository
	loginAttempts  store.LoginAttempts

	// maxLoginAttempts per limiter window, zero disables throttling.
	maxLoginAttempts int64

	validator   validators.Validator
	idGenerator IDGenerator

	hashKey       string
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewAuthService(
	userRepository store.UserRepository,
	loginAttempts store.LoginAttempts,
	validator validators.Validator,
	idGenerator IDGenerator,
	cfg config.App,
	limiter config.Limiter,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:   userRepository,
		loginAttempts:    loginAttempts,
		maxLoginAttempts: int64(limiter.MaxAttempts),
		validator:        validator,
		idGenerator:      idGenerator,
		hashKey:          cfg.PasswordHashKey,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// RegisterUser creates a new user account.
//
// The email must look like an address and the password must satisfy the
// password policy; a policy failure is returned as *validators.PasswordError
// carrying every violated rule. The account receives a fresh UUID, the
// password is stored as its HMAC and a default profile is created with it.
//
// Returns the persisted user without the plain password, or:
//   - a wrapped validation error;
//   - a wrapped storage error (see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = normalizeEmail(user.Email)
	user.DisplayName = strings.TrimSpace(user.DisplayName)
	if err := a.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Str("email", user.Email).Msg("invalid registration data")
		return models.User{}, fmt.Errorf("invalid registration data: %w", err)
	}

	user.UserID = a.idGenerator.Generate()
	user.PasswordHash = utils.HashString(user.Password, a.hashKey)
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Every attempt is counted by the login limiter first; once the count exceeds
// the configured maximum the attempt is refused with ErrTooManyLoginAttempts
// without looking at the credentials. An unknown email and a wrong password
// are both reported as ErrWrongCredentials. A successful login resets the
// counter.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = normalizeEmail(user.Email)
	if err := a.validator.Validate(ctx, user, validators.FieldEmail, validators.FieldPasswordPresent); err != nil {
		log.Debug().Err(err).Msg("invalid login data")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := a.checkLoginAttempts(ctx, user.Email); err != nil {
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("email", user.Email).Msg("login with unknown email")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.passwordMatches(foundUser, user.Password) {
		log.Info().Str("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	if err = a.loginAttempts.Reset(ctx, user.Email); err != nil {
		log.Warn().Err(err).Str("user_id", foundUser.UserID).Msg("failed to reset login attempts")
	}

	return foundUser, nil
}

// ChangePassword replaces the password of userID after checking the current
// one. The new password must satisfy the password policy.
func (a *authService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("invalid password change: %w", err)
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if !a.passwordMatches(foundUser, req.CurrentPassword) {
		log.Info().Str("user_id", userID).Msg("wrong current password")
		return ErrWrongPassword
	}

	if err = a.userRepository.UpdatePasswordHash(ctx, userID, utils.HashString(req.NewPassword, a.hashKey)); err != nil {
		log.Err(err).Str("user_id", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	log.Info().Str("user_id", userID).Msg("password changed")
	return nil
}

// CheckPassword evaluates password against the policy without storing it.
func (a *authService) CheckPassword(ctx context.Context, password string) models.PasswordCheckResponse {
	result := validators.ValidatePassword(password)
	return models.PasswordCheckResponse{
		IsValid:  result.IsValid,
		Errors:   result.Errors,
		Strength: string(validators.GetPasswordStrength(password)),
	}
}

// CreateToken issues a JWT for user that expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies a raw JWT. Every failure is reported as
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// checkLoginAttempts counts the attempt. A limiter outage does not lock
// users out.
func (a *authService) checkLoginAttempts(ctx context.Context, email string) error {
	if a.maxLoginAttempts <= 0 {
		return nil
	}

	count, err := a.loginAttempts.Register(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("login limiter unavailable")
		return nil
	}

	if count > a.maxLoginAttempts {
		logger.FromContext(ctx).Info().Str("email", email).Int64("attempts", count).Msg("login throttled")
		return ErrTooManyLoginAttempts
	}

	return nil
}

func (a *authService) passwordMatches(user models.User, password string) bool {
	return utils.EqualHash(user.PasswordHash, utils.HashString(password, a.hashKey))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
