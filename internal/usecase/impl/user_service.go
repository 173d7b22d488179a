package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"regain/config"
	deliverycontext "regain/internal/delivery/context"
	"regain/internal/domain/entity"
	domainerrors "regain/internal/domain/errors"
	"regain/internal/domain/repository"
	"regain/internal/domain/service"
	"regain/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	refreshSecret     string
	maxActiveSessions int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		refreshSecret:     params.Config.SecretKey.Refresh,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// hashToken derives the storage key of a refresh token. Only this hash ever
// touches the database.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// RegisterUser orchestrates the complete user registration process.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	var registeredUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
			srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

			return err
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

			return errors.Wrap(err, "failed to hash password during registration")
		}

		newUser := &entity.User{
			Name:  input.Name,
			Email: input.Email,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: usecase.NewUserView(registeredUser)}, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	authRecord, err := srv.loadLoginAuth(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	loggedInUser, err := srv.loadLoginUser(ctx, authRecord.UserID)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load login user from primary")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(loggedInUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistLoginRefreshToken(ctx, loggedInUser.ID, refreshTokenString); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         usecase.NewUserView(loggedInUser),
	}, nil
}

func (srv *userService) loadLoginAuth(ctx context.Context, email string) (*entity.Authentication, error) {
	var authRecord *entity.Authentication

	// Load authentication from primary in a short transaction to avoid stale reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		var findAuthErr error
		authRecord, findAuthErr = authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if findAuthErr != nil {
			if errors.Is(findAuthErr, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findAuthErr, "failed to find authentication")
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return authRecord, nil
}

func (srv *userService) loadLoginUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var loggedInUser *entity.User

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var findUserErr error
		loggedInUser, findUserErr = userRepo.FindByID(ctx, userID)
		if findUserErr != nil {
			return errors.Wrap(findUserErr, "failed to find user by id")
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return loggedInUser, nil
}

func (srv *userService) persistLoginRefreshToken(ctx context.Context, userID uuid.UUID, refreshTokenString string) error {
	if srv.maxActiveSessions > 0 {
		// When the session limit is enabled, keep count and insert in one transaction.
		if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			refreshRepo := repoFactory.RefreshTokenRepo()

			tokens, err := refreshRepo.FindRefreshTokensByUserID(ctx, userID)
			if err != nil {
				return errors.Wrap(err, "failed to count active sessions")
			}

			active := 0
			now := time.Now()
			for _, token := range tokens {
				if token.ExpiresAt.After(now) {
					active++
				}
			}
			if active >= srv.maxActiveSessions {
				return errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
			}

			return srv.storeRefreshToken(ctx, refreshRepo, userID, refreshTokenString)
		}); err != nil {
			return errors.Wrap(err, "failed to execute user login transaction")
		}

		return nil
	}

	// No session limit: direct insert avoids unnecessary transaction overhead.
	if err := srv.storeRefreshToken(ctx, srv.refreshTokenRepo, userID, refreshTokenString); err != nil {
		return errors.Wrap(err, "failed to create refresh token during login")
	}

	return nil
}

func (srv *userService) storeRefreshToken(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshTokenString string) error {
	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: hashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// RefreshToken issues a new access token from a valid refresh token. The
// refresh token itself is not rotated.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	userID, err := srv.validateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, err
	}

	var newAccessToken string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		stored, err := refreshRepo.FindRefreshTokenByHash(ctx, hashToken(input.RefreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found")
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if stored.ExpiresAt.Before(time.Now()) {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token expired")
		}

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		newAccessToken, _, err = srv.tokenService.GenerateTokens(user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to generate new access token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute refresh token transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{AccessToken: newAccessToken}, nil
}

// validateRefreshToken checks the token signature and claims and returns the
// subject user ID.
func (srv *userService) validateRefreshToken(tokenString string) (uuid.UUID, error) {
	token, err := srv.tokenService.ValidateToken(tokenString, srv.refreshSecret)
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "unexpected refresh token claims")
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return uuid.Nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "token is not a refresh token")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token missing subject")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token subject is not a user id")
	}

	return userID, nil
}

// Logout invalidates a session by deleting its refresh token record.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken, srv.refreshSecret); err != nil {
		// Even if the token is invalid, proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, hashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			// Already gone. Logout is idempotent.
			return nil
		}

		return errors.Wrap(err, "failed to find refresh token for logout")
	}

	if err := srv.refreshTokenRepo.DeleteRefreshToken(ctx, stored.ID); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}
