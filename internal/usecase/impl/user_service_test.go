package impl

import (
	"context"
	"testing"
	"time"

	"regain/internal/domain/entity"
	domainerrors "regain/internal/domain/errors"
	"regain/internal/domain/repository"
	mockRepo "regain/internal/mocks/repository"
	mockSvc "regain/internal/mocks/service"
	"regain/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T, maxActiveSessions int) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	})

	return userServiceFixtures{
		service:          svc,
		txManager:        txManager,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func refreshClaimsToken(userID uuid.UUID) *jwt.Token {
	return &jwt.Token{
		Claims: jwt.MapClaims{
			"type": "refresh",
			"sub":  userID.String(),
		},
		Valid: true,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Str0ngPass!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(txAuthRepo)

			txAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)

			txUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			txAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
					return auth.PasswordHash == "hashed-password" && auth.ProviderUserID == input.Email
				})).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, input.Name, output.User.Name)
}

func TestUserService_RegisterUser_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Str0ngPass!",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(txAuthRepo)

			txAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Nil(t, output)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{Email: "alice@example.com", Password: "Str0ngPass!"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().AuthRepo().Return(txAuthRepo)

			txAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed-password"}, nil)

			return fn(mockFactory)
		}).
		Once()

	fx.hasher.EXPECT().Check(input.Password, "hashed-password").Return(true)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)

			txUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Email: input.Email, Name: "Alice"}, nil)

			return fn(mockFactory)
		}).
		Once()

	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)

	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == userID &&
				token.TokenHash == hashToken("refresh-token") &&
				token.ExpiresAt.After(time.Now())
		})).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, userID.String(), output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "alice@example.com", Password: "wrong"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().AuthRepo().Return(txAuthRepo)

			txAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed-password"}, nil)

			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check(input.Password, "hashed-password").Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestUserService_Login_UnknownEmailMapsToInvalidCredentials(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().AuthRepo().Return(txAuthRepo)

			txAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestUserService_Login_SessionLimitExceeded(t *testing.T) {
	fx := createTestUserService(t, 2)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{Email: "alice@example.com", Password: "Str0ngPass!"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().AuthRepo().Return(txAuthRepo)

			txAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed-password"}, nil)

			return fn(mockFactory)
		}).
		Once()

	fx.hasher.EXPECT().Check(input.Password, "hashed-password").Return(true)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)

			txUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Email: input.Email}, nil)

			return fn(mockFactory)
		}).
		Once()

	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access-token", "refresh-token", nil)

	// Two live sessions plus one expired one. The expired token must not count.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)

			txRefreshRepo.EXPECT().
				FindRefreshTokensByUserID(ctx, userID).
				Return([]*entity.RefreshToken{
					{ID: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(time.Hour)},
					{ID: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(time.Hour)},
					{ID: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(-time.Hour)},
				}, nil)

			return fn(mockFactory)
		}).
		Once()

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSessionLimitExceeded)
	assert.Nil(t, output)
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RefreshTokenInput{RefreshToken: "refresh-token"}

	fx.tokenService.EXPECT().
		ValidateToken(input.RefreshToken, "test-refresh-secret").
		Return(refreshClaimsToken(userID), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)

			txRefreshRepo.EXPECT().
				FindRefreshTokenByHash(ctx, hashToken(input.RefreshToken)).
				Return(&entity.RefreshToken{
					ID:        uuid.New(),
					UserID:    userID,
					ExpiresAt: time.Now().Add(time.Hour),
				}, nil)

			txUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID}, nil)

			return fn(mockFactory)
		})

	fx.tokenService.EXPECT().GenerateTokens(userID).Return("new-access-token", "unused", nil)

	output, err := fx.service.RefreshToken(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
}

func TestUserService_RefreshToken_WrongTokenType(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.RefreshTokenInput{RefreshToken: "access-token"}

	fx.tokenService.EXPECT().
		ValidateToken(input.RefreshToken, "test-refresh-secret").
		Return(&jwt.Token{
			Claims: jwt.MapClaims{"type": "access", "sub": uuid.New().String()},
			Valid:  true,
		}, nil)

	output, err := fx.service.RefreshToken(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, output)
}

func TestUserService_RefreshToken_ExpiredRecord(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RefreshTokenInput{RefreshToken: "refresh-token"}

	fx.tokenService.EXPECT().
		ValidateToken(input.RefreshToken, "test-refresh-secret").
		Return(refreshClaimsToken(userID), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)

			txRefreshRepo.EXPECT().
				FindRefreshTokenByHash(ctx, hashToken(input.RefreshToken)).
				Return(&entity.RefreshToken{
					ID:        uuid.New(),
					UserID:    userID,
					ExpiresAt: time.Now().Add(-time.Minute),
				}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RefreshToken(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, output)
}

func TestUserService_Logout_DeletesStoredToken(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	tokenID := uuid.New()
	input := &usecase.LogoutInput{RefreshToken: "refresh-token"}

	fx.tokenService.EXPECT().
		ValidateToken(input.RefreshToken, "test-refresh-secret").
		Return(refreshClaimsToken(uuid.New()), nil)

	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, hashToken(input.RefreshToken)).
		Return(&entity.RefreshToken{ID: tokenID}, nil)

	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshToken(ctx, tokenID).
		Return(nil)

	err := fx.service.Logout(ctx, input)

	require.NoError(t, err)
}

func TestUserService_Logout_IdempotentWhenTokenUnknown(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.LogoutInput{RefreshToken: "already-gone"}

	fx.tokenService.EXPECT().
		ValidateToken(input.RefreshToken, "test-refresh-secret").
		Return(nil, assert.AnError)

	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, hashToken(input.RefreshToken)).
		Return(nil, repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, input)

	require.NoError(t, err)
}
