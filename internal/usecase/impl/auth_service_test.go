package impl

import (
	"context"
	"testing"

	"mealplanner/internal/domain/entity"
	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/domain/repository"
	"mealplanner/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockUserRepository
	hasher       *mockPasswordHasher
	tokenService *mockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokenService := new(mockTokenService)
	txManager := &stubTxManager{factory: &stubRepoFactory{userRepo: userRepo}}

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func newRegisterInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:             "new@example.com",
		Username:          "newuser",
		Password:          "password123",
		FullName:          "New User",
		Sex:               entity.SexFemale,
		AddressLine1:      "1 Main St",
		City:              "Springfield",
		StateProvinceCode: "IL",
		CountryCode:       "us",
		PostalCode:        "62704",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := newRegisterInput()

	fx.userRepo.On("FindByEmailOrUsername", ctx, input.Email, input.Username).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", input.Password).Return("hashed-password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = 42
		}).
		Return(nil)
	fx.tokenService.On("IssueToken", uint(42)).Return("signed-token", 86400, nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, uint(42), output.User.ID)
	assert.Equal(t, "hashed-password", output.User.PasswordHash)
	assert.Equal(t, "US", output.User.CountryCode, "country code should be uppercased")
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, 86400, output.ExpiresIn)
	fx.userRepo.AssertExpectations(t)
	fx.tokenService.AssertExpectations(t)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := newRegisterInput()

	fx.userRepo.On("FindByEmailOrUsername", ctx, input.Email, input.Username).
		Return(&entity.User{ID: 1, Email: input.Email, Username: "someoneelse"}, nil)

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.tokenService.AssertNotCalled(t, "IssueToken", mock.Anything)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := newRegisterInput()

	fx.userRepo.On("FindByEmailOrUsername", ctx, input.Email, input.Username).
		Return(&entity.User{ID: 1, Email: "other@example.com", Username: input.Username}, nil)

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAuthService_Register_EmailWinsWhenBothCollide(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := newRegisterInput()

	// The repository prefers the email match, so a row matching both fields
	// surfaces as an email conflict.
	fx.userRepo.On("FindByEmailOrUsername", ctx, input.Email, input.Username).
		Return(&entity.User{ID: 1, Email: input.Email, Username: input.Username}, nil)

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Register_DuplicateOnInsertRace(t *testing.T) {
	tests := []struct {
		name      string
		createErr error
		wantErr   error
	}{
		{name: "email constraint", createErr: repository.ErrDuplicateEmail, wantErr: domainerrors.ErrEmailTaken},
		{name: "username constraint", createErr: repository.ErrDuplicateUsername, wantErr: domainerrors.ErrUsernameTaken},
		{name: "unattributable constraint", createErr: repository.ErrDuplicate, wantErr: domainerrors.ErrUserCreationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			ctx := context.Background()
			input := newRegisterInput()

			fx.userRepo.On("FindByEmailOrUsername", ctx, input.Email, input.Username).
				Return(nil, repository.ErrUserNotFound)
			fx.hasher.On("Hash", input.Password).Return("hashed-password", nil)
			fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
				Return(tt.createErr)

			_, err := fx.service.Register(ctx, input)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := newRegisterInput()

	fx.userRepo.On("FindByEmailOrUsername", ctx, input.Email, input.Username).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", input.Password).Return("", errors.New("bcrypt exploded"))

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: 7, Email: "john@example.com", Username: "johndoe", PasswordHash: "stored-hash"}
	fx.userRepo.On("FindByLogin", ctx, "johndoe").Return(user, nil)
	fx.hasher.On("Check", "password123", "stored-hash").Return(true)
	fx.tokenService.On("IssueToken", uint(7)).Return("signed-token", 86400, nil)

	output, err := fx.service.Authenticate(ctx, usecase.LoginInput{Login: "johndoe", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, 86400, output.ExpiresIn)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Authenticate_IndistinguishableFailures(t *testing.T) {
	ctx := context.Background()

	// Unknown login.
	fx1 := createTestAuthService(t)
	fx1.userRepo.On("FindByLogin", ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	_, errUnknown := fx1.service.Authenticate(ctx, usecase.LoginInput{Login: "ghost", Password: "whatever1"})

	// Known login, wrong password.
	fx2 := createTestAuthService(t)
	fx2.userRepo.On("FindByLogin", ctx, "johndoe").
		Return(&entity.User{ID: 7, PasswordHash: "stored-hash"}, nil)
	fx2.hasher.On("Check", "wrongpass1", "stored-hash").Return(false)
	_, errWrongPass := fx2.service.Authenticate(ctx, usecase.LoginInput{Login: "johndoe", Password: "wrongpass1"})

	// Both paths must yield the exact same error value so the response body
	// cannot reveal whether the account exists.
	require.Error(t, errUnknown)
	require.Error(t, errWrongPass)
	assert.ErrorIs(t, errUnknown, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass)
}

func TestAuthService_Authenticate_TokenIssueFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByLogin", ctx, "johndoe").
		Return(&entity.User{ID: 7, PasswordHash: "stored-hash"}, nil)
	fx.hasher.On("Check", "password123", "stored-hash").Return(true)
	fx.tokenService.On("IssueToken", uint(7)).Return("", 0, errors.New("signing failed"))

	_, err := fx.service.Authenticate(ctx, usecase.LoginInput{Login: "johndoe", Password: "password123"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_GetProfile(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: 7, Email: "john@example.com"}
	fx.userRepo.On("FindByID", ctx, uint(7)).Return(user, nil)

	got, err := fx.service.GetProfile(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByID", ctx, uint(99)).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)

	err := fx.service.Logout(context.Background(), 7)

	assert.NoError(t, err)
}
