// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "mealplanner/internal/delivery/context"
	"mealplanner/internal/domain/entity"
	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/domain/repository"
	"mealplanner/internal/domain/service"
	"mealplanner/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process. The duplicate
// pre-check and the insert run in one transaction; a concurrent insert that
// slips past the pre-check is caught by the unique constraints and mapped to
// the same duplicate errors.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.String("username", input.Username))

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		existing, err := userRepo.FindByEmailOrUsername(ctx, input.Email, input.Username)
		if err == nil {
			// Email collision wins when both fields collide.
			if existing.Email == input.Email {
				return domainerrors.ErrEmailTaken
			}

			return domainerrors.ErrUsernameTaken
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check for existing user")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

			return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
		}

		newUser := &entity.User{
			Email:             input.Email,
			Username:          input.Username,
			PasswordHash:      hashedPassword,
			FullName:          input.FullName,
			Sex:               input.Sex,
			PhoneNumber:       input.PhoneNumber,
			AddressLine1:      input.AddressLine1,
			AddressLine2:      input.AddressLine2,
			City:              input.City,
			StateProvinceCode: input.StateProvinceCode,
			CountryCode:       input.CountryCode,
			PostalCode:        input.PostalCode,
		}
		newUser.NormalizeCountryCode()

		if err := userRepo.Create(ctx, newUser); err != nil {
			return srv.mapCreateError(err)
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Issue a token so the new user is logged in immediately.
	token, expiresIn, err := srv.tokenService.IssueToken(registeredUser.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("userID", registeredUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{
		User:        registeredUser,
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}

// mapCreateError converts repository duplicate sentinels into the public
// duplicate errors. An unattributable uniqueness violation degrades to the
// generic creation failure.
func (srv *authService) mapCreateError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return domainerrors.ErrEmailTaken
	case errors.Is(err, repository.ErrDuplicateUsername):
		return domainerrors.ErrUsernameTaken
	case errors.Is(err, repository.ErrDuplicate):
		return domainerrors.ErrUserCreationFailed
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}
}

// Authenticate verifies credentials and issues an access token. Unknown
// login and wrong password return the identical error so responses cannot be
// used to probe which accounts exist.
func (srv *authService) Authenticate(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresIn, err := srv.tokenService.IssueToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresIn:   expiresIn,
		User:        user,
	}, nil
}

// GetProfile resolves a user by the id carried in a verified token. A token
// whose subject no longer exists yields ErrUserNotFound.
func (srv *authService) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// Logout acknowledges the logout. Tokens are stateless and remain valid
// until expiry; discarding the token is the client's responsibility.
func (srv *authService) Logout(ctx context.Context, userID uint) error {
	srv.log(ctx).Info("User logged out", slog.Any("userID", userID))

	return nil
}
