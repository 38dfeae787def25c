package postgres

import (
	"context"
	"strings"

	"mealplanner/internal/domain/entity"
	"mealplanner/internal/domain/repository"
	"mealplanner/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	userM := new(model.UserModel)
	if err := repo.db.WithContext(ctx).First(userM, id).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(userM), nil
}

// FindByLogin retrieves a single user whose email or username equals the
// given identifier. Matching is case-sensitive, as stored.
func (repo *userRepository) FindByLogin(ctx context.Context, login string) (*entity.User, error) {
	userM := new(model.UserModel)
	err := repo.db.WithContext(ctx).
		Where("email = ? OR username = ?", login, login).
		First(userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by login")
	}

	return toUserDomain(userM), nil
}

// FindByEmailOrUsername retrieves any user matching either value. When the
// email and the username collide with different rows, the email match wins.
func (repo *userRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error) {
	userM := new(model.UserModel)
	err := repo.db.WithContext(ctx).Where("email = ?", email).First(userM).Error
	if err == nil {
		return toUserDomain(userM), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	err = repo.db.WithContext(ctx).Where("username = ?", username).First(userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(userM), nil
}

// Create persists a new user entity to the database. Unique constraint
// violations are mapped to the duplicate sentinels so the use case can tell
// which field collided even on a concurrent insert.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if detail, ok := duplicateKeyDetail(err); ok {
			switch {
			case strings.Contains(detail, "uq_users_email"), strings.Contains(detail, "users.email"):
				return repository.ErrDuplicateEmail
			case strings.Contains(detail, "uq_users_username"), strings.Contains(detail, "users.username"):
				return repository.ErrDuplicateUsername
			default:
				return repository.ErrDuplicate
			}
		}
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "missing required user information")
		}

		return errors.Wrap(err, "failed to create user")
	}

	// Backfill the generated ID and timestamps.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Save(userM).Error; err != nil {
		if detail, ok := duplicateKeyDetail(err); ok {
			switch {
			case strings.Contains(detail, "uq_users_email"), strings.Contains(detail, "users.email"):
				return repository.ErrDuplicateEmail
			case strings.Contains(detail, "uq_users_username"), strings.Contains(detail, "users.username"):
				return repository.ErrDuplicateUsername
			default:
				return repository.ErrDuplicate
			}
		}

		return errors.Wrap(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Delete removes a user row. Likes and schedule rows cascade at the database.
func (repo *userRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                data.ID,
		Email:             data.Email,
		Username:          data.Username,
		PasswordHash:      data.PasswordHash,
		FullName:          data.FullName,
		Sex:               entity.Sex(data.Sex),
		PhoneNumber:       data.PhoneNumber,
		AddressLine1:      data.AddressLine1,
		AddressLine2:      data.AddressLine2,
		City:              data.City,
		StateProvinceCode: data.StateProvinceCode,
		CountryCode:       data.CountryCode,
		PostalCode:        data.PostalCode,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                data.ID,
		Email:             data.Email,
		Username:          data.Username,
		PasswordHash:      data.PasswordHash,
		FullName:          data.FullName,
		Sex:               data.Sex.String(),
		PhoneNumber:       data.PhoneNumber,
		AddressLine1:      data.AddressLine1,
		AddressLine2:      data.AddressLine2,
		City:              data.City,
		StateProvinceCode: data.StateProvinceCode,
		CountryCode:       data.CountryCode,
		PostalCode:        data.PostalCode,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
