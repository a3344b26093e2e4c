package postgres

import (
	"context"

	"petstar/internal/domain/entity"
	domainerrors "petstar/internal/domain/errors"
	"petstar/internal/domain/repository"
	"petstar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// resetTokenRepository implements the domain.ResetTokenRepository interface using GORM.
type resetTokenRepository struct {
	db *gorm.DB
}

// NewResetTokenRepository is the constructor for resetTokenRepository.
func NewResetTokenRepository(db *gorm.DB) repository.ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

// Create persists a newly issued reset token.
func (repo *resetTokenRepository) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	tokenM := fromResetTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create reset token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByToken retrieves a reset token record by its opaque token value.
func (repo *resetTokenRepository) FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	var tokenM model.PasswordResetTokenModel
	if err := repo.db.WithContext(ctx).First(&tokenM, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find reset token")
	}

	return toResetTokenDomain(&tokenM), nil
}

// Delete removes a reset token record, consuming it.
func (repo *resetTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.PasswordResetTokenModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete reset token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResetTokenNotFound
	}

	return nil
}

func toResetTokenDomain(tokenM *model.PasswordResetTokenModel) *entity.PasswordResetToken {
	return &entity.PasswordResetToken{
		ID:        tokenM.ID,
		Email:     tokenM.Email,
		Token:     tokenM.Token,
		ExpiresAt: tokenM.ExpiresAt,
		CreatedAt: tokenM.CreatedAt,
	}
}

func fromResetTokenDomain(token *entity.PasswordResetToken) *model.PasswordResetTokenModel {
	return &model.PasswordResetTokenModel{
		ID:        token.ID,
		Email:     token.Email,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
	}
}
