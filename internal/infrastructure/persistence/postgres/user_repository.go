package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/agendasaude-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendasaude-backend/internal/domain/errors"
	"github.com/rafabene/agendasaude-backend/internal/domain/repositories"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	model := r.toModel(user)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	user.CreatedAt = time.Unix(model.CreatedAt, 0)
	user.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	var model UserModel

	db := dbFromContext(ctx, r.db)
	// Soft delete: ignorar registros deletados
	if err := db.Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	// Soft delete: ignorar registros deletados
	if err := db.Where("username = ? AND deleted_at IS NULL", username).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	db := dbFromContext(ctx, r.db)
	result := db.Model(&UserModel{}).
		Where("id = ? AND deleted_at IS NULL", user.ID).
		Updates(map[string]interface{}{
			"username":      user.Username,
			"password_hash": user.PasswordHash,
			"updated_at":    time.Now().Unix(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	// Soft delete: atualizar deleted_at ao invés de deletar
	now := time.Now().Unix()
	return db.Model(&UserModel{}).Where("id = ? AND deleted_at IS NULL", id).Update("deleted_at", now).Error
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	var deletedAt *int64
	if user.DeletedAt != nil {
		ts := user.DeletedAt.Unix()
		deletedAt = &ts
	}

	return &UserModel{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		DeletedAt:    deletedAt,
	}
}

func (r *UserRepository) toEntity(model *UserModel) *entities.User {
	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	return &entities.User{
		ID:           model.ID,
		Username:     model.Username,
		PasswordHash: model.PasswordHash,
		CreatedAt:    time.Unix(model.CreatedAt, 0),
		UpdatedAt:    time.Unix(model.UpdatedAt, 0),
		DeletedAt:    deletedAt,
	}
}
