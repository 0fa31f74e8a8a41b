package repository

import (
	"ProtectAdmin/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type AdminUserRepo interface {
	GetByID(ctx context.Context, id uint64) (*model.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	UpdatePassword(ctx context.Context, id uint64, passwordHash string) error
}

type AdminUserRepoImpl struct {
	db *gorm.DB
}

func NewAdminUserRepo(db *gorm.DB) AdminUserRepo {
	return &AdminUserRepoImpl{db: db}
}

func (s *AdminUserRepoImpl) GetByID(ctx context.Context, id uint64) (*model.AdminUser, error) {
	admin := &model.AdminUser{}
	result := s.db.WithContext(ctx).First(admin, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return admin, nil
}

func (s *AdminUserRepoImpl) GetByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	admin := &model.AdminUser{}
	result := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(admin)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return admin, nil
}

func (s *AdminUserRepoImpl) UpdatePassword(ctx context.Context, id uint64, passwordHash string) error {
	result := s.db.WithContext(ctx).
		Model(&model.AdminUser{}).
		Where("id = ?", id).
		Update("password", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
