package repository

import (
	"context"

	"community_api/internal/domain/identity/model"

	"gorm.io/gorm"
)

// IdentityRepository 身份服务用户表的只读访问
type IdentityRepository interface {
	ListByIDs(ctx context.Context, ids []string) ([]model.AuthUser, error)
	GetByID(ctx context.Context, id string) (*model.AuthUser, error)
}

type identityRepository struct {
	db    *gorm.DB
	table string
}

// NewIdentityRepository table 通常为 auth.users
func NewIdentityRepository(db *gorm.DB, table string) IdentityRepository {
	return &identityRepository{db: db, table: table}
}

func (r *identityRepository) ListByIDs(ctx context.Context, ids []string) ([]model.AuthUser, error) {
	var users []model.AuthUser
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.WithContext(ctx).
		Table(r.table).
		Select("id", "email", "raw_user_meta_data").
		Where("id IN ?", ids).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *identityRepository) GetByID(ctx context.Context, id string) (*model.AuthUser, error) {
	var user model.AuthUser
	err := r.db.WithContext(ctx).
		Table(r.table).
		Select("id", "email", "raw_user_meta_data").
		Where("id = ?", id).
		Take(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
