package database

import (
	"context"

	"yatube/internal/core/user"

	"gorm.io/gorm"
)

// UserRepositoryDatabase implements UserRepository on gorm.
type UserRepositoryDatabase struct {
	db *gorm.DB
}

func NewUserRepositoryDatabase(db *gorm.DB) *UserRepositoryDatabase {
	return &UserRepositoryDatabase{db: db}
}

func (repo *UserRepositoryDatabase) Create(ctx context.Context, user *user.User) (*user.User, error) {
	if err := repo.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, wrap("create user", err)
	}
	return user, nil
}

func (repo *UserRepositoryDatabase) FindByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, wrap("find user", err)
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var u user.User
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, wrap("find user by username", err)
	}
	return &u, nil
}
