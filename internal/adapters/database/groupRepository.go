package database

import (
	"context"

	"yatube/internal/core/apperror"
	"yatube/internal/core/group"
	"yatube/internal/core/post"

	"gorm.io/gorm"
)

type GroupRepositoryDatabase struct {
	db *gorm.DB
}

func NewGroupRepositoryDatabase(db *gorm.DB) *GroupRepositoryDatabase {
	return &GroupRepositoryDatabase{db: db}
}

func (repo *GroupRepositoryDatabase) Create(ctx context.Context, g *group.Group) (*group.Group, error) {
	if err := repo.db.WithContext(ctx).Create(g).Error; err != nil {
		return nil, wrap("create group", err)
	}
	return g, nil
}

func (repo *GroupRepositoryDatabase) FindByID(ctx context.Context, id string) (*group.Group, error) {
	var g group.Group
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&g).Error; err != nil {
		return nil, wrap("find group", err)
	}
	return &g, nil
}

func (repo *GroupRepositoryDatabase) FindBySlug(ctx context.Context, slug string) (*group.Group, error) {
	var g group.Group
	if err := repo.db.WithContext(ctx).Where("slug = ?", slug).First(&g).Error; err != nil {
		return nil, wrap("find group by slug", err)
	}
	return &g, nil
}

func (repo *GroupRepositoryDatabase) List(ctx context.Context) ([]*group.Group, error) {
	var groups []*group.Group
	if err := repo.db.WithContext(ctx).Order("title").Find(&groups).Error; err != nil {
		return nil, wrap("list groups", err)
	}
	return groups, nil
}

// Delete nulls posts.group_id before removing the row, so posts survive even
// where the ON DELETE SET NULL constraint is not enforced.
func (repo *GroupRepositoryDatabase) Delete(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&post.Post{}).Where("group_id = ?", id).Update("group_id", nil).Error; err != nil {
			return wrap("detach group posts", err)
		}
		res := tx.Where("id = ?", id).Delete(&group.Group{})
		if res.Error != nil {
			return wrap("delete group", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperror.ErrNotFound
		}
		return nil
	})
}
