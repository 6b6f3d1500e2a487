package database

import (
	"context"

	"yatube/internal/core/follower"
	"yatube/internal/core/post"
	postPort "yatube/internal/ports/post"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepositoryDatabase implements PostRepository on gorm.
type PostRepositoryDatabase struct {
	db *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error; err != nil {
		return nil, wrap("create post", err)
	}
	return repo.FindByID(ctx, p.ID.String())
}

func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	var groupID interface{}
	if p.GroupID != nil {
		groupID = *p.GroupID
	}

	err := repo.db.WithContext(ctx).
		Model(&post.Post{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"text":     p.Text,
			"group_id": groupID,
			"image":    p.Image,
		}).Error
	if err != nil {
		return nil, wrap("update post", err)
	}
	return repo.FindByID(ctx, p.ID.String())
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		Where("id = ?", id).
		First(&p).Error; err != nil {
		return nil, wrap("find post", err)
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) Count(ctx context.Context, filter postPort.Filter) (int64, error) {
	var count int64
	if err := repo.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, wrap("count posts", err)
	}
	return count, nil
}

func (repo *PostRepositoryDatabase) List(ctx context.Context, filter postPort.Filter, offset, limit int) ([]*post.Post, error) {
	var posts []*post.Post
	if err := repo.filtered(ctx, filter).
		Preload("Author").
		Preload("Group").
		Order("pub_date DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, wrap("list posts", err)
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) filtered(ctx context.Context, filter postPort.Filter) *gorm.DB {
	q := repo.db.WithContext(ctx).Model(&post.Post{})
	if filter.AuthorID != nil {
		q = q.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.GroupID != nil {
		q = q.Where("group_id = ?", *filter.GroupID)
	}
	if filter.FollowerID != nil {
		followed := repo.db.Model(&follower.Follow{}).Select("author_id").Where("user_id = ?", *filter.FollowerID)
		q = q.Where("author_id IN (?)", followed)
	}
	return q
}
