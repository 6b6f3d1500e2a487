package database

import (
	"context"

	"yatube/internal/core/comment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepositoryDatabase struct {
	db *gorm.DB
}

func NewCommentRepositoryDatabase(db *gorm.DB) *CommentRepositoryDatabase {
	return &CommentRepositoryDatabase{db: db}
}

func (repo *CommentRepositoryDatabase) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error; err != nil {
		return nil, wrap("create comment", err)
	}
	if err := repo.db.WithContext(ctx).Preload("Author").First(c, "id = ?", c.ID).Error; err != nil {
		return nil, wrap("reload comment", err)
	}
	return c, nil
}

func (repo *CommentRepositoryDatabase) ListByPost(ctx context.Context, postID string) ([]*comment.Comment, error) {
	var comments []*comment.Comment
	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created").
		Order("id").
		Find(&comments).Error; err != nil {
		return nil, wrap("list comments", err)
	}
	return comments, nil
}
