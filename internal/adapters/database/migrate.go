package database

import (
	"yatube/internal/core/comment"
	"yatube/internal/core/follower"
	"yatube/internal/core/group"
	"yatube/internal/core/post"
	"yatube/internal/core/user"

	"gorm.io/gorm"
)

// Migrate creates or updates every table with its foreign-key policies.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&group.Group{},
		&post.Post{},
		&comment.Comment{},
		&follower.Follow{},
	)
}
