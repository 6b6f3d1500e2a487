package database

import (
	"context"

	"yatube/internal/core/follower"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowerRepositoryDatabase implements FollowerRepository on gorm.
type FollowerRepositoryDatabase struct {
	db *gorm.DB
}

func NewFollowerRepositoryDatabase(db *gorm.DB) *FollowerRepositoryDatabase {
	return &FollowerRepositoryDatabase{db: db}
}

// FollowUser leans on the uniq_user_author index: a duplicate insert is
// dropped by the database and reported as not created.
func (repo *FollowerRepositoryDatabase) FollowUser(ctx context.Context, f *follower.Follow) (bool, error) {
	res := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(f)
	if res.Error != nil {
		return false, wrap("follow user", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (repo *FollowerRepositoryDatabase) UnfollowUser(ctx context.Context, userID, authorID string) (bool, error) {
	res := repo.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&follower.Follow{})
	if res.Error != nil {
		return false, wrap("unfollow user", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (repo *FollowerRepositoryDatabase) GetFollowersByUserID(ctx context.Context, authorID string) ([]*follower.Follow, error) {
	var followers []*follower.Follow
	if err := repo.db.WithContext(ctx).Preload("User").Where("author_id = ?", authorID).Order("created_at").Find(&followers).Error; err != nil {
		return nil, wrap("get followers", err)
	}
	return followers, nil
}

func (repo *FollowerRepositoryDatabase) GetFollowingByUserID(ctx context.Context, userID string) ([]*follower.Follow, error) {
	var following []*follower.Follow
	if err := repo.db.WithContext(ctx).Preload("Author").Where("user_id = ?", userID).Order("created_at").Find(&following).Error; err != nil {
		return nil, wrap("get following", err)
	}
	return following, nil
}

func (repo *FollowerRepositoryDatabase) IsFollowing(ctx context.Context, userID, authorID string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&follower.Follow{}).Where("user_id = ? AND author_id = ?", userID, authorID).Count(&count).Error; err != nil {
		return false, wrap("is following", err)
	}
	return count > 0, nil
}
