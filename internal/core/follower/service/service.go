package followerapp

import (
	"context"

	followerEntity "yatube/internal/core/follower"
	followerPort "yatube/internal/ports/follower"
	postPort "yatube/internal/ports/post"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

type FollowerService struct {
	FollowerRepository followerPort.FollowerRepository
	PostRepository     postPort.PostRepository
	PerPage            int
	logger             *zap.Logger
}

func NewFollowerService(repo followerPort.FollowerRepository, postRepo postPort.PostRepository, perPage int, logger *zap.Logger) *FollowerService {
	return &FollowerService{
		FollowerRepository: repo,
		PostRepository:     postRepo,
		PerPage:            perPage,
		logger:             logger,
	}
}

// FollowUser subscribes followerID to authorID. Following yourself and
// following twice are both no-ops, not errors.
func (s *FollowerService) FollowUser(ctx context.Context, followerID, authorID string) (followerEntity.Result, error) {
	if followerID == authorID {
		s.logger.Warn("⚠️ Cannot follow yourself", zap.String("userID", followerID))
		return followerEntity.ResultSelfIgnored, nil
	}

	f := &followerEntity.Follow{
		UserID:   uuid.FromStringOrNil(followerID),
		AuthorID: uuid.FromStringOrNil(authorID),
	}

	created, err := s.FollowerRepository.FollowUser(ctx, f)
	if err != nil {
		return "", err
	}
	if !created {
		return followerEntity.ResultAlreadyFollowing, nil
	}

	s.logger.Info("➕ Followed", zap.String("followerID", followerID), zap.String("authorID", authorID))
	return followerEntity.ResultFollowed, nil
}

// UnfollowUser removes the subscription if there is one.
func (s *FollowerService) UnfollowUser(ctx context.Context, followerID, authorID string) (followerEntity.Result, error) {
	removed, err := s.FollowerRepository.UnfollowUser(ctx, followerID, authorID)
	if err != nil {
		return "", err
	}
	if !removed {
		return followerEntity.ResultNotFollowing, nil
	}

	s.logger.Info("➖ Unfollowed", zap.String("followerID", followerID), zap.String("authorID", authorID))
	return followerEntity.ResultUnfollowed, nil
}

func (s *FollowerService) IsFollowing(ctx context.Context, followerID, authorID string) (bool, error) {
	if followerID == "" {
		return false, nil
	}
	return s.FollowerRepository.IsFollowing(ctx, followerID, authorID)
}

// ListFollowedPosts pages through the posts of every author userID follows.
func (s *FollowerService) ListFollowedPosts(ctx context.Context, userID, page string) (*postPort.PageDTO, error) {
	uid, err := uuid.FromString(userID)
	if err != nil {
		return nil, err
	}
	return postPort.ListPage(ctx, s.PostRepository, postPort.Filter{FollowerID: &uid}, s.PerPage, page)
}

func (s *FollowerService) GetFollowersByUserID(ctx context.Context, userID string) ([]*followerPort.FollowerDTO, error) {
	followers, err := s.FollowerRepository.GetFollowersByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	followerDTOs := make([]*followerPort.FollowerDTO, 0, len(followers))
	for _, f := range followers {
		followerDTOs = append(followerDTOs, &followerPort.FollowerDTO{
			ID:       f.ID.String(),
			UserID:   f.UserID.String(),
			AuthorID: f.AuthorID.String(),
			Username: f.User.Username,
		})
	}
	return followerDTOs, nil
}

func (s *FollowerService) GetFollowingByUserID(ctx context.Context, userID string) ([]*followerPort.FollowerDTO, error) {
	following, err := s.FollowerRepository.GetFollowingByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	followingDTOs := make([]*followerPort.FollowerDTO, 0, len(following))
	for _, f := range following {
		followingDTOs = append(followingDTOs, &followerPort.FollowerDTO{
			ID:       f.ID.String(),
			UserID:   f.UserID.String(),
			AuthorID: f.AuthorID.String(),
			Username: f.Author.Username,
		})
	}
	return followingDTOs, nil
}
