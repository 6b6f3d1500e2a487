package commentapp

import (
	"context"
	"strings"

	"yatube/internal/core/apperror"
	commentEntity "yatube/internal/core/comment"
	commentPort "yatube/internal/ports/comment"
	postPort "yatube/internal/ports/post"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

type CommentService struct {
	CommentRepository commentPort.CommentRepository
	PostRepository    postPort.PostRepository
	logger            *zap.Logger
}

func NewCommentService(commentRepo commentPort.CommentRepository, postRepo postPort.PostRepository, logger *zap.Logger) *CommentService {
	return &CommentService{
		CommentRepository: commentRepo,
		PostRepository:    postRepo,
		logger:            logger,
	}
}

// AddComment stores a comment by authorID. Anonymous callers are refused.
func (s *CommentService) AddComment(ctx context.Context, postID, authorID, text string) (*commentPort.CommentDTO, error) {
	uid, err := uuid.FromString(authorID)
	if err != nil {
		return nil, apperror.ErrForbidden
	}

	post, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperror.NewValidationError("text", "this field is required")
	}

	c, err := s.CommentRepository.Create(ctx, &commentEntity.Comment{
		PostID:   post.ID,
		AuthorID: uid,
		Text:     text,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("💬 Comment added", zap.String("postID", postID), zap.String("author", c.Author.Username))
	return commentPort.ToDTO(c), nil
}
