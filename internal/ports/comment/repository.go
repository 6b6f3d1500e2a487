package comment

import (
	"context"
	"time"

	"yatube/internal/core/comment"
	userPort "yatube/internal/ports/user"
)

// CommentRepository stores comments and lists them per post.
type CommentRepository interface {
	Create(ctx context.Context, comment *comment.Comment) (*comment.Comment, error)
	// ListByPost returns the comments of a post, oldest first, authors loaded.
	ListByPost(ctx context.Context, postID string) ([]*comment.Comment, error)
}

type CommentDTO struct {
	ID      string            `json:"id"`
	PostID  string            `json:"post_id"`
	Author  *userPort.UserDTO `json:"author"`
	Text    string            `json:"text"`
	Created time.Time         `json:"created"`
}

func ToDTO(c *comment.Comment) *CommentDTO {
	return &CommentDTO{
		ID:      c.ID.String(),
		PostID:  c.PostID.String(),
		Author:  userPort.ToDTO(&c.Author),
		Text:    c.Text,
		Created: c.Created,
	}
}
