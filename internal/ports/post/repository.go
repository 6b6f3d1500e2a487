package post

import (
	"context"
	"time"

	"yatube/internal/core/paginator"
	"yatube/internal/core/post"
	commentPort "yatube/internal/ports/comment"
	groupPort "yatube/internal/ports/group"
	userPort "yatube/internal/ports/user"

	"github.com/gofrs/uuid"
)

// Filter narrows a post listing. Nil fields do not filter.
type Filter struct {
	AuthorID   *uuid.UUID
	GroupID    *uuid.UUID
	FollowerID *uuid.UUID // posts by authors this user follows
}

// PostRepository stores and queries posts.
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	Update(ctx context.Context, post *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id string) (*post.Post, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	// List returns posts newest first with author and group loaded.
	List(ctx context.Context, filter Filter, offset, limit int) ([]*post.Post, error)
}

type PostDTO struct {
	ID      string              `json:"id"`
	Text    string              `json:"text"`
	PubDate time.Time           `json:"pub_date"`
	Author  *userPort.UserDTO   `json:"author"`
	Group   *groupPort.GroupDTO `json:"group,omitempty"`
	Image   string              `json:"image,omitempty"`
}

type PageDTO struct {
	Posts       []*PostDTO `json:"object_list"`
	Number      int        `json:"page"`
	NumPages    int        `json:"num_pages"`
	Count       int64      `json:"count"`
	HasNext     bool       `json:"has_next"`
	HasPrevious bool       `json:"has_previous"`
}

func ToDTO(p *post.Post) *PostDTO {
	return &PostDTO{
		ID:      p.ID.String(),
		Text:    p.Text,
		PubDate: p.PubDate,
		Author:  userPort.ToDTO(&p.Author),
		Group:   groupPort.ToDTO(p.Group),
		Image:   p.Image,
	}
}

func ToPageDTO(posts []*post.Post, page paginator.Page) *PageDTO {
	dtos := make([]*PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, ToDTO(p))
	}
	return &PageDTO{
		Posts:       dtos,
		Number:      page.Number,
		NumPages:    page.NumPages,
		Count:       page.Count,
		HasNext:     page.HasNext(),
		HasPrevious: page.HasPrevious(),
	}
}

type PostDetailDTO struct {
	Post             *PostDTO                  `json:"post"`
	Comments         []*commentPort.CommentDTO `json:"comments"`
	AuthorPostsCount int64                     `json:"author_posts_count"`
}

// ListPage counts the posts matching filter, resolves the requested page and
// loads just that page.
func ListPage(ctx context.Context, repo PostRepository, filter Filter, perPage int, rawPage string) (*PageDTO, error) {
	count, err := repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := paginator.Resolve(count, perPage, rawPage)
	posts, err := repo.List(ctx, filter, page.Offset(), page.Limit())
	if err != nil {
		return nil, err
	}
	return ToPageDTO(posts, page), nil
}
