package postapp

import (
	"context"
	"errors"
	"strings"
	"time"

	"yatube/internal/core/apperror"
	postEntity "yatube/internal/core/post"
	"yatube/internal/core/validation"
	commentPort "yatube/internal/ports/comment"
	groupPort "yatube/internal/ports/group"
	mediaPort "yatube/internal/ports/media"
	postPort "yatube/internal/ports/post"
	userPort "yatube/internal/ports/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

const imageFolder = "posts"

// PostInput is the submitted post form.
type PostInput struct {
	Text    string            `json:"text" validate:"required,forbidden"`
	GroupID string            `json:"group" validate:"omitempty,uuid"`
	Image   *mediaPort.Upload `json:"-" validate:"-"`
}

type PostService struct {
	PostRepository    postPort.PostRepository
	CommentRepository commentPort.CommentRepository
	GroupRepository   groupPort.GroupRepository
	UserRepository    userPort.UserRepository
	Media             mediaPort.Storage
	PerPage           int
	Clock             func() time.Time

	validate *validator.Validate
	logger   *zap.Logger
}

func NewPostService(
	postRepo postPort.PostRepository,
	commentRepo commentPort.CommentRepository,
	groupRepo groupPort.GroupRepository,
	userRepo userPort.UserRepository,
	media mediaPort.Storage,
	perPage int,
	forbiddenWords []string,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		PostRepository:    postRepo,
		CommentRepository: commentRepo,
		GroupRepository:   groupRepo,
		UserRepository:    userRepo,
		Media:             media,
		PerPage:           perPage,
		Clock:             time.Now,
		validate:          validation.New(forbiddenWords),
		logger:            logger,
	}
}

// CreatePost validates the form and stores a new post for authorID.
func (s *PostService) CreatePost(ctx context.Context, authorID string, in PostInput) (*postPort.PostDTO, error) {
	uid, err := uuid.FromString(authorID)
	if err != nil {
		return nil, apperror.ErrForbidden
	}

	groupID, err := s.clean(ctx, &in)
	if err != nil {
		return nil, err
	}

	post := &postEntity.Post{
		Text:     in.Text,
		PubDate:  s.Clock(),
		AuthorID: uid,
		GroupID:  groupID,
	}

	if in.Image != nil {
		if post.Image, err = s.Media.Save(ctx, imageFolder, in.Image); err != nil {
			return nil, err
		}
	}

	created, err := s.PostRepository.Create(ctx, post)
	if err != nil {
		s.discardImage(ctx, post.Image)
		return nil, err
	}

	s.logger.Info("📝 Created post", zap.String("postID", created.ID.String()), zap.String("author", created.Author.Username))
	return postPort.ToDTO(created), nil
}

// EditPost applies the form to the post when editorID is its author.
// Anyone else gets apperror.ErrForbidden and the post is left as it was.
func (s *PostService) EditPost(ctx context.Context, postID, editorID string, in PostInput) (*postPort.PostDTO, error) {
	post, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if editorID == "" || post.AuthorID.String() != editorID {
		s.logger.Info("Edit refused for non-author", zap.String("postID", postID), zap.String("editorID", editorID))
		return nil, apperror.ErrForbidden
	}

	groupID, err := s.clean(ctx, &in)
	if err != nil {
		return nil, err
	}

	post.Text = in.Text
	post.GroupID = groupID

	var newImage string
	if in.Image != nil {
		if newImage, err = s.Media.Save(ctx, imageFolder, in.Image); err != nil {
			return nil, err
		}
		post.Image = newImage
	}

	updated, err := s.PostRepository.Update(ctx, post)
	if err != nil {
		s.discardImage(ctx, newImage)
		return nil, err
	}

	s.logger.Info("✏️ Edited post", zap.String("postID", postID))
	return postPort.ToDTO(updated), nil
}

// CanEdit reports whether userID may edit the post.
func (s *PostService) CanEdit(ctx context.Context, postID, userID string) (*postPort.PostDTO, bool, error) {
	post, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, false, err
	}
	return postPort.ToDTO(post), userID != "" && post.AuthorID.String() == userID, nil
}

// GetPost loads a post with its comments and the author's post count.
func (s *PostService) GetPost(ctx context.Context, id string) (*postPort.PostDetailDTO, error) {
	post, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.CommentRepository.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}
	commentDTOs := make([]*commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		commentDTOs = append(commentDTOs, commentPort.ToDTO(c))
	}

	count, err := s.PostRepository.Count(ctx, postPort.Filter{AuthorID: &post.AuthorID})
	if err != nil {
		return nil, err
	}

	return &postPort.PostDetailDTO{
		Post:             postPort.ToDTO(post),
		Comments:         commentDTOs,
		AuthorPostsCount: count,
	}, nil
}

// PostForm returns the group choices of the post form.
func (s *PostService) PostForm(ctx context.Context) ([]*groupPort.GroupDTO, error) {
	groups, err := s.GroupRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]*groupPort.GroupDTO, 0, len(groups))
	for _, g := range groups {
		dtos = append(dtos, groupPort.ToDTO(g))
	}
	return dtos, nil
}

func (s *PostService) ListAllPosts(ctx context.Context, page string) (*postPort.PageDTO, error) {
	return postPort.ListPage(ctx, s.PostRepository, postPort.Filter{}, s.PerPage, page)
}

func (s *PostService) ListPostsByGroup(ctx context.Context, slug, page string) (*groupPort.GroupDTO, *postPort.PageDTO, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	posts, err := postPort.ListPage(ctx, s.PostRepository, postPort.Filter{GroupID: &g.ID}, s.PerPage, page)
	if err != nil {
		return nil, nil, err
	}
	return groupPort.ToDTO(g), posts, nil
}

func (s *PostService) ListPostsByAuthor(ctx context.Context, username, page string) (*userPort.UserDTO, *postPort.PageDTO, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	posts, err := postPort.ListPage(ctx, s.PostRepository, postPort.Filter{AuthorID: &u.ID}, s.PerPage, page)
	if err != nil {
		return nil, nil, err
	}
	return userPort.ToDTO(u), posts, nil
}

// clean trims and validates the form and resolves the selected group.
func (s *PostService) clean(ctx context.Context, in *PostInput) (*uuid.UUID, error) {
	in.Text = strings.TrimSpace(in.Text)
	in.GroupID = strings.TrimSpace(in.GroupID)
	if err := s.validate.Struct(in); err != nil {
		return nil, validation.Translate(err)
	}
	if in.GroupID == "" {
		return nil, nil
	}

	g, err := s.GroupRepository.FindByID(ctx, in.GroupID)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewValidationError("group", "select a valid choice")
	}
	if err != nil {
		return nil, err
	}
	return &g.ID, nil
}

func (s *PostService) discardImage(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.Media.Delete(ctx, path); err != nil {
		s.logger.Warn("⚠️ Could not remove orphaned upload", zap.String("path", path), zap.Error(err))
	}
}
