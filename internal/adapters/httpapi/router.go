package httpapi

import (
	"context"
	"net/http"
	"time"

	"yatube/internal/adapters/httpapi/middleware"
	followerEntity "yatube/internal/core/follower"
	postapp "yatube/internal/core/post/service"
	cachePort "yatube/internal/ports/cache"
	commentPort "yatube/internal/ports/comment"
	followerPort "yatube/internal/ports/follower"
	groupPort "yatube/internal/ports/group"
	postPort "yatube/internal/ports/post"
	userPort "yatube/internal/ports/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserUseCase is what the auth and profile handlers need from accounts.
type UserUseCase interface {
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, firstName, lastName, username, password string) (*userPort.UserDTO, error)
	ParseToken(token string) (string, error)
	GetByID(ctx context.Context, id string) (*userPort.UserDTO, error)
	GetByUsername(ctx context.Context, username string) (*userPort.UserDTO, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, authorID string, in postapp.PostInput) (*postPort.PostDTO, error)
	EditPost(ctx context.Context, postID, editorID string, in postapp.PostInput) (*postPort.PostDTO, error)
	CanEdit(ctx context.Context, postID, userID string) (*postPort.PostDTO, bool, error)
	GetPost(ctx context.Context, id string) (*postPort.PostDetailDTO, error)
	PostForm(ctx context.Context) ([]*groupPort.GroupDTO, error)
	ListAllPosts(ctx context.Context, page string) (*postPort.PageDTO, error)
	ListPostsByGroup(ctx context.Context, slug, page string) (*groupPort.GroupDTO, *postPort.PageDTO, error)
	ListPostsByAuthor(ctx context.Context, username, page string) (*userPort.UserDTO, *postPort.PageDTO, error)
}

type CommentUseCase interface {
	AddComment(ctx context.Context, postID, authorID, text string) (*commentPort.CommentDTO, error)
}

type FollowerUseCase interface {
	FollowUser(ctx context.Context, followerID, authorID string) (followerEntity.Result, error)
	UnfollowUser(ctx context.Context, followerID, authorID string) (followerEntity.Result, error)
	IsFollowing(ctx context.Context, followerID, authorID string) (bool, error)
	ListFollowedPosts(ctx context.Context, userID, page string) (*postPort.PageDTO, error)
	GetFollowersByUserID(ctx context.Context, userID string) ([]*followerPort.FollowerDTO, error)
	GetFollowingByUserID(ctx context.Context, userID string) ([]*followerPort.FollowerDTO, error)
}

// Options configures the routes that are not use cases.
type Options struct {
	LoginURL      string
	IndexCacheTTL time.Duration
	Logger        *zap.Logger
}

// SetupRoutes only wires routes; use cases are injected from main.
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	commentUC CommentUseCase,
	followerUC FollowerUseCase,
	listingCache cachePort.ListingCache,
	opts Options,
) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(
		middleware.Recovery(logger),
		middleware.RequestLogger(logger),
		middleware.Authenticate(userUC),
	)

	uc := NewUserController(userUC, logger)
	pc := NewPostController(postUC, userUC, followerUC, listingCache, opts.IndexCacheTTL, logger)
	cc := NewCommentController(commentUC, logger)
	fc := NewFollowerController(followerUC, userUC, logger)

	// public pages
	r.GET("/", pc.Index)
	r.GET("/group/:slug/", pc.GroupPosts)
	r.GET("/profile/:username/", pc.Profile)
	r.GET("/profile/:username/followers/", fc.Followers)
	r.GET("/profile/:username/following/", fc.Following)
	r.GET("/posts/:id/", pc.PostDetail)

	r.GET("/auth/signup/", uc.SignupForm)
	r.POST("/auth/signup/", uc.Signup)
	r.GET("/auth/login/", uc.LoginForm)
	r.POST("/auth/login/", uc.Login)
	r.GET("/auth/logout/", uc.Logout)

	r.GET("/about/author/", AboutAuthor)
	r.GET("/about/tech/", AboutTech)

	// pages for signed-in users
	auth := r.Group("/", middleware.LoginRequired(opts.LoginURL))
	auth.GET("/create/", pc.CreateForm)
	auth.POST("/create/", pc.Create)
	auth.GET("/posts/:id/edit/", pc.EditForm)
	auth.POST("/posts/:id/edit/", pc.Edit)
	auth.POST("/posts/:id/comment/", cc.AddComment)
	auth.GET("/follow/", fc.Feed)
	auth.GET("/profile/:username/follow/", fc.Follow)
	auth.GET("/profile/:username/unfollow/", fc.Unfollow)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found", "path": c.Request.URL.Path})
	})
	return r
}
