package httpapi

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"yatube/internal/adapters/httpapi/middleware"
	"yatube/internal/core/apperror"
	"yatube/internal/core/paginator"
	postapp "yatube/internal/core/post/service"
	cachePort "yatube/internal/ports/cache"
	mediaPort "yatube/internal/ports/media"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

const (
	indexCacheKey   = "index_page:"
	jsonContentType = "application/json; charset=utf-8"
)

type PostController struct {
	pc       PostUseCase
	uc       UserUseCase
	fc       FollowerUseCase
	cache    cachePort.ListingCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewPostController(pc PostUseCase, uc UserUseCase, fc FollowerUseCase, cache cachePort.ListingCache, cacheTTL time.Duration, logger *zap.Logger) *PostController {
	return &PostController{pc: pc, uc: uc, fc: fc, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// postForm is the submitted post form; the image comes as a multipart file.
type postForm struct {
	Text  string `form:"text" json:"text"`
	Group string `form:"group" json:"group"`
}

// Index serves the site-wide listing. Rendered pages are cached per page
// number and are not invalidated by writes.
func (ctl *PostController) Index(c *gin.Context) {
	ctx := c.Request.Context()
	page := c.Query("page")
	key := indexCacheKey + cachePageKey(page)

	body, err := ctl.cache.Get(ctx, key)
	if err == nil {
		c.Data(http.StatusOK, jsonContentType, body)
		return
	}
	if !errors.Is(err, cachePort.ErrMiss) {
		ctl.logger.Warn("⚠️ Listing cache read failed", zap.String("key", key), zap.Error(err))
	}

	posts, err := ctl.pc.ListAllPosts(ctx, page)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}

	body, err = json.Marshal(gin.H{"page": posts})
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	if err := ctl.cache.Set(ctx, key, body, ctl.cacheTTL); err != nil {
		ctl.logger.Warn("⚠️ Listing cache write failed", zap.String("key", key), zap.Error(err))
	}
	c.Data(http.StatusOK, jsonContentType, body)
}

// cachePageKey folds the spellings of one page number into one cache slot:
// "", "x" and "1" share a key, as do all numbers that mean the last page.
func cachePageKey(raw string) string {
	number, ok := paginator.ParseNumber(raw)
	if !ok {
		return "last"
	}
	return strconv.Itoa(number)
}

func (ctl *PostController) GroupPosts(c *gin.Context) {
	group, posts, err := ctl.pc.ListPostsByGroup(c.Request.Context(), c.Param("slug"), c.Query("page"))
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": group, "page": posts})
}

func (ctl *PostController) Profile(c *gin.Context) {
	ctx := c.Request.Context()
	author, posts, err := ctl.pc.ListPostsByAuthor(ctx, c.Param("username"), c.Query("page"))
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}

	following, err := ctl.fc.IsFollowing(ctx, middleware.CurrentUserID(c), author.ID)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"author":      author,
		"posts_count": posts.Count,
		"following":   following,
		"page":        posts,
	})
}

func (ctl *PostController) PostDetail(c *gin.Context) {
	detail, err := ctl.pc.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (ctl *PostController) CreateForm(c *gin.Context) {
	groups, err := ctl.pc.PostForm(c.Request.Context())
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups, "is_edit": false})
}

func (ctl *PostController) Create(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.CurrentUserID(c)

	form, in, closeImage, err := bindPostForm(c)
	if err != nil {
		malformed(c)
		return
	}
	defer closeImage()

	if _, err := ctl.pc.CreatePost(ctx, userID, in); err != nil {
		ctl.formError(c, err, form, false)
		return
	}

	me, err := ctl.uc.GetByID(ctx, userID)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+me.Username+"/")
}

// EditForm shows the filled form to the author; anyone else is sent back
// to the post.
func (ctl *PostController) EditForm(c *gin.Context) {
	ctx := c.Request.Context()
	postID := c.Param("id")

	post, ok, err := ctl.pc.CanEdit(ctx, postID, middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	if !ok {
		c.Redirect(http.StatusFound, "/posts/"+postID+"/")
		return
	}

	groups, err := ctl.pc.PostForm(ctx)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups, "post": post, "is_edit": true})
}

func (ctl *PostController) Edit(c *gin.Context) {
	postID := c.Param("id")

	form, in, closeImage, err := bindPostForm(c)
	if err != nil {
		malformed(c)
		return
	}
	defer closeImage()

	_, err = ctl.pc.EditPost(c.Request.Context(), postID, middleware.CurrentUserID(c), in)
	if errors.Is(err, apperror.ErrForbidden) {
		c.Redirect(http.StatusFound, "/posts/"+postID+"/")
		return
	}
	if err != nil {
		ctl.formError(c, err, form, true)
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+postID+"/")
}

// formError re-presents the submitted form with its errors.
func (ctl *PostController) formError(c *gin.Context, err error, form postForm, isEdit bool) {
	ve, ok := apperror.AsValidation(err)
	if !ok {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"errors": ve.Fields, "form": form, "is_edit": isEdit})
}

// bindPostForm reads a JSON, urlencoded or multipart post form. The returned
// func closes the uploaded image, if any.
func bindPostForm(c *gin.Context) (postForm, postapp.PostInput, func(), error) {
	var form postForm
	noop := func() {}
	if err := c.ShouldBind(&form); err != nil {
		return form, postapp.PostInput{}, noop, err
	}

	in := postapp.PostInput{Text: form.Text, GroupID: form.Group}
	if c.ContentType() != binding.MIMEMultipartPOSTForm {
		return form, in, noop, nil
	}

	fh, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return form, in, noop, nil
	}
	if err != nil {
		return form, in, noop, err
	}
	f, err := fh.Open()
	if err != nil {
		return form, in, noop, err
	}
	in.Image = &mediaPort.Upload{Filename: fh.Filename, Content: f}
	return form, in, func() { closeQuietly(f) }, nil
}

func closeQuietly(f multipart.File) { _ = f.Close() }
