package httpapi

import (
	"net/http"

	"yatube/internal/adapters/httpapi/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FollowerController struct {
	fc     FollowerUseCase
	uc     UserUseCase
	logger *zap.Logger
}

func NewFollowerController(fc FollowerUseCase, uc UserUseCase, logger *zap.Logger) *FollowerController {
	return &FollowerController{fc: fc, uc: uc, logger: logger}
}

// Feed lists posts by the authors the current user follows.
func (ctl *FollowerController) Feed(c *gin.Context) {
	posts, err := ctl.fc.ListFollowedPosts(c.Request.Context(), middleware.CurrentUserID(c), c.Query("page"))
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": posts})
}

func (ctl *FollowerController) Follow(c *gin.Context) {
	username := c.Param("username")
	author, err := ctl.uc.GetByUsername(c.Request.Context(), username)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}

	if _, err := ctl.fc.FollowUser(c.Request.Context(), middleware.CurrentUserID(c), author.ID); err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}

func (ctl *FollowerController) Unfollow(c *gin.Context) {
	username := c.Param("username")
	author, err := ctl.uc.GetByUsername(c.Request.Context(), username)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}

	if _, err := ctl.fc.UnfollowUser(c.Request.Context(), middleware.CurrentUserID(c), author.ID); err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}

func (ctl *FollowerController) Followers(c *gin.Context) {
	author, err := ctl.uc.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	followers, err := ctl.fc.GetFollowersByUserID(c.Request.Context(), author.ID)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"author": author, "followers": followers})
}

func (ctl *FollowerController) Following(c *gin.Context) {
	author, err := ctl.uc.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	following, err := ctl.fc.GetFollowingByUserID(c.Request.Context(), author.ID)
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"author": author, "following": following})
}
