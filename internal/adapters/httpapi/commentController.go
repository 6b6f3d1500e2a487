package httpapi

import (
	"net/http"

	"yatube/internal/adapters/httpapi/middleware"
	"yatube/internal/core/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommentController struct {
	cc     CommentUseCase
	logger *zap.Logger
}

func NewCommentController(cc CommentUseCase, logger *zap.Logger) *CommentController {
	return &CommentController{cc: cc, logger: logger}
}

// AddComment stores the comment when the form is valid and always returns
// to the post.
func (ctl *CommentController) AddComment(c *gin.Context) {
	postID := c.Param("id")
	var req struct {
		Text string `form:"text" json:"text"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusFound, "/posts/"+postID+"/")
		return
	}

	_, err := ctl.cc.AddComment(c.Request.Context(), postID, middleware.CurrentUserID(c), req.Text)
	if err != nil {
		if _, invalid := apperror.AsValidation(err); !invalid {
			respondError(c, ctl.logger, err)
			return
		}
	}
	c.Redirect(http.StatusFound, "/posts/"+postID+"/")
}
