package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"yatube/internal/adapters/httpapi/middleware"
	"yatube/internal/core/apperror"
	userapp "yatube/internal/core/user/service"
	"yatube/internal/core/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserController struct {
	uc     UserUseCase
	logger *zap.Logger
}

func NewUserController(uc UserUseCase, logger *zap.Logger) *UserController {
	return &UserController{uc: uc, logger: logger}
}

type signupRequest struct {
	FirstName string `form:"first_name" json:"first_name" binding:"max=150"`
	LastName  string `form:"last_name" json:"last_name" binding:"max=150"`
	Username  string `form:"username" json:"username" binding:"required,max=150"`
	Password  string `form:"password" json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	Next     string `form:"next" json:"next"`
}

func (ctl *UserController) SignupForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": []string{"first_name", "last_name", "username", "password"}})
}

func (ctl *UserController) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if _, err := ctl.uc.RegisterUser(c.Request.Context(), req.FirstName, req.LastName, strings.TrimSpace(req.Username), req.Password); err != nil {
		respondError(c, ctl.logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (ctl *UserController) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": []string{"username", "password"}, "next": c.Query("next")})
}

// Login issues a token in the token cookie and in the body. With a local
// next target the client is redirected there instead.
func (ctl *UserController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := ctl.uc.LoginUser(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, userapp.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err != nil {
		respondError(c, ctl.logger, err)
		return
	}

	maxAge := int(time.Until(time.Unix(res.ExpiresAt, 0)).Seconds())
	c.SetCookie(middleware.TokenCookie, res.Token, maxAge, "/", "", false, true)

	next := req.Next
	if next == "" {
		next = c.Query("next")
	}
	if isLocalPath(next) {
		c.Redirect(http.StatusFound, next)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *UserController) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func respondBindError(c *gin.Context, err error) {
	if ve, ok := apperror.AsValidation(validation.Translate(err)); ok {
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve.Fields})
		return
	}
	malformed(c)
}

func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}
