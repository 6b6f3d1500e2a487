package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

type stubParser map[string]string

func (p stubParser) ParseToken(token string) (string, error) {
	if id, ok := p[token]; ok {
		return id, nil
	}
	return "", errors.New("bad token")
}

func newEngine(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(zaptest.NewLogger(t)), RequestLogger(zaptest.NewLogger(t)), Authenticate(stubParser{"good": "user-1"}))
	r.GET("/whoami", func(c *gin.Context) { c.String(http.StatusOK, CurrentUserID(c)) })
	r.GET("/private/", LoginRequired("/auth/login/"), func(c *gin.Context) { c.String(http.StatusOK, "secret") })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func TestAuthenticate(t *testing.T) {
	r := newEngine(t)

	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{name: "bearer header", header: "Bearer good", want: "user-1"},
		{name: "lowercase scheme", header: "bearer good", want: "user-1"},
		{name: "cookie", cookie: "good", want: "user-1"},
		{name: "invalid token", header: "Bearer nope", want: ""},
		{name: "anonymous", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: TokenCookie, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestLoginRequired(t *testing.T) {
	r := newEngine(t)

	t.Run("guest is redirected with next", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private/?page=2", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/auth/login/?next=%2Fprivate%2F%3Fpage%3D2", w.Header().Get("Location"))
	})

	t.Run("user passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private/", nil)
		req.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "secret", w.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	r := newEngine(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
