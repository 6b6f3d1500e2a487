package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func AboutAuthor(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title": "About the author",
		"text":  "Yatube is a small blogging platform: write posts, join groups, follow authors.",
	})
}

func AboutTech(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title": "Technologies",
		"stack": []string{"Go", "gin", "gorm", "Redis", "zap"},
	})
}
