package router

import (
	"github.com/blogapi/internal/handler"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(gdb *gorm.DB) *gin.Engine {
	r := gin.Default()

	api := handler.NewAPI(gdb)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	group := r.Group("/api")
	{
		group.POST("/users", api.CreateUser)
		group.POST("/posts", api.CreatePost)
		group.GET("/posts", api.ListPosts)
	}

	return r
}
