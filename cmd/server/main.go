package main

import (
	"log"

	"github.com/blogapi/internal/config"
	"github.com/blogapi/internal/db"
	"github.com/blogapi/internal/router"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库，失败时直接退出
	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	log.Println("database connection initialized")

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(db.DB)
	log.Printf("blog api server listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
