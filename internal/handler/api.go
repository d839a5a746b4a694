package handler

import (
	"github.com/blogapi/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db    *gorm.DB
	users *service.UserService
	posts *service.PostService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB) *API {
	return &API{
		db:    gdb,
		users: service.NewUserService(gdb),
		posts: service.NewPostService(gdb),
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
