package service

import (
	"fmt"
	"strings"

	"github.com/blogapi/internal/db"
	"gorm.io/gorm"
)

// UserService wraps user related database operations.
type UserService struct {
	db *gorm.DB
}

// UserInput represents fields accepted when creating a user.
type UserInput struct {
	Username  string
	FirstName string
	LastName  string
}

// NewUserService creates a UserService instance.
func NewUserService(gdb *gorm.DB) *UserService {
	return &UserService{db: gdb}
}

// Create 插入一个新用户，主键与创建时间由服务端生成。
// 用户名触发唯一索引时返回 ErrConstraintViolation。
func (s *UserService) Create(input UserInput) (*db.User, error) {
	user := db.User{
		Username:  strings.TrimSpace(input.Username),
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
	}

	if user.Username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, classify(err, ErrWriteFailed)
	}

	return &user, nil
}
