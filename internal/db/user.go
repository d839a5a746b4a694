package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User 定义了用户模型。创建后不可变，不存在更新或删除路径。
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  string    `gorm:"not null" json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate 在插入前生成服务端 uuid 主键。
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
