package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post 定义了文章模型。created_by 在创建时必填，但读取时作者可能已被带外删除。
type Post struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Body      string    `gorm:"not null" json:"body"`
	CreatedBy uuid.UUID `gorm:"type:uuid;index;not null" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`

	Author *User     `gorm:"foreignKey:CreatedBy;references:ID" json:"-"`
	Tags   []PostTag `gorm:"foreignKey:PostID;references:ID" json:"-"`
}

// BeforeCreate 在插入前生成服务端 uuid 主键。
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
