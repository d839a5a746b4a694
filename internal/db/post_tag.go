package db

import "github.com/google/uuid"

// PostTag 是文章与自由文本标签的关联行，
// 复合主键 (fk_post_id, tag) 保证同一标签对同一篇文章至多出现一次。
type PostTag struct {
	PostID uuid.UUID `gorm:"column:fk_post_id;type:uuid;primaryKey" json:"fk_post_id"`
	Tag    string    `gorm:"size:255;primaryKey" json:"tag"`
}

// TableName 保持与既有 schema 一致的表名。
func (PostTag) TableName() string {
	return "posts_tags"
}
