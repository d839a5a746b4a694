package db

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestOpenSQLitePathAndMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog.db")
	gdb, err := Open(path)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, table := range []string{"users", "posts", "posts_tags"} {
		if !gdb.Migrator().HasTable(table) {
			t.Fatalf("expected table %s to exist", table)
		}
	}
}

func TestBeforeCreateGeneratesIDs(t *testing.T) {
	gdb, err := Open(filepath.Join(t.TempDir(), "blog.db"))
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	user := User{Username: "alice", FirstName: "Alice", LastName: "Walker"}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.ID == uuid.Nil {
		t.Fatalf("expected generated user id")
	}

	post := Post{Title: "T", Body: "B", CreatedBy: user.ID}
	if err := gdb.Create(&post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.ID == uuid.Nil {
		t.Fatalf("expected generated post id")
	}
}

func TestPostTagCompositeKeyRejectsDuplicates(t *testing.T) {
	gdb, err := Open(filepath.Join(t.TempDir(), "blog.db"))
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	postID := uuid.New()
	if err := gdb.Create(&PostTag{PostID: postID, Tag: "go"}).Error; err != nil {
		t.Fatalf("create tag row: %v", err)
	}
	// 同一文章可以有不同标签
	if err := gdb.Create(&PostTag{PostID: postID, Tag: "sql"}).Error; err != nil {
		t.Fatalf("create second tag row: %v", err)
	}
	// 同一 (fk_post_id, tag) 二次写入触发复合主键冲突
	err = gdb.Create(&PostTag{PostID: postID, Tag: "go"}).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected duplicated key error, got %v", err)
	}
}
