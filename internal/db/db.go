package db

import (
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB 是一个全局的数据库连接实例
var DB *gorm.DB

// Init 初始化数据库连接并执行自动迁移。
// databaseURL 为 postgres:// 或 postgresql:// 时使用 Postgres 驱动，
// 其余值按 SQLite 文件路径处理；为空时回退到默认值 postgres://localhost/blog_db。
func Init(databaseURL string) error {
	var err error
	DB, err = Open(databaseURL)
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	// 请求共享同一个有界连接池，进程退出时随之销毁
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return Migrate(DB)
}

// Open 根据 databaseURL 选择驱动并建立 gorm 连接。
func Open(databaseURL string) (*gorm.DB, error) {
	url := strings.TrimSpace(databaseURL)
	if url == "" {
		url = "postgres://localhost/blog_db"
	}

	var dialector gorm.Dialector
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		dialector = postgres.Open(url)
	} else {
		dialector = sqlite.Open(url)
	}

	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		// created_by 允许悬空（作者可能被带外删除），因此不建外键约束
		DisableForeignKeyConstraintWhenMigrating: true,
	})
}

// Migrate 为核心模型创建表。
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&User{},
		&Post{},
		&PostTag{},
	)
}
