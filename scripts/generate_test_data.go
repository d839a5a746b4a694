package main

import (
	"fmt"
	"log"

	"github.com/blogapi/internal/config"
	"github.com/blogapi/internal/db"
	"github.com/blogapi/internal/service"
	"github.com/google/uuid"
)

// 测试数据生成器
func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	fmt.Println("开始生成测试数据...")

	users := createTestUsers()
	createTestPosts(users)

	fmt.Println("测试数据生成完成！")
}

func createTestUsers() []string {
	var count int64
	db.DB.Model(&db.User{}).Count(&count)
	if count > 0 {
		fmt.Println("用户已存在，跳过创建")
		var existing []db.User
		db.DB.Find(&existing)
		ids := make([]string, 0, len(existing))
		for _, user := range existing {
			ids = append(ids, user.ID.String())
		}
		return ids
	}

	svc := service.NewUserService(db.DB)
	inputs := []service.UserInput{
		{Username: "alice", FirstName: "Alice", LastName: "Walker"},
		{Username: "bob", FirstName: "Bob", LastName: "Stone"},
		{Username: "carol", FirstName: "Carol", LastName: "Reyes"},
	}

	ids := make([]string, 0, len(inputs))
	for _, input := range inputs {
		user, err := svc.Create(input)
		if err != nil {
			log.Fatalf("failed to create user %s: %v", input.Username, err)
		}
		ids = append(ids, user.ID.String())
		fmt.Printf("用户: %s\n", user.Username)
	}
	return ids
}

func createTestPosts(userIDs []string) {
	var count int64
	db.DB.Model(&db.Post{}).Count(&count)
	if count > 0 {
		fmt.Println("文章已存在，跳过创建")
		return
	}

	svc := service.NewPostService(db.DB)
	posts := []struct {
		title string
		body  string
		tags  []string
	}{
		{"Rust Basics", "An introduction to ownership and borrowing.", []string{"rust", "tutorial"}},
		{"Go Concurrency", "Channels, goroutines and the scheduler.", []string{"go", "concurrency"}},
		{"Database Pagination", "Counting and fetching with one predicate.", []string{"sql", "pagination"}},
		{"Untagged Thoughts", "A post with no tags at all.", nil},
		{"Weekend Project", "Building a tiny blog API.", []string{"go", "rust", "sql"}},
	}

	for i, p := range posts {
		input := service.PostInput{
			Title:     p.title,
			Body:      p.body,
			CreatedBy: uuid.MustParse(userIDs[i%len(userIDs)]),
			Tags:      p.tags,
		}
		if _, err := svc.Create(input); err != nil {
			log.Fatalf("failed to create post %q: %v", p.title, err)
		}
		fmt.Printf("文章: %s\n", p.title)
	}
}
