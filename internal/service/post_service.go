package service

import (
	"strings"
	"time"

	"github.com/blogapi/internal/db"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostService wraps post related database operations.
type PostService struct {
	db *gorm.DB
}

// PostInput represents fields accepted when creating a post.
type PostInput struct {
	Title     string
	Body      string
	CreatedBy uuid.UUID
	Tags      []string
}

// PostQuery describes pagination and search parameters for listing posts.
type PostQuery struct {
	Page   int
	Limit  int
	Search string
}

// CreatedBy 是列表行中的作者快照；作者被删除后该组字段整体缺席。
type CreatedBy struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// PostView is a single listing row: the post, its resolved author and its tag set.
type PostView struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	CreatedBy *CreatedBy `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	Tags      []string   `json:"tags"`
}

// PaginationMeta 描述一页结果；to 以 total_docs 为上限，from 不做截断。
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	From        int64 `json:"from"`
	To          int64 `json:"to"`
	TotalPages  int64 `json:"total_pages"`
	TotalDocs   int64 `json:"total_docs"`
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// Create persists a post and its tag rows in a single transaction.
// 调用方重复提交的标签在入库前去重，首个出现者生效。
func (s *PostService) Create(input PostInput) (*db.Post, error) {
	post := db.Post{
		Title:     strings.TrimSpace(input.Title),
		Body:      input.Body,
		CreatedBy: input.CreatedBy,
	}

	tags := dedupeTags(input.Tags)

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}

		if len(tags) == 0 {
			return nil
		}

		rows := make([]db.PostTag, 0, len(tags))
		for _, tag := range tags {
			rows = append(rows, db.PostTag{PostID: post.ID, Tag: tag})
		}
		return tx.Create(&rows).Error
	}); err != nil {
		return nil, classify(err, ErrWriteFailed)
	}

	return &post, nil
}

// List 返回按创建时间倒序的分页文章列表，搜索词跨标题、正文、作者与标签匹配。
// meta 与记录共用同一份过滤谓词，因此二者始终一致。
func (s *PostService) List(query PostQuery) ([]PostView, PaginationMeta, error) {
	if query.Page < 1 {
		return nil, PaginationMeta{}, ErrInvalidPage
	}
	if query.Limit < 1 {
		return nil, PaginationMeta{}, ErrInvalidLimit
	}

	var totalDocs int64
	countQuery := s.applySearch(s.db.Model(&db.Post{}), query.Search)
	if err := countQuery.Count(&totalDocs).Error; err != nil {
		return nil, PaginationMeta{}, classify(err, ErrQueryFailed)
	}

	offset := (query.Page - 1) * query.Limit

	var posts []db.Post
	dataQuery := s.applySearch(
		s.db.Model(&db.Post{}).Preload("Tags").Preload("Author"),
		query.Search,
	)
	if err := dataQuery.
		Order("posts.created_at DESC, posts.id ASC").
		Limit(query.Limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, PaginationMeta{}, classify(err, ErrQueryFailed)
	}

	records := make([]PostView, 0, len(posts))
	for i := range posts {
		records = append(records, newPostView(&posts[i]))
	}

	meta := PaginationMeta{
		CurrentPage: query.Page,
		PerPage:     query.Limit,
		From:        int64(offset) + 1,
		To:          min(int64(offset+query.Limit), totalDocs),
		TotalPages:  (totalDocs + int64(query.Limit) - 1) / int64(query.Limit),
		TotalDocs:   totalDocs,
	}

	return records, meta, nil
}

// applySearch 把搜索谓词应用到查询上；计数与取数调用同一份实现。
// 谓词通过 posts.id IN (子查询) 表达，避免 LEFT JOIN posts_tags 带来的行扇出。
func (s *PostService) applySearch(query *gorm.DB, term string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" {
		return query
	}

	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"

	matched := s.db.Model(&db.Post{}).
		Select("posts.id").
		Joins("LEFT JOIN users ON users.id = posts.created_by").
		Joins("LEFT JOIN posts_tags ON posts_tags.fk_post_id = posts.id").
		Where(`LOWER(posts.title) LIKE ? ESCAPE '\'`+
			` OR LOWER(posts.body) LIKE ? ESCAPE '\'`+
			` OR LOWER(users.username) LIKE ? ESCAPE '\'`+
			` OR LOWER(users.first_name) LIKE ? ESCAPE '\'`+
			` OR LOWER(users.last_name) LIKE ? ESCAPE '\'`+
			` OR LOWER(posts_tags.tag) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern, pattern, pattern, pattern).
		Distinct()

	return query.Where("posts.id IN (?)", matched)
}

func newPostView(post *db.Post) PostView {
	view := PostView{
		ID:        post.ID,
		Title:     post.Title,
		Body:      post.Body,
		CreatedAt: post.CreatedAt,
		Tags:      make([]string, 0, len(post.Tags)),
	}

	for _, row := range post.Tags {
		view.Tags = append(view.Tags, row.Tag)
	}

	if post.Author != nil {
		view.CreatedBy = &CreatedBy{
			UserID:    post.Author.ID,
			Username:  post.Author.Username,
			FirstName: post.Author.FirstName,
			LastName:  post.Author.LastName,
		}
	}

	return view
}

func dedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	deduped := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		deduped = append(deduped, trimmed)
	}
	return deduped
}

// escapeLike 让用户输入中的通配符按字面匹配。
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}
