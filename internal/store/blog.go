package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"tinkerbox/internal/logging"

	"golang.org/x/crypto/bcrypt"
)

// BlogUser is a row in blog_users. Passwords are stored bcrypt-hashed.
type BlogUser struct {
	ID        int64
	Username  string
	Email     string
	Bio       string
	CreatedAt time.Time
}

// BlogPost is a row in blog_posts joined with author and category names.
type BlogPost struct {
	ID        int64
	Title     string
	Content   string
	Author    string
	Category  string
	Published bool
	ViewCount int64
	CreatedAt time.Time
}

// BlogComment is a row in blog_comments.
type BlogComment struct {
	ID          int64
	PostID      int64
	AuthorName  string
	AuthorEmail string
	Content     string
	CreatedAt   time.Time
}

// AddBlogUser creates a user with a bcrypt password hash.
func (s *LocalStore) AddBlogUser(username, email, password, bio string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" {
		return 0, fmt.Errorf("username and email required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	res, err := s.db.Exec(
		"INSERT INTO blog_users (username, email, password_hash, bio) VALUES (?, ?, ?, ?)",
		username, email, string(hash), bio,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add user: %w", err)
	}
	id, _ := res.LastInsertId()
	logging.StoreDebug("Added blog user %d: %s", id, username)
	return id, nil
}

// CheckBlogPassword verifies a user's password against the stored hash.
func (s *LocalStore) CheckBlogPassword(username, password string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var hash string
	err := s.db.QueryRow("SELECT password_hash FROM blog_users WHERE username = ?", username).Scan(&hash)
	if err == sql.ErrNoRows {
		return false, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("failed to load user: %w", err)
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil, nil
}

// GetBlogUser fetches a user by username.
func (s *LocalStore) GetBlogUser(username string) (BlogUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var u BlogUser
	var bio sql.NullString
	var created string
	err := s.db.QueryRow(
		"SELECT id, username, email, COALESCE(bio, ''), created_at FROM blog_users WHERE username = ?",
		username,
	).Scan(&u.ID, &u.Username, &u.Email, &bio, &created)
	if err == sql.ErrNoRows {
		return u, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	if err != nil {
		return u, fmt.Errorf("failed to scan user: %w", err)
	}
	u.Bio = bio.String
	u.CreatedAt = parseTimestamp(created)
	return u, nil
}

// AddBlogCategory creates a category; the name is unique.
func (s *LocalStore) AddBlogCategory(name, description string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("category name required")
	}
	res, err := s.db.Exec(
		"INSERT INTO blog_categories (name, description) VALUES (?, ?)", name, description)
	if err != nil {
		return 0, fmt.Errorf("failed to add category: %w", err)
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// AddBlogPost creates a post. categoryID may be 0 for uncategorized.
func (s *LocalStore) AddBlogPost(title, content string, authorID, categoryID int64, published bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(title) == "" {
		return 0, fmt.Errorf("post title required")
	}

	var cat interface{}
	if categoryID > 0 {
		cat = categoryID
	}
	res, err := s.db.Exec(
		"INSERT INTO blog_posts (title, content, author_id, category_id, published) VALUES (?, ?, ?, ?, ?)",
		title, content, authorID, cat, boolToInt(published),
	)
	if err != nil {
		// FK violation, most likely an unknown author or category
		return 0, fmt.Errorf("failed to add post: %w", err)
	}
	id, _ := res.LastInsertId()
	logging.StoreDebug("Added blog post %d: %s", id, title)
	return id, nil
}

// PublishBlogPost flips a post to published.
func (s *LocalStore) PublishBlogPost(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		"UPDATE blog_posts SET published = 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to publish post: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("post %d: %w", id, ErrNotFound)
	}
	return nil
}

// ViewBlogPost fetches a post by id and bumps its view counter.
func (s *LocalStore) ViewBlogPost(id int64) (BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("UPDATE blog_posts SET view_count = view_count + 1 WHERE id = ?", id); err != nil {
		return BlogPost{}, fmt.Errorf("failed to bump view count: %w", err)
	}

	row := s.db.QueryRow(
		`SELECT p.id, p.title, p.content, u.username, COALESCE(c.name, ''), p.published, p.view_count, p.created_at
		 FROM blog_posts p
		 JOIN blog_users u ON u.id = p.author_id
		 LEFT JOIN blog_categories c ON c.id = p.category_id
		 WHERE p.id = ?`, id)
	return scanBlogPost(row)
}

// PublishedPosts returns published posts joined with author and category,
// newest first.
func (s *LocalStore) PublishedPosts() ([]BlogPost, error) {
	return s.queryPosts(
		`SELECT p.id, p.title, p.content, u.username, COALESCE(c.name, ''), p.published, p.view_count, p.created_at
		 FROM blog_posts p
		 JOIN blog_users u ON u.id = p.author_id
		 LEFT JOIN blog_categories c ON c.id = p.category_id
		 WHERE p.published = 1
		 ORDER BY p.created_at DESC`)
}

// PostsByCategory returns published posts in a named category.
func (s *LocalStore) PostsByCategory(category string) ([]BlogPost, error) {
	return s.queryPosts(
		`SELECT p.id, p.title, p.content, u.username, c.name, p.published, p.view_count, p.created_at
		 FROM blog_posts p
		 JOIN blog_users u ON u.id = p.author_id
		 JOIN blog_categories c ON c.id = p.category_id
		 WHERE c.name = ? AND p.published = 1
		 ORDER BY p.created_at DESC`, category)
}

// AddBlogComment attaches a comment to a post.
func (s *LocalStore) AddBlogComment(postID int64, authorName, authorEmail, content string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(content) == "" {
		return 0, fmt.Errorf("comment content required")
	}
	res, err := s.db.Exec(
		"INSERT INTO blog_comments (post_id, author_name, author_email, content) VALUES (?, ?, ?, ?)",
		postID, authorName, authorEmail, content,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add comment: %w", err)
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// CommentsForPost returns a post's comments, oldest first.
func (s *LocalStore) CommentsForPost(postID int64) ([]BlogComment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		`SELECT id, post_id, author_name, COALESCE(author_email, ''), content, created_at
		 FROM blog_comments WHERE post_id = ? ORDER BY created_at`, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []BlogComment
	for rows.Next() {
		var c BlogComment
		var created string
		if err := rows.Scan(&c.ID, &c.PostID, &c.AuthorName, &c.AuthorEmail, &c.Content, &created); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		c.CreatedAt = parseTimestamp(created)
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// BlogStats summarizes the blog tables.
type BlogStats struct {
	Users         int
	Posts         int
	Published     int
	Comments      int
	Categories    int
	MostViewed    string
	MostCommented string
}

// BlogStatistics aggregates counts plus the most viewed and most commented
// post titles.
func (s *LocalStore) BlogStatistics() (BlogStats, error) {
	timer := logging.StartTimer(logging.CategoryStore, "BlogStatistics")
	defer timer.Stop()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats BlogStats
	row := s.db.QueryRow(
		`SELECT
			(SELECT COUNT(*) FROM blog_users),
			(SELECT COUNT(*) FROM blog_posts),
			(SELECT COUNT(*) FROM blog_posts WHERE published = 1),
			(SELECT COUNT(*) FROM blog_comments),
			(SELECT COUNT(*) FROM blog_categories)`)
	if err := row.Scan(&stats.Users, &stats.Posts, &stats.Published, &stats.Comments, &stats.Categories); err != nil {
		return stats, fmt.Errorf("failed to aggregate blog stats: %w", err)
	}

	// Most viewed published post
	err := s.db.QueryRow(
		"SELECT title FROM blog_posts WHERE published = 1 ORDER BY view_count DESC, id LIMIT 1",
	).Scan(&stats.MostViewed)
	if err != nil && err != sql.ErrNoRows {
		return stats, fmt.Errorf("failed to find most viewed: %w", err)
	}

	// Most commented post
	err = s.db.QueryRow(
		`SELECT p.title FROM blog_posts p
		 JOIN blog_comments c ON c.post_id = p.id
		 GROUP BY p.id ORDER BY COUNT(c.id) DESC, p.id LIMIT 1`,
	).Scan(&stats.MostCommented)
	if err != nil && err != sql.ErrNoRows {
		return stats, fmt.Errorf("failed to find most commented: %w", err)
	}

	return stats, nil
}

func (s *LocalStore) queryPosts(query string, args ...interface{}) ([]BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []BlogPost
	for rows.Next() {
		var p BlogPost
		var published int
		var created string
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.Category, &published, &p.ViewCount, &created); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		p.Published = published != 0
		p.CreatedAt = parseTimestamp(created)
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func scanBlogPost(row *sql.Row) (BlogPost, error) {
	var p BlogPost
	var published int
	var created string
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.Category, &published, &p.ViewCount, &created)
	if err == sql.ErrNoRows {
		return p, ErrNotFound
	}
	if err != nil {
		return p, fmt.Errorf("failed to scan post: %w", err)
	}
	p.Published = published != 0
	p.CreatedAt = parseTimestamp(created)
	return p, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
