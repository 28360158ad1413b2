package store

import (
	"errors"
	"testing"
)

func TestBlogUsersAndPasswords(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddBlogUser("alice", "alice@example.org", "s3cret", "writes things")
	if err != nil {
		t.Fatalf("AddBlogUser failed: %v", err)
	}
	if id == 0 {
		t.Fatal("Expected non-zero user id")
	}

	// Duplicate username rejected
	if _, err := s.AddBlogUser("alice", "other@example.org", "x", ""); err == nil {
		t.Error("Expected unique violation for duplicate username")
	}

	ok, err := s.CheckBlogPassword("alice", "s3cret")
	if err != nil {
		t.Fatalf("CheckBlogPassword failed: %v", err)
	}
	if !ok {
		t.Error("Correct password rejected")
	}
	ok, _ = s.CheckBlogPassword("alice", "wrong")
	if ok {
		t.Error("Wrong password accepted")
	}
	if _, err := s.CheckBlogPassword("nobody", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown user, got %v", err)
	}

	u, err := s.GetBlogUser("alice")
	if err != nil {
		t.Fatal(err)
	}
	if u.Bio != "writes things" {
		t.Errorf("Unexpected bio %q", u.Bio)
	}
}

func TestBlogPostsLifecycle(t *testing.T) {
	s := newTestStore(t)

	author, err := s.AddBlogUser("bob", "bob@example.org", "pw", "")
	if err != nil {
		t.Fatal(err)
	}
	catID, err := s.AddBlogCategory("go", "all things Go")
	if err != nil {
		t.Fatal(err)
	}

	draft, err := s.AddBlogPost("Draft post", "wip", author, catID, false)
	if err != nil {
		t.Fatalf("AddBlogPost failed: %v", err)
	}
	live, err := s.AddBlogPost("Live post", "hello", author, 0, true)
	if err != nil {
		t.Fatal(err)
	}

	// Unknown author violates the FK
	if _, err := s.AddBlogPost("orphan", "x", 9999, 0, true); err == nil {
		t.Error("Expected FK violation for unknown author")
	}

	published, err := s.PublishedPosts()
	if err != nil {
		t.Fatal(err)
	}
	if len(published) != 1 || published[0].ID != live {
		t.Errorf("Unexpected published set: %+v", published)
	}

	if err := s.PublishBlogPost(draft); err != nil {
		t.Fatalf("PublishBlogPost failed: %v", err)
	}
	published, _ = s.PublishedPosts()
	if len(published) != 2 {
		t.Errorf("Expected 2 published posts, got %d", len(published))
	}

	inCat, err := s.PostsByCategory("go")
	if err != nil {
		t.Fatal(err)
	}
	if len(inCat) != 1 || inCat[0].Title != "Draft post" {
		t.Errorf("Unexpected category posts: %+v", inCat)
	}

	// Views bump the counter
	p, err := s.ViewBlogPost(live)
	if err != nil {
		t.Fatal(err)
	}
	if p.ViewCount != 1 {
		t.Errorf("Expected view_count 1, got %d", p.ViewCount)
	}
	if p.Author != "bob" {
		t.Errorf("Expected joined author, got %q", p.Author)
	}
}

func TestBlogCommentsAndStats(t *testing.T) {
	s := newTestStore(t)

	author, _ := s.AddBlogUser("carol", "carol@example.org", "pw", "")
	post, err := s.AddBlogPost("Popular", "content", author, 0, true)
	if err != nil {
		t.Fatal(err)
	}
	quiet, _ := s.AddBlogPost("Quiet", "content", author, 0, true)

	if _, err := s.AddBlogComment(post, "dan", "dan@x.com", "nice"); err != nil {
		t.Fatalf("AddBlogComment failed: %v", err)
	}
	if _, err := s.AddBlogComment(post, "eve", "", "agreed"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddBlogComment(post, "x", "", "  "); err == nil {
		t.Error("Expected error for empty comment content")
	}

	comments, err := s.CommentsForPost(post)
	if err != nil {
		t.Fatal(err)
	}
	if len(comments) != 2 {
		t.Errorf("Expected 2 comments, got %d", len(comments))
	}

	if _, err := s.ViewBlogPost(quiet); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ViewBlogPost(quiet); err != nil {
		t.Fatal(err)
	}

	stats, err := s.BlogStatistics()
	if err != nil {
		t.Fatalf("BlogStatistics failed: %v", err)
	}
	if stats.Users != 1 || stats.Posts != 2 || stats.Comments != 2 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.MostViewed != "Quiet" {
		t.Errorf("Expected Quiet as most viewed, got %q", stats.MostViewed)
	}
	if stats.MostCommented != "Popular" {
		t.Errorf("Expected Popular as most commented, got %q", stats.MostCommented)
	}
}
