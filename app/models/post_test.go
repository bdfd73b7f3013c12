package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPostValidate(t *testing.T) {
	t.Run("valid post", func(t *testing.T) {
		post := &Post{
			Title:     "Test Post",
			Summary:   "A short summary",
			Content:   "This is the post content",
			AuthorID:  1,
			CreatedAt: time.Now(),
		}
		assert.NoError(t, post.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		post := &Post{
			Content:   "Content without a title",
			CreatedAt: time.Now(),
		}
		assert.Error(t, post.Validate())
	})

	t.Run("missing content", func(t *testing.T) {
		post := &Post{
			Title:     "Title without content",
			CreatedAt: time.Now(),
		}
		assert.Error(t, post.Validate())
	})

	t.Run("zero created_at", func(t *testing.T) {
		post := &Post{
			Title:   "Test Post",
			Content: "Content",
		}
		assert.Error(t, post.Validate())
	})
}

func TestPostBeforeCreate(t *testing.T) {
	post := &Post{Title: "Test", Content: "Content"}
	post.BeforeCreate()
	assert.False(t, post.CreatedAt.IsZero())

	// An existing timestamp is preserved
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	post = &Post{Title: "Test", Content: "Content", CreatedAt: fixed}
	post.BeforeCreate()
	assert.Equal(t, fixed, post.CreatedAt)
}

func TestPostWithAuthor(t *testing.T) {
	post := &Post{ID: 7, Title: "Test", Content: "Content", AuthorID: 3}
	doc := post.WithAuthor(Author{ID: 3, Username: "alice"})

	assert.Equal(t, 7, doc.ID)
	assert.Equal(t, 3, doc.Author.ID)
	assert.Equal(t, "alice", doc.Author.Username)
}
