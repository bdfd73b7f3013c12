package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// User represents a registered account. Records are stored as JSON, so the
// bcrypt digest carries a tag; API responses go through Doc() which omits it.
type User struct {
	ID           int       `json:"id" validate:"gte=0"`
	Username     string    `json:"username" validate:"required,min=3,max=50"`
	PasswordHash string    `json:"passwordHash,omitempty" validate:"required"`
	CreatedAt    time.Time `json:"createdAt" validate:"-"`
}

// UserDoc is the API representation of a user.
type UserDoc struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post represents a published entry with an optional cover asset.
type Post struct {
	ID        int       `json:"id" validate:"gte=0"`
	Title     string    `json:"title" validate:"required,max=200"`
	Summary   string    `json:"summary" validate:"max=500"`
	Content   string    `json:"content" validate:"required"`
	Cover     string    `json:"cover,omitempty" validate:"-"`
	AuthorID  int       `json:"authorId" validate:"gte=0"`
	CreatedAt time.Time `json:"createdAt" validate:"-"`
}

// Author is the display form of a post's author.
type Author struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// PostDoc is the API representation of a post with its author resolved.
type PostDoc struct {
	Post
	Author Author `json:"author"`
}
