package repositories

import "quill/app/models"

// PostFields holds the always-replaceable fields of a post update.
type PostFields struct {
	Title   string
	Summary string
	Content string
}

// UserRepository defines the interface for credential data access
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByID(id int) (*models.User, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	ListRecent(limit int) ([]*models.Post, error)
	UpdateFields(id int, fields PostFields, newCover string) (*models.Post, error)
	DeleteReturning(id int) (*models.Post, error)
}
