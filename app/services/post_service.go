package services

import (
	"errors"
	"fmt"
	"time"

	"quill/app/models"
	"quill/app/repositories"
)

// ErrInvalidInput marks validation failures that map to a 400 response.
var ErrInvalidInput = errors.New("invalid input")

// RecentLimit is the fixed size of the recency window for post listings.
const RecentLimit = 20

// PostService handles business logic for posts
type PostService struct {
	posts repositories.PostRepository
	users repositories.UserRepository
}

// NewPostService creates a new PostService
func NewPostService(posts repositories.PostRepository, users repositories.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// CreatePost creates a post authored by the given user
func (s *PostService) CreatePost(fields repositories.PostFields, cover string, authorID int) (*models.PostDoc, error) {
	post := &models.Post{
		Title:     fields.Title,
		Summary:   fields.Summary,
		Content:   fields.Content,
		Cover:     cover,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return post.WithAuthor(s.resolveAuthor(post.AuthorID)), nil
}

// GetPost retrieves a post with its author resolved
func (s *PostService) GetPost(id int) (*models.PostDoc, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	return post.WithAuthor(s.resolveAuthor(post.AuthorID)), nil
}

// ListRecent retrieves the most recent posts, newest first, authors resolved
func (s *PostService) ListRecent() ([]*models.PostDoc, error) {
	posts, err := s.posts.ListRecent(RecentLimit)
	if err != nil {
		return nil, err
	}

	docs := make([]*models.PostDoc, 0, len(posts))
	for _, post := range posts {
		docs = append(docs, post.WithAuthor(s.resolveAuthor(post.AuthorID)))
	}
	return docs, nil
}

// UpdatePost replaces the editable fields of a post. The existing cover is
// preserved unless newCover is non-empty.
func (s *PostService) UpdatePost(id int, fields repositories.PostFields, newCover string) (*models.PostDoc, error) {
	if err := validateFields(fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	post, err := s.posts.UpdateFields(id, fields, newCover)
	if err != nil {
		return nil, err
	}
	return post.WithAuthor(s.resolveAuthor(post.AuthorID)), nil
}

// DeletePost removes a post and returns the deleted record
func (s *PostService) DeletePost(id int) (*models.Post, error) {
	return s.posts.DeleteReturning(id)
}

// resolveAuthor looks up the author for display. A missing author record
// degrades to an empty username rather than failing the read.
func (s *PostService) resolveAuthor(id int) models.Author {
	author := models.Author{ID: id}
	user, err := s.users.GetByID(id)
	if err == nil {
		author.Username = user.Username
	}
	return author
}

// validateFields validates an update's fields
func validateFields(fields repositories.PostFields) error {
	if fields.Title == "" {
		return fmt.Errorf("title is required")
	}
	if len(fields.Title) > 200 {
		return fmt.Errorf("title is too long (maximum 200 characters)")
	}
	if fields.Content == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}
