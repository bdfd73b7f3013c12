package repositories

import (
	"sort"

	"quill/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create creates a new post
func (r *BadgerPostRepository) Create(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		post.ID = id
		post.BeforeCreate()

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}

		return txn.Set(idKey(PostKeyPrefix, post.ID), data)
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		return getPost(txn, id, &post)
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListRecent retrieves at most limit posts, newest first
func (r *BadgerPostRepository) ListRecent(limit int) ([]*models.Post, error) {
	var posts []*models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Keys iterate lexically, so ordering is done after collection.
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// UpdateFields replaces the editable fields of a post inside a single
// transaction. The stored cover is kept unless newCover is non-empty, and the
// read-merge-write is atomic against concurrent updates.
func (r *BadgerPostRepository) UpdateFields(id int, fields PostFields, newCover string) (*models.Post, error) {
	var post models.Post

	err := r.db.Update(func(txn *badger.Txn) error {
		if err := getPost(txn, id, &post); err != nil {
			return err
		}

		post.Title = fields.Title
		post.Summary = fields.Summary
		post.Content = fields.Content
		if newCover != "" {
			post.Cover = newCover
		}

		data, err := marshalEntity(&post)
		if err != nil {
			return err
		}
		return txn.Set(idKey(PostKeyPrefix, id), data)
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// DeleteReturning removes a post and returns the deleted record
func (r *BadgerPostRepository) DeleteReturning(id int) (*models.Post, error) {
	var post models.Post

	err := r.db.Update(func(txn *badger.Txn) error {
		if err := getPost(txn, id, &post); err != nil {
			return err
		}
		return txn.Delete(idKey(PostKeyPrefix, id))
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

func getPost(txn *badger.Txn, id int, post *models.Post) error {
	item, err := txn.Get(idKey(PostKeyPrefix, id))
	if err == badger.ErrKeyNotFound {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return item.Value(func(val []byte) error {
		return unmarshalEntity(val, post)
	})
}
