package repositories

import (
	"errors"

	"go-blog-api/models"

	"gorm.io/gorm"
)

type PostRepository interface {
	ListPublished() ([]models.Post, error)
	GetByID(id uint) (*models.Post, error)
	Create(post *models.Post, tagNames []string) error
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	Transaction(fn func(repo PostRepository) error) error
}

type postRepository struct {
	db      *gorm.DB
	tagRepo TagRepository
}

func NewPostRepository(db *gorm.DB, tagRepo TagRepository) PostRepository {
	return &postRepository{db: db, tagRepo: tagRepo}
}

// Transaction runs fn against a repository bound to one transaction, so a
// read-check-mutate sequence sees consistent row state throughout.
func (r *postRepository) Transaction(fn func(repo PostRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&postRepository{db: tx, tagRepo: r.tagRepo})
	})
}

// ListPublished queries the store on every call; nothing is cached.
func (r *postRepository) ListPublished() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("published = ?", true).
		Order("created_at desc").
		Preload("Author").
		Preload("Tags.Tag").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").
		Preload("Tags.Tag").
		First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create upserts the tags and inserts the post with its tag links in one
// transaction; any failure rolls the whole set back.
func (r *postRepository) Create(post *models.Post, tagNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, name := range tagNames {
			tag, err := r.tagRepo.UpsertByName(tx, name)
			if err != nil {
				return err
			}
			post.Tags = append(post.Tags, models.PostTag{TagID: tag.ID})
		}
		return tx.Create(post).Error
	})
}

func (r *postRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	result := r.db.Model(&models.Post{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes the tag links before the post row, in one transaction.
func (r *postRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrNotFound
		}
		return nil
	})
}
