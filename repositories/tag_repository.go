package repositories

import (
	"errors"

	"go-blog-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepository interface {
	UpsertByName(tx *gorm.DB, name string) (*models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// UpsertByName resolves a tag by name, creating it if absent. Matching is
// case-insensitive while the stored spelling is the one first submitted.
// Runs on the caller's transaction so post creation stays atomic.
func (r *tagRepository) UpsertByName(tx *gorm.DB, name string) (*models.Tag, error) {
	var tag models.Tag
	err := tx.Where("LOWER(name) = LOWER(?)", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Conflicts can come from the plain name index or the LOWER(name) one
	// (a concurrent "Go" vs "go" insert), so no conflict target is named.
	tag = models.Tag{Name: name}
	err = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&tag).Error
	if err != nil {
		return nil, err
	}
	if tag.ID == 0 {
		// Lost a concurrent insert race; the winner's row is the tag.
		if err := tx.Where("LOWER(name) = LOWER(?)", name).First(&tag).Error; err != nil {
			return nil, err
		}
	}
	return &tag, nil
}
