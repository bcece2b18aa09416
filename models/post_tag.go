package models

// PostTag links a post to a tag. A (post, tag) pair exists at most once and
// the rows are removed before their post is deleted.
type PostTag struct {
	ID     uint `json:"-" gorm:"primarykey"`
	PostID uint `json:"-" gorm:"uniqueIndex:idx_post_tag;not null"`
	TagID  uint `json:"-" gorm:"uniqueIndex:idx_post_tag;not null"`
	Tag    Tag  `json:"tag" gorm:"foreignKey:TagID"`
}
