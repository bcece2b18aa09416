package models

import (
	"time"
)

type Post struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Published bool      `json:"published"`
	AuthorID  uint      `json:"authorId" gorm:"not null"`
	Author    User      `json:"author" gorm:"foreignKey:AuthorID"`
	Tags      []PostTag `json:"tags" gorm:"foreignKey:PostID"`
	CreatedAt time.Time `json:"createdAt"`
}
