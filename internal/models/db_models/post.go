package db_models

import "github.com/google/uuid"

type Post struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Account   Account   `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Title     string    `gorm:"size:255;not null"`
	Body      string    `gorm:"type:text;not null"`
}

// Comment.Account is nullable: deleting the author keeps the comment.
type Comment struct {
	BaseModel
	PostID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Post      Post       `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	AccountID *uuid.UUID `gorm:"type:uuid;index"`
	Account   *Account   `gorm:"foreignKey:AccountID;constraint:OnDelete:SET NULL"`
	Body      string     `gorm:"type:text;not null"`
}
