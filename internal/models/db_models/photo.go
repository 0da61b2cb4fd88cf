package db_models

import "github.com/google/uuid"

type Album struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Account   Account   `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Title     string    `gorm:"size:255;not null;uniqueIndex"`
}

type Photo struct {
	BaseModel
	AlbumID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Album        Album      `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE"`
	AccountID    *uuid.UUID `gorm:"type:uuid;index"`
	Account      *Account   `gorm:"foreignKey:AccountID;constraint:OnDelete:SET NULL"`
	Title        string     `gorm:"size:255;not null"`
	URL          string     `gorm:"size:200;not null"`
	ThumbnailURL string     `gorm:"size:200;not null"`
}
