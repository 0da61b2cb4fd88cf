package db_models

import "github.com/google/uuid"

type ToDo struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Account   Account   `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Title     string    `gorm:"size:255;not null"`
	Completed bool      `gorm:"not null"`
}
