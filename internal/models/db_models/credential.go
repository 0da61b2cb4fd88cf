package db_models

import "github.com/google/uuid"

// Credential holds the single live token key of an account. Issuing a new
// token overwrites Key, which invalidates every token signed with the old one.
type Credential struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Account   Account   `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Key       string    `gorm:"size:64;not null;uniqueIndex"`
	IssuedAt  int64     `gorm:"not null"`
}
