package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"time"
)

// BaseModel rows are hard-deleted so that foreign-key cascades fire in the database.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt int64     `gorm:"autoCreateTime:nano"`
	UpdatedAt int64     `gorm:"autoUpdateTime:nano"`
}

// Hooks to manage int64 timestamps. Nanoseconds keep insertion order stable
// for rows created within the same second.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().UnixNano()
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().UnixNano()
	return nil
}

// All lists every table in migration order.
func All() []interface{} {
	return []interface{}{
		&Geo{},
		&Address{},
		&Company{},
		&Account{},
		&Credential{},
		&Post{},
		&Comment{},
		&Album{},
		&Photo{},
		&ToDo{},
	}
}
