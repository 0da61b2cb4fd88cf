package repositories

import (
	"gorm.io/gorm"
	"placeholder/internal/models/request_models"
)

// paginate applies page/pageSize when the request asks for it and returns
// every row otherwise.
func paginate(list request_models.ListRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !list.Paginated() {
			return db
		}
		offset := (list.Page - 1) * list.PageSize
		return db.Offset(offset).Limit(list.PageSize)
	}
}

func oldestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("id ASC")
}
