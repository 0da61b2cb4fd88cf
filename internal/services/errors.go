package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"placeholder/pkg/utils"
)

func dbError(err error) error {
	return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
}

// uniqueViolation maps a unique index race lost at insert time to the same
// field error the pre-check would have produced.
func uniqueViolation(err error, field, message string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.NewValidationError(field, message)
	}
	return dbError(err)
}

func objectDoesNotExist(raw string) string {
	return fmt.Sprintf("Invalid pk %q - object does not exist.", raw)
}
