package db_models

import "github.com/google/uuid"

type Account struct {
	BaseModel
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	Name         string `gorm:"size:255;not null"`
	Username     string `gorm:"size:255;not null"`
	Phone        string `gorm:"size:20"`
	Website      string `gorm:"size:255"`
	PasswordHash string `gorm:"not null"`

	AddressID *uuid.UUID `gorm:"type:uuid"`
	Address   *Address   `gorm:"foreignKey:AddressID;constraint:OnDelete:SET NULL"`
	CompanyID *uuid.UUID `gorm:"type:uuid"`
	Company   *Company   `gorm:"foreignKey:CompanyID;constraint:OnDelete:SET NULL"`
}
