package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Geo is owned by an Address; it keeps no reference back to it.
type Geo struct {
	BaseModel
	Lat decimal.Decimal `gorm:"type:decimal(12,9);not null"`
	Lng decimal.Decimal `gorm:"type:decimal(12,9);not null"`
}

type Address struct {
	BaseModel
	Street  string `gorm:"size:255;not null"`
	Suite   string `gorm:"size:255"`
	City    string `gorm:"size:100;not null"`
	Zipcode string `gorm:"size:20;not null"`

	GeoID *uuid.UUID `gorm:"type:uuid"`
	Geo   *Geo       `gorm:"foreignKey:GeoID;constraint:OnDelete:SET NULL"`
}

type Company struct {
	BaseModel
	Name string `gorm:"size:255;not null;uniqueIndex"`
}
