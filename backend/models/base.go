package models

import (
	"time"

	"gorm.io/gorm"
)

// Base replaces gorm.Model so the JSON keys match the dashboard's names.
type Base struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// All lists every model for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&LoginHistory{},
		&Instructor{},
		&Media{},
		&Course{},
		&Internship{},
		&Batch{},
		&University{},
		&PromoCode{},
		&Payment{},
		&JobPosting{},
		&Enquiry{},
	}
}
