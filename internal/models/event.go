package models

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	gorm.Model

	Title       string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	Date        time.Time `gorm:"not null"`
	Location    string    `gorm:"not null"`
	CreatedByID uint      `gorm:"not null;index"` // immutable once set

	// Relationships
	Creator User    `gorm:"foreignKey:CreatedByID"`
	Media   []Media `gorm:"foreignKey:EventID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
