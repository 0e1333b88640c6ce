package models

import "gorm.io/gorm"

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Media is an uploaded file attached to exactly one event. The binary
// itself lives in the blob store; URL points at it.
type Media struct {
	gorm.Model

	EventID      uint   `gorm:"not null;index"`
	UploadedByID uint   `gorm:"not null;index"`
	URL          string `gorm:"not null"`
	Type         string `gorm:"type:varchar(16);not null"` // "image" or "video"
	Filename     string `gorm:"not null"`

	// Relationships
	Event     Event      `gorm:"foreignKey:EventID"`
	Uploader  User       `gorm:"foreignKey:UploadedByID"`
	Reactions []Reaction `gorm:"foreignKey:MediaID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// TableName pins the table name; gorm's pluralizer mangles "media".
func (Media) TableName() string {
	return "media"
}
