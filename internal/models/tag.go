package models

import (
	"time"
)

// Tag is a shared topic label. The slug is derived from the name at creation
// and is unique; tags have no single owner.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
