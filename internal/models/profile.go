package models

import (
	"time"
)

// Profile is the one-to-one public extension of a User: bio fields plus the
// reputation counter. Reputation only ever moves through explicit increments
// (asking a question, receiving an answer up-vote).
type Profile struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User            User      `gorm:"foreignKey:UserID" json:"user"`
	Location        string    `json:"location"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `gorm:"not null" json:"description"`
	PersonalWebsite string    `json:"personal_website"`
	TwitterUsername string    `json:"twitter_username"`
	GithubUsername  string    `json:"github_username"`
	AvatarPath      string    `json:"avatar_path"`
	Reputation      int       `gorm:"not null;default:0" json:"reputation"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
