package models

import (
	"time"
)

// Question is an asked question with its vote and reputation counters.
// AskedByID is cleared, not cascaded, when the asking profile goes away;
// the question itself persists.
type Question struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Body       string    `gorm:"not null" json:"question"`
	AskedByID  *uint     `json:"asked_by_id"`
	AskedBy    *Profile  `gorm:"foreignKey:AskedByID;constraint:OnDelete:SET NULL" json:"asked_by,omitempty"`
	UpVote     int       `gorm:"not null;default:0" json:"up_vote"`
	DownVote   int       `gorm:"not null;default:0" json:"down_vote"`
	Reputation int       `gorm:"not null;default:0" json:"reputation"`
	Tags       []Tag     `gorm:"many2many:question_tags" json:"tags"`
	Answers    []Answer  `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
