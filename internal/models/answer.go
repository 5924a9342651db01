package models

import (
	"time"
)

// Answer belongs to one question and optionally replies to another answer of
// the same question (ParentID forms the reply tree). Accepted is a one-way
// flip; Favourite is a counter driven by a boolean trigger, not a toggle.
type Answer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Body       string    `gorm:"not null" json:"answer"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	ParentID   *uint     `json:"parent_id"`
	Parent     *Answer   `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL" json:"parent,omitempty"`
	AnswerByID *uint     `json:"answer_by_id"`
	AnswerBy   *Profile  `gorm:"foreignKey:AnswerByID;constraint:OnDelete:SET NULL" json:"answer_by,omitempty"`
	UpVote     int       `gorm:"not null;default:0" json:"up_vote"`
	DownVote   int       `gorm:"not null;default:0" json:"down_vote"`
	Accepted   bool      `gorm:"not null;default:false" json:"accepted_or_not"`
	Favourite  int       `gorm:"not null;default:0" json:"favourite"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
