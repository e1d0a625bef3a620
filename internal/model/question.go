package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OptionKeys are the only valid answer keys for a question.
var OptionKeys = []string{"a", "b", "c", "d", "e"}

type Question struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ImageURL      *string        `json:"image_url,omitempty"`
	OptionA       string         `json:"option_a" gorm:"not null"`
	OptionB       string         `json:"option_b" gorm:"not null"`
	OptionC       string         `json:"option_c" gorm:"not null"`
	OptionD       string         `json:"option_d" gorm:"not null"`
	OptionE       string         `json:"option_e" gorm:"not null"`
	CorrectAnswer string         `json:"correct_answer" gorm:"not null"` // one of "a".."e"
	Difficulty    int            `json:"difficulty" gorm:"not null"`     // 1..10
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// Options returns the five answer options keyed "a".."e".
func (q *Question) Options() map[string]string {
	return map[string]string{
		"a": q.OptionA,
		"b": q.OptionB,
		"c": q.OptionC,
		"d": q.OptionD,
		"e": q.OptionE,
	}
}

// IsValidOptionKey reports whether key is one of "a".."e".
func IsValidOptionKey(key string) bool {
	for _, k := range OptionKeys {
		if key == k {
			return true
		}
	}
	return false
}
