package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavedRecipe marks a catalog recipe as saved by a user. A user saves a
// slug at most once.
type SavedRecipe struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"-"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_saved_user_slug" json:"-"`
	Slug      string    `gorm:"size:120;not null;uniqueIndex:idx_saved_user_slug" json:"slug"`
	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
}

func (SavedRecipe) TableName() string {
	return "saved_recipes"
}

func (s *SavedRecipe) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
