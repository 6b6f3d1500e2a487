package comment

import (
	"time"

	"yatube/internal/core/post"
	"yatube/internal/core/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID       uuid.UUID `gorm:"primary_key;type:char(36)"`
	PostID   uuid.UUID `gorm:"type:char(36);not null;index"`
	Post     post.Post `gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID uuid.UUID `gorm:"type:char(36);not null"`
	Author   user.User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text     string    `gorm:"type:text;not null"`
	Created  time.Time `gorm:"autoCreateTime"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}
