package post

import (
	"time"

	"yatube/internal/core/group"
	"yatube/internal/core/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// Post is ordered by PubDate, newest first, in every listing.
type Post struct {
	ID       uuid.UUID    `gorm:"primary_key;type:char(36)"`
	Text     string       `gorm:"type:text;not null"`
	PubDate  time.Time    `gorm:"autoCreateTime;index"`
	AuthorID uuid.UUID    `gorm:"type:char(36);not null;index"`
	Author   user.User    `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID  *uuid.UUID   `gorm:"type:char(36);index"`
	Group    *group.Group `gorm:"foreignKey:GroupID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Image    string       `gorm:"type:varchar(255)"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}
