package group

import (
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// Group is a community posts may optionally belong to.
type Group struct {
	ID          uuid.UUID `gorm:"primary_key;type:char(36)"`
	Title       string    `gorm:"type:varchar(200);not null" validate:"required,max=200"`
	Slug        string    `gorm:"type:varchar(50);uniqueIndex;not null" validate:"required,max=50,slug"`
	Description string    `gorm:"type:text;not null" validate:"required"`
}

func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}
