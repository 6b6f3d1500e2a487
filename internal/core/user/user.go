package user

import (
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	Username  string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	FirstName string    `gorm:"type:varchar(150)"`
	LastName  string    `gorm:"type:varchar(150)"`
	Password  string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}
