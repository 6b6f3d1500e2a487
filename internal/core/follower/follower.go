package follower

import (
	"time"

	"yatube/internal/core/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// Follow records that User follows Author. At most one row exists per pair.
type Follow struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_user_author"`
	User      user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_user_author;index"`
	Author    user.User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (f *Follow) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}

// Result reports what a follow or unfollow request did.
type Result string

const (
	ResultFollowed         Result = "followed"
	ResultAlreadyFollowing Result = "already_following"
	ResultSelfIgnored      Result = "self_ignored"
	ResultUnfollowed       Result = "unfollowed"
	ResultNotFollowing     Result = "not_following"
)
