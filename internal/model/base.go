package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UUIDBase is embedded by every entity. Rows are hard-deleted so that the
// composite unique indexes on edge tables never collide with tombstones.
type UUIDBase struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *UUIDBase) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}

// AllModels lists every table managed by AutoMigrate, parents first.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Profile{},
		&Course{},
		&Lesson{},
		&Resource{},
		&Enrollment{},
		&LessonProgress{},
		&Certification{},
		&Post{},
		&Comment{},
		&PostLike{},
		&Follow{},
	}
}
