package model

type ResourceType string

const (
	ResourceVideo ResourceType = "VIDEO"
	ResourcePDF   ResourceType = "PDF"
	ResourceLink  ResourceType = "LINK"
)

// Resource is supporting material attached to a course.
// swagger:model Resource
type Resource struct {
	UUIDBase
	CourseID     string       `gorm:"type:varchar(36);index;not null" json:"courseId"`
	Title        string       `gorm:"size:255;not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description,omitempty"`
	Type         ResourceType `gorm:"size:10;not null;default:LINK" json:"type"`
	URL          string       `gorm:"size:1024;not null" json:"url"`
	Size         int64        `gorm:"default:0" json:"size,omitempty"`
	Duration     int          `gorm:"default:0" json:"durationSeconds,omitempty"`
	ThumbnailURL string       `gorm:"size:1024" json:"thumbnailUrl,omitempty"`
	// object keys in the storage provider, empty for plain links
	StorageKey   string       `gorm:"size:512" json:"-"`
	ThumbnailKey string       `gorm:"size:512" json:"-"`
	Course       *Course      `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (Resource) TableName() string {
	return "resources"
}
