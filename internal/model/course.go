package model

import "time"

type CourseStatus string

const (
	CourseDraft     CourseStatus = "DRAFT"
	CoursePublished CourseStatus = "PUBLISHED"
	CourseArchived  CourseStatus = "ARCHIVED"
)

type Course struct {
	UUIDBase
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `gorm:"type:text;not null" json:"description"`
	Status      CourseStatus `gorm:"size:20;not null;default:DRAFT;index" json:"status"`
	AuthorID    string       `gorm:"type:varchar(36);index;not null" json:"authorId"`
	Author      *User        `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Lessons     []Lesson     `gorm:"foreignKey:CourseID" json:"lessons,omitempty"`
	Resources   []Resource   `gorm:"foreignKey:CourseID" json:"resources,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

type Lesson struct {
	UUIDBase
	CourseID    string `gorm:"type:varchar(36);index;not null" json:"courseId"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Content     string `gorm:"type:text" json:"content,omitempty"`
	VideoURL    string `gorm:"size:1024" json:"videoUrl,omitempty"`
	Order       int    `gorm:"column:sort_order;not null;default:0" json:"order"`
}

func (Lesson) TableName() string {
	return "lessons"
}

type Enrollment struct {
	UUIDBase
	UserID       string     `gorm:"type:varchar(36);uniqueIndex:idx_enrollment_user_course;not null" json:"userId"`
	CourseID     string     `gorm:"type:varchar(36);uniqueIndex:idx_enrollment_user_course;index;not null" json:"courseId"`
	Progress     int        `gorm:"not null;default:0" json:"progress"`
	LastAccessed *time.Time `json:"lastAccessed"`
	Course       *Course    `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// LessonProgress exists once a user has completed a lesson.
type LessonProgress struct {
	UUIDBase
	UserID   string `gorm:"type:varchar(36);uniqueIndex:idx_progress_user_lesson;not null" json:"userId"`
	LessonID string `gorm:"type:varchar(36);uniqueIndex:idx_progress_user_lesson;index;not null" json:"lessonId"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}

type Certification struct {
	UUIDBase
	UserID          string    `gorm:"type:varchar(36);uniqueIndex:idx_cert_user_course;not null" json:"userId"`
	CourseID        string    `gorm:"type:varchar(36);uniqueIndex:idx_cert_user_course;index;not null" json:"courseId"`
	CertificateCode string    `gorm:"size:64;not null" json:"certificateCode"`
	IssuedAt        time.Time `gorm:"not null" json:"issuedAt"`
	Course          *Course   `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (Certification) TableName() string {
	return "certifications"
}
