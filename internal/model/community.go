package model

import (
	"time"
)

type Post struct {
	UUIDBase
	Title         string     `gorm:"size:255;not null" json:"title"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	AuthorID      string     `gorm:"type:varchar(36);index;not null" json:"authorId"`
	Author        *User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CourseID      *string    `gorm:"type:varchar(36);index" json:"courseId"`
	Course        *Course    `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	MediaURL      string     `gorm:"type:text" json:"mediaUrl,omitempty"`
	MediaType     string     `gorm:"size:50" json:"mediaType,omitempty"`
	EventDate     *time.Time `gorm:"index" json:"eventDate"`
	EventLocation string     `gorm:"size:255" json:"eventLocation,omitempty"`
	ShareCount    int        `gorm:"not null;default:0" json:"shareCount"`
	Comments      []Comment  `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	Likes         []PostLike `gorm:"foreignKey:PostID" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}

// IsEvent reports whether the post is shown on the events calendar.
func (p *Post) IsEvent() bool {
	return p.EventDate != nil
}

type Comment struct {
	UUIDBase
	PostID   string `gorm:"type:varchar(36);index;not null" json:"postId"`
	AuthorID string `gorm:"type:varchar(36);index;not null" json:"authorId"`
	Author   *User  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Content  string `gorm:"type:text;not null" json:"content"`
}

func (Comment) TableName() string {
	return "comments"
}

type PostLike struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    string    `gorm:"type:varchar(36);uniqueIndex:idx_like_user_post;not null" json:"userId"`
	PostID    string    `gorm:"type:varchar(36);uniqueIndex:idx_like_user_post;index;not null" json:"postId"`
}

func (PostLike) TableName() string {
	return "post_likes"
}
