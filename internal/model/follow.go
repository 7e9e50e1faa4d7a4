package model

import "time"

// Follow is a directed edge: FollowerID follows FollowingID.
type Follow struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	FollowerID  string    `gorm:"type:varchar(36);uniqueIndex:idx_follow_pair;not null" json:"followerId"`
	FollowingID string    `gorm:"type:varchar(36);uniqueIndex:idx_follow_pair;index;not null" json:"followingId"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	Follower    *User     `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Following   *User     `gorm:"foreignKey:FollowingID" json:"following,omitempty"`
}

func (Follow) TableName() string {
	return "follows"
}
