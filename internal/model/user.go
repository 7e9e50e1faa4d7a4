package model

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// swagger:model User
type User struct {
	UUIDBase
	Name         string   `gorm:"size:100;not null" json:"name"`
	Email        string   `gorm:"size:191;uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"size:100;not null" json:"-"`
	Role         UserRole `gorm:"size:10;not null;default:USER" json:"role"`
	Profile      *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// CanManage is the owner-or-admin rule: the user owns the resource or is an
// administrator.
func (u *User) CanManage(ownerID string) bool {
	if u == nil {
		return false
	}
	return u.ID == ownerID || u.IsAdmin()
}

// UserSummary is the public projection embedded in other payloads.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

type Profile struct {
	UUIDBase
	UserID    string `gorm:"type:varchar(36);uniqueIndex;not null" json:"userId"`
	Bio       string `gorm:"size:500" json:"bio"`
	AvatarURL string `gorm:"type:text" json:"avatarUrl"`
}

func (Profile) TableName() string {
	return "profiles"
}
