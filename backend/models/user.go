package models

import "time"

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
	RoleTPO     = "tpo"
)

type User struct {
	Base
	Name         string     `json:"name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string     `json:"phone"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         string     `gorm:"default:student;index" json:"role"` // admin, student, tpo
	IsBlocked    bool       `gorm:"default:false" json:"isBlocked"`
	UniversityID *uint      `gorm:"index" json:"universityId,omitempty"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

type LoginHistory struct {
	Base
	UserID    uint      `gorm:"index"`
	LoginTime time.Time
	IP        string
}

type Instructor struct {
	Base
	Name      string `gorm:"not null" json:"name"`
	Email     string `json:"email"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`
}

const (
	MediaTypeVideo      = "video"
	MediaTypeNotes      = "notes"
	MediaTypeAssignment = "assignment"
	MediaTypeProjectPDF = "project_infoPdf"
	MediaTypeImage      = "image"
)

// Media is a file already uploaded to object storage, listed by the picker.
type Media struct {
	Base
	Title string `json:"title"`
	URL   string `gorm:"not null" json:"url"`
	Type  string `gorm:"index" json:"type"`
}
