package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	JobKindHM        = "hm" // hiring-manager job
	JobKindFreelance = "freelance"
)

type JobPosting struct {
	Base
	Kind           string                      `gorm:"index;not null" json:"kind"`
	Position       string                      `gorm:"not null" json:"position"`
	Description    string                      `json:"description"`
	CompanyName    string                      `gorm:"not null" json:"companyName"`
	CompanyLogo    string                      `json:"companyLogo"`
	CompanyWebsite string                      `json:"companyWebsite"`
	AboutCompany   string                      `json:"aboutCompany"`
	Location       string                      `json:"location"`
	Openings       int                         `json:"openings"`
	SalaryMin      int                         `json:"salaryMin"`
	SalaryMax      int                         `json:"salaryMax"`
	Fresher        bool                        `json:"fresher"`
	ExperienceMin  int                         `json:"experienceMin"`
	ExperienceMax  int                         `json:"experienceMax"`
	KeySkills      datatypes.JSONSlice[string] `json:"keySkills"`
	WorkMode       string                      `json:"workMode"`      // remote, onsite, hybrid
	InterviewMode  string                      `json:"interviewMode"` // online, offline
	PublishFrom    *time.Time                  `json:"publishFrom,omitempty"`
	PublishTill    *time.Time                  `json:"publishTill,omitempty"`
}

type Enquiry struct {
	Base
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	CourseInterest string            `json:"courseInterest"`
	Source         string            `json:"source"`
	Attributes     datatypes.JSONMap `json:"attributes"`
}
