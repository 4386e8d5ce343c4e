package dto

import (
	"strings"
	"time"

	"eduadmin/backend/models"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type BatchRequest struct {
	CourseID  uint      `json:"courseId" validate:"required"`
	Name      string    `json:"name" validate:"required,max=120"`
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required,gtefield=StartDate"`
	Capacity  int       `json:"capacity" validate:"min=1"`
}

func (r BatchRequest) ApplyTo(b *models.Batch) {
	b.CourseID = r.CourseID
	b.Name = strings.TrimSpace(r.Name)
	b.StartDate = r.StartDate.UTC()
	b.EndDate = r.EndDate.UTC()
	b.Capacity = r.Capacity
}

type EnrollRequest struct {
	UserID uint `json:"userId" validate:"required"`
}

type UniversityRequest struct {
	TPOName     string `json:"tpoName" validate:"required"`
	TPOEmail    string `json:"tpoEmail" validate:"required,email"`
	TPOPhone    string `json:"tpoPhone" validate:"omitempty,min=7,max=15"`
	CollegeName string `json:"collegeName" validate:"required"`
	Coins       int    `json:"coins" validate:"gte=0"`
}

func (r UniversityRequest) ApplyTo(u *models.University) {
	u.TPOName = strings.TrimSpace(r.TPOName)
	u.TPOEmail = strings.ToLower(strings.TrimSpace(r.TPOEmail))
	u.TPOPhone = strings.TrimSpace(r.TPOPhone)
	u.CollegeName = strings.TrimSpace(r.CollegeName)
	u.Coins = r.Coins
}

type CoinsRequest struct {
	Amount int `json:"amount" validate:"min=1"`
}

// AllotCourseRequest gives a university a course, charging Cost coins.
type AllotCourseRequest struct {
	CourseID uint `json:"courseId" validate:"required"`
	Cost     int  `json:"cost" validate:"gte=0"`
}

type JobRequest struct {
	Kind           string     `json:"kind" validate:"required,oneof=hm freelance"`
	Position       string     `json:"position" validate:"required"`
	Description    string     `json:"description"`
	CompanyName    string     `json:"companyName" validate:"required"`
	CompanyLogo    string     `json:"companyLogo"`
	CompanyWebsite string     `json:"companyWebsite" validate:"omitempty,url"`
	AboutCompany   string     `json:"aboutCompany"`
	Location       string     `json:"location"`
	Openings       int        `json:"openings" validate:"gte=0"`
	SalaryMin      int        `json:"salaryMin" validate:"gte=0"`
	SalaryMax      int        `json:"salaryMax" validate:"gtefield=SalaryMin"`
	Fresher        bool       `json:"fresher"`
	ExperienceMin  int        `json:"experienceMin" validate:"gte=0"`
	ExperienceMax  int        `json:"experienceMax" validate:"gtefield=ExperienceMin"`
	KeySkills      []string   `json:"keySkills" validate:"dive,required"`
	WorkMode       string     `json:"workMode" validate:"required,oneof=remote onsite hybrid"`
	InterviewMode  string     `json:"interviewMode" validate:"required,oneof=online offline"`
	PublishFrom    *time.Time `json:"publishFrom"`
	PublishTill    *time.Time `json:"publishTill"`
}

func (r JobRequest) ApplyTo(j *models.JobPosting) {
	j.Kind = r.Kind
	j.Position = strings.TrimSpace(r.Position)
	j.Description = r.Description
	j.CompanyName = strings.TrimSpace(r.CompanyName)
	j.CompanyLogo = r.CompanyLogo
	j.CompanyWebsite = r.CompanyWebsite
	j.AboutCompany = r.AboutCompany
	j.Location = r.Location
	j.Openings = r.Openings
	j.SalaryMin = r.SalaryMin
	j.SalaryMax = r.SalaryMax
	j.Fresher = r.Fresher
	// freshers have no experience band
	if r.Fresher {
		j.ExperienceMin, j.ExperienceMax = 0, 0
	} else {
		j.ExperienceMin, j.ExperienceMax = r.ExperienceMin, r.ExperienceMax
	}
	j.KeySkills = nonNil(r.KeySkills)
	j.WorkMode = r.WorkMode
	j.InterviewMode = r.InterviewMode
	j.PublishFrom = r.PublishFrom
	j.PublishTill = r.PublishTill
}

type UserUpdateRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Role         string `json:"role" validate:"omitempty,oneof=admin student tpo"`
	IsBlocked    *bool  `json:"isBlocked"`
	UniversityID *uint  `json:"universityId"`
}

type MediaRequest struct {
	Title string `json:"title"`
	URL   string `json:"url" validate:"required,url"`
	Type  string `json:"type" validate:"required,oneof=video notes assignment project_infoPdf image"`
}

type InstructorRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`
}

type EnquiryRequest struct {
	Name           string         `json:"name"`
	Email          string         `json:"email" validate:"omitempty,email"`
	Phone          string         `json:"phone"`
	CourseInterest string         `json:"courseInterest"`
	Source         string         `json:"source"`
	Attributes     map[string]any `json:"attributes"`
}

type EnquiryImport struct {
	Enquiries []EnquiryRequest `json:"enquiries" validate:"required,min=1,dive"`
}
