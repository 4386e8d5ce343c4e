package models

import (
	"math"
	"time"

	"eduadmin/backend/curriculum"

	"gorm.io/datatypes"
)

type Pricing struct {
	BasePrice       float64 `json:"basePrice"`
	DiscountPercent float64 `json:"discountPercent"`
	DiscountedPrice float64 `json:"discountedPrice"`
}

// Derive recomputes DiscountedPrice from the base price and discount.
func (p *Pricing) Derive() {
	v := p.BasePrice * (100 - p.DiscountPercent) / 100
	p.DiscountedPrice = math.Round(v*100) / 100
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Review struct {
	Name    string `json:"name"`
	Image   string `json:"image"`
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	Company string `json:"company"`
}

type HiringCompany struct {
	Name      string `json:"name"`
	LogoURL   string `json:"logoUrl"`
	SalaryMin int    `json:"salaryMin"`
	SalaryMax int    `json:"salaryMax"`
}

// Offering is what courses and internships have in common.
type Offering struct {
	Title           string                                  `gorm:"not null" json:"title"`
	Description     string                                  `json:"description"`
	Category        string                                  `gorm:"index" json:"category"`
	Subcategory     string                                  `json:"subcategory"`
	Level           string                                  `json:"level"` // beginner, intermediate, advanced
	ThumbnailURL    string                                  `json:"thumbnailUrl"`
	Pricing         Pricing                                 `gorm:"embedded" json:"pricing"`
	InstructorID    *uint                                   `json:"instructorId,omitempty"`
	Curriculum      datatypes.JSONType[curriculum.Outline] `json:"curriculum"`
	FAQs            datatypes.JSONSlice[FAQ]                `json:"faqs"`
	Outcomes        datatypes.JSONSlice[string]             `json:"outcomes"`
	Reviews         datatypes.JSONSlice[Review]             `json:"reviews"`
	HiringCompanies datatypes.JSONSlice[HiringCompany]      `json:"hiringCompanies"`
	IsActive        bool                                    `gorm:"default:false" json:"isActive"`
	StartDate       *time.Time                              `json:"startDate,omitempty"`
}

func (o *Offering) Outline() *curriculum.Outline {
	out := o.Curriculum.Data()
	return &out
}

// SetOutline normalizes out in place and stores it.
func (o *Offering) SetOutline(out *curriculum.Outline) {
	out.Normalize()
	o.Curriculum = datatypes.NewJSONType(*out)
}

type Course struct {
	Base
	Offering
}

const (
	ModeOnline  = "online"
	ModeOffline = "offline"
	ModeHybrid  = "hybrid"
)

type Internship struct {
	Base
	Offering
	Period string `json:"period"` // e.g. "3 months"
	Mode   string `json:"mode"`
}

type Batch struct {
	Base
	CourseID  uint      `gorm:"index;not null" json:"courseId"`
	Name      string    `gorm:"not null" json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Capacity  int       `json:"capacity"`
	Users     []User    `gorm:"many2many:batch_users" json:"users,omitempty"`
}
