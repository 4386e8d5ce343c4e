package dto

import (
	"strings"
	"time"

	"eduadmin/backend/curriculum"
	"eduadmin/backend/models"
)

type PricingRequest struct {
	BasePrice       float64 `json:"basePrice" validate:"gte=0"`
	DiscountPercent float64 `json:"discountPercent" validate:"gte=0,lte=100"`
}

type HiringCompanyRequest struct {
	Name      string `json:"name" validate:"required"`
	LogoURL   string `json:"logoUrl"`
	SalaryMin int    `json:"salaryMin" validate:"gte=0"`
	SalaryMax int    `json:"salaryMax" validate:"gtefield=SalaryMin"`
}

// OfferingRequest is the course form; internships add period and mode.
type OfferingRequest struct {
	Title           string                 `json:"title" validate:"required,max=200"`
	Description     string                 `json:"description"`
	Category        string                 `json:"category" validate:"required"`
	Subcategory     string                 `json:"subcategory"`
	Level           string                 `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	ThumbnailURL    string                 `json:"thumbnailUrl"`
	Pricing         PricingRequest         `json:"pricing"`
	InstructorID    *uint                  `json:"instructorId"`
	Curriculum      *curriculum.Outline    `json:"curriculum"`
	FAQs            []models.FAQ           `json:"faqs"`
	Outcomes        []string               `json:"outcomes"`
	Reviews         []models.Review        `json:"reviews"`
	HiringCompanies []HiringCompanyRequest `json:"hiringCompanies" validate:"dive"`
	IsActive        bool                   `json:"isActive"`
	StartDate       *time.Time             `json:"startDate"`
}

type InternshipRequest struct {
	OfferingRequest
	Period string `json:"period" validate:"required"`
	Mode   string `json:"mode" validate:"required,oneof=online offline hybrid"`
}

// ApplyTo writes the form into o. A missing curriculum keeps the stored one,
// or the default skeleton for new records.
func (r OfferingRequest) ApplyTo(o *models.Offering) {
	o.Title = strings.TrimSpace(r.Title)
	o.Description = r.Description
	o.Category = r.Category
	o.Subcategory = r.Subcategory
	o.Level = r.Level
	o.ThumbnailURL = r.ThumbnailURL
	o.Pricing = models.Pricing{BasePrice: r.Pricing.BasePrice, DiscountPercent: r.Pricing.DiscountPercent}
	o.Pricing.Derive()
	o.InstructorID = r.InstructorID
	o.IsActive = r.IsActive
	o.StartDate = r.StartDate

	switch {
	case r.Curriculum != nil:
		o.SetOutline(r.Curriculum)
	case len(o.Outline().Units) == 0:
		skeleton := curriculum.NewOutline()
		o.SetOutline(&skeleton)
	}

	o.FAQs = nonNil(r.FAQs)
	o.Outcomes = nonNil(r.Outcomes)
	o.Reviews = nonNil(r.Reviews)
	companies := make([]models.HiringCompany, 0, len(r.HiringCompanies))
	for _, c := range r.HiringCompanies {
		companies = append(companies, models.HiringCompany(c))
	}
	o.HiringCompanies = companies
}

func (r InternshipRequest) ApplyTo(in *models.Internship) {
	r.OfferingRequest.ApplyTo(&in.Offering)
	in.Period = r.Period
	in.Mode = r.Mode
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// CurriculumCommands is the body of the builder endpoint.
type CurriculumCommands struct {
	Commands []curriculum.Command `json:"commands" validate:"required,min=1,dive"`
}

type DisplayRequest struct {
	IsActive bool `json:"isActive"`
}
