package models

import (
	"strings"
	"time"
)

const (
	ApplicableCourses     = "courses"
	ApplicableInternships = "internships"
	ApplicableBoth        = "both"
)

type PromoCode struct {
	Base
	Promocode          string    `gorm:"uniqueIndex;not null" json:"promocode"`
	ApplicableTo       string    `gorm:"not null" json:"applicableTo"`
	DiscountPercentage int       `json:"discountPercentage"`
	Quantity           int       `json:"quantity"`
	ForCollege         string    `json:"forCollege"`
	ValidTill          time.Time `json:"validTill"`
}

// Covers reports whether the code may be used for kind ("courses" or
// "internships").
func (p PromoCode) Covers(kind string) bool {
	return p.ApplicableTo == ApplicableBoth || p.ApplicableTo == kind
}

func (p PromoCode) Expired(at time.Time) bool {
	return !p.ValidTill.IsZero() && at.After(p.ValidTill)
}

// AllowsCollege is true for unrestricted codes and for the named college.
func (p PromoCode) AllowsCollege(college string) bool {
	if strings.TrimSpace(p.ForCollege) == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(p.ForCollege), strings.TrimSpace(college))
}
