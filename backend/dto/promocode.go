// Package dto holds the request bodies accepted by the admin API, with their
// validation rules.
package dto

import (
	"strings"
	"time"

	"eduadmin/backend/models"
)

type PromoCodeRequest struct {
	Promocode          string    `json:"promocode" validate:"required,max=32"`
	ApplicableTo       string    `json:"applicableTo" validate:"required,oneof=courses internships both"`
	DiscountPercentage int       `json:"discountPercentage" validate:"min=1,max=100"`
	Quantity           int       `json:"quantity" validate:"min=1"`
	ForCollege         string    `json:"forCollege" validate:"max=200"`
	ValidTill          time.Time `json:"validTill" validate:"required"`
}

// ToModel trims and upper-cases the code, so codes are unique and looked up
// case-insensitively.
func (r PromoCodeRequest) ToModel() models.PromoCode {
	return models.PromoCode{
		Promocode:          strings.ToUpper(strings.TrimSpace(r.Promocode)),
		ApplicableTo:       r.ApplicableTo,
		DiscountPercentage: r.DiscountPercentage,
		Quantity:           r.Quantity,
		ForCollege:         strings.TrimSpace(r.ForCollege),
		ValidTill:          r.ValidTill.UTC(),
	}
}

// ApplyTo copies the editable fields. The code itself never changes after
// creation.
func (r PromoCodeRequest) ApplyTo(p *models.PromoCode) {
	p.ApplicableTo = r.ApplicableTo
	p.DiscountPercentage = r.DiscountPercentage
	p.Quantity = r.Quantity
	p.ForCollege = strings.TrimSpace(r.ForCollege)
	p.ValidTill = r.ValidTill.UTC()
}

// PromoPreviewRequest asks whether a code applies to a purchase.
type PromoPreviewRequest struct {
	Promocode string  `json:"promocode" validate:"required"`
	Kind      string  `json:"kind" validate:"required,oneof=courses internships"`
	College   string  `json:"college"`
	Amount    float64 `json:"amount" validate:"gte=0"`
}

type PromoPreviewResponse struct {
	IsValid  bool    `json:"isValid"`
	Discount float64 `json:"discount,omitempty"`
	Payable  float64 `json:"payable,omitempty"`
	Message  string  `json:"message"`
}
