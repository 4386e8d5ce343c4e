package validation_test

import (
	"testing"
	"time"

	"eduadmin/backend/dto"
	"eduadmin/backend/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promo(discount, quantity int) dto.PromoCodeRequest {
	return dto.PromoCodeRequest{
		Promocode:          "SAVE10",
		ApplicableTo:       "courses",
		DiscountPercentage: discount,
		Quantity:           quantity,
		ValidTill:          time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *validation.ValidationError
	require.ErrorAs(t, err, &ve)
	return ve.Map()
}

func TestPromoDiscountBounds(t *testing.T) {
	assert.Contains(t, fields(t, validation.Struct(promo(0, 5))), "discountPercentage")
	assert.NoError(t, validation.Struct(promo(1, 5)))
	assert.NoError(t, validation.Struct(promo(100, 5)))
	assert.Contains(t, fields(t, validation.Struct(promo(101, 5))), "discountPercentage")
}

func TestPromoQuantity(t *testing.T) {
	assert.Contains(t, fields(t, validation.Struct(promo(10, 0))), "quantity")
	assert.NoError(t, validation.Struct(promo(10, 1)))
}

func TestPromoRequiredFields(t *testing.T) {
	m := fields(t, validation.Struct(dto.PromoCodeRequest{DiscountPercentage: 5, Quantity: 1}))
	assert.Equal(t, "promocode is required", m["promocode"])
	assert.Contains(t, m, "applicableTo")
	assert.Contains(t, m, "validTill")

	r := promo(10, 1)
	r.ApplicableTo = "everything"
	assert.Contains(t, fields(t, validation.Struct(r)), "applicableTo")
}

func TestJobSalaryRange(t *testing.T) {
	job := dto.JobRequest{
		Kind:          "hm",
		Position:      "Backend Engineer",
		CompanyName:   "Acme",
		SalaryMin:     300000,
		SalaryMax:     290000,
		WorkMode:      "remote",
		InterviewMode: "online",
	}
	m := fields(t, validation.Struct(job))
	assert.Equal(t, "salaryMax must not be less than salaryMin", m["salaryMax"])

	job.SalaryMax = 300000
	assert.NoError(t, validation.Struct(job))
}

func TestBatchDates(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	b := dto.BatchRequest{CourseID: 1, Name: "June", StartDate: start, EndDate: start.AddDate(0, 0, -1), Capacity: 30}
	assert.Contains(t, fields(t, validation.Struct(b)), "endDate")

	b.EndDate = start.AddDate(0, 2, 0)
	assert.NoError(t, validation.Struct(b))

	b.Capacity = 0
	assert.Contains(t, fields(t, validation.Struct(b)), "capacity")
}

func TestOfferingHiringCompanies(t *testing.T) {
	r := dto.OfferingRequest{
		Title:    "Go for Backend",
		Category: "development",
		Level:    "beginner",
		Pricing:  dto.PricingRequest{BasePrice: 4999, DiscountPercent: 120},
		HiringCompanies: []dto.HiringCompanyRequest{
			{Name: "Acme", SalaryMin: 10, SalaryMax: 5},
		},
	}
	err := validation.Struct(r)
	m := fields(t, err)
	assert.Contains(t, m, "discountPercent")
	assert.Contains(t, m, "salaryMax")
	assert.NotEmpty(t, err.Error())
}
