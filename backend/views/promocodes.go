package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"eduadmin/backend/client"
	"eduadmin/backend/curriculum"
	"eduadmin/backend/dto"
	"eduadmin/backend/listing"
	"eduadmin/backend/models"
	"eduadmin/backend/validation"
)

// PromoCodeForm holds the inputs exactly as typed. ValidTill uses the
// datetime-local layout (2006-01-02T15:04).
type PromoCodeForm struct {
	Promocode          string
	ApplicableTo       string
	ValidTill          string
	DiscountPercentage string
	Quantity           string
	ForCollege         string
}

// PromoCodeSubmission is what a valid form hands on: ValidTill as RFC3339,
// numbers still as the typed strings.
type PromoCodeSubmission struct {
	Promocode          string `json:"promocode"`
	ApplicableTo       string `json:"applicableTo"`
	ValidTill          string `json:"validTill"`
	DiscountPercentage string `json:"discountPercentage"`
	Quantity           string `json:"quantity"`
	ForCollege         string `json:"forCollege"`
}

func atoiField(field, v string, errs *[]validation.FieldError) int {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, validation.FieldError{Field: field, Error: field + " must be a number"})
	}
	return n
}

// Request converts the submission into the API body.
func (s PromoCodeSubmission) Request() (dto.PromoCodeRequest, error) {
	var errs []validation.FieldError
	req := dto.PromoCodeRequest{
		Promocode:          strings.TrimSpace(s.Promocode),
		ApplicableTo:       s.ApplicableTo,
		DiscountPercentage: atoiField("discountPercentage", s.DiscountPercentage, &errs),
		Quantity:           atoiField("quantity", s.Quantity, &errs),
		ForCollege:         strings.TrimSpace(s.ForCollege),
	}
	if s.ValidTill != "" {
		t, err := time.Parse(time.RFC3339, s.ValidTill)
		if err != nil {
			errs = append(errs, validation.FieldError{Field: "validTill", Error: "validTill must be a date-time"})
		}
		req.ValidTill = t
	}
	if len(errs) > 0 {
		return req, &validation.ValidationError{Fields: errs}
	}
	return req, validation.Struct(req)
}

// Submit validates the form and calls submit once when it passes. Invalid
// input raises a toast and submit is never called.
func (f PromoCodeForm) Submit(ctx context.Context, n Notifier, submit func(context.Context, PromoCodeSubmission) error) error {
	validTill, err := curriculum.ParseDisplayTime(f.ValidTill)
	if err != nil {
		ve := &validation.ValidationError{Fields: []validation.FieldError{{Field: "validTill", Error: "validTill must be a date-time"}}}
		n.Error(Message(ve))
		return ve
	}
	sub := PromoCodeSubmission{
		Promocode:          f.Promocode,
		ApplicableTo:       f.ApplicableTo,
		ValidTill:          validTill,
		DiscountPercentage: f.DiscountPercentage,
		Quantity:           f.Quantity,
		ForCollege:         f.ForCollege,
	}
	if _, err := sub.Request(); err != nil {
		n.Error(Message(err))
		return err
	}

	if err := submit(ctx, sub); err != nil {
		n.Error(Message(err))
		return err
	}
	n.Success("Promo code saved")
	return nil
}

// PromoCodeFormFrom fills the update form from a stored code.
func PromoCodeFormFrom(p models.PromoCode) PromoCodeForm {
	return PromoCodeForm{
		Promocode:          p.Promocode,
		ApplicableTo:       p.ApplicableTo,
		ValidTill:          curriculum.DisplayTime(p.ValidTill.UTC().Format(time.RFC3339)),
		DiscountPercentage: strconv.Itoa(p.DiscountPercentage),
		Quantity:           strconv.Itoa(p.Quantity),
		ForCollege:         p.ForCollege,
	}
}

// PromoCodeAPI is the part of *client.Client the promo code screen uses.
type PromoCodeAPI interface {
	PromoCodes(ctx context.Context, q client.Query) (listing.Page[models.PromoCode], error)
	CreatePromoCode(ctx context.Context, req dto.PromoCodeRequest) (models.PromoCode, error)
	UpdatePromoCode(ctx context.Context, id uint, req dto.PromoCodeRequest) (models.PromoCode, error)
	DeletePromoCode(ctx context.Context, id uint) error
}

// PromoCodesScreen is the promo code table with its add, edit and delete
// actions.
type PromoCodesScreen struct {
	API      PromoCodeAPI
	List     *ListView[models.PromoCode]
	Notifier Notifier
	Confirm  Confirmer
}

func promoFields(p models.PromoCode) []string {
	return []string{p.Promocode, p.ApplicableTo, p.ForCollege}
}

func NewPromoCodesScreen(api PromoCodeAPI, n Notifier, c Confirmer) *PromoCodesScreen {
	return &PromoCodesScreen{
		API: api,
		List: NewListView(promoFields, func(p models.PromoCode, applicableTo string) bool {
			return p.ApplicableTo == applicableTo
		}, n),
		Notifier: n,
		Confirm:  c,
	}
}

func (s *PromoCodesScreen) Refresh(ctx context.Context) error {
	return s.List.Load(ctx, func(ctx context.Context) ([]models.PromoCode, error) {
		return client.FetchAll(ctx, func(ctx context.Context, page int) (listing.Page[models.PromoCode], error) {
			return s.API.PromoCodes(ctx, client.Query{Page: page, PageSize: listing.MaxPageSize})
		})
	})
}

// Create submits the add form, POSTs it and reloads the table.
func (s *PromoCodesScreen) Create(ctx context.Context, form PromoCodeForm) error {
	err := form.Submit(ctx, s.Notifier, func(ctx context.Context, sub PromoCodeSubmission) error {
		req, err := sub.Request()
		if err != nil {
			return err
		}
		_, err = s.API.CreatePromoCode(ctx, req)
		return err
	})
	if err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// Update keeps the stored code; the form's Promocode is ignored.
func (s *PromoCodesScreen) Update(ctx context.Context, current models.PromoCode, form PromoCodeForm) error {
	form.Promocode = current.Promocode
	err := form.Submit(ctx, s.Notifier, func(ctx context.Context, sub PromoCodeSubmission) error {
		req, err := sub.Request()
		if err != nil {
			return err
		}
		_, err = s.API.UpdatePromoCode(ctx, current.ID, req)
		return err
	})
	if err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *PromoCodesScreen) Delete(ctx context.Context, p models.PromoCode) (bool, error) {
	return ConfirmDelete(ctx, s.Confirm, s.Notifier,
		fmt.Sprintf("Delete promo code %s?", p.Promocode),
		func(ctx context.Context) error { return s.API.DeletePromoCode(ctx, p.ID) },
		s.Refresh)
}
