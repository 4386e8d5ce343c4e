package controllers

import (
	"errors"
	"math"
	"strings"
	"time"

	"eduadmin/backend/config"
	"eduadmin/backend/dto"
	"eduadmin/backend/listing"
	"eduadmin/backend/models"
	"eduadmin/backend/utils"

	"github.com/gofiber/fiber/v2"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

type PromoCodesController struct {
	DB  *gorm.DB
	Cfg *config.Config

	now func() time.Time
}

func NewPromoCodesController(db *gorm.DB, cfg *config.Config) *PromoCodesController {
	return &PromoCodesController{DB: db, Cfg: cfg, now: time.Now}
}

func (pc *PromoCodesController) List(c *fiber.Ctx) error {
	params := listParams(c)
	codes, err := loadAll[models.PromoCode](pc.DB)
	if err != nil {
		return utils.Fail(c, err)
	}

	codes = listing.Filter(codes, params.Search, func(p models.PromoCode) []string {
		return []string{p.Promocode, p.ApplicableTo, p.ForCollege}
	})
	if to := strings.TrimSpace(c.Query("applicableTo")); to != "" {
		codes = listing.Where(codes, func(p models.PromoCode) bool { return p.ApplicableTo == to })
	}
	return utils.Paginate(c, listing.Paginate(codes, params.Page, params.PageSize))
}

// Create godoc
// @Summary Create promo code
// @Tags promocodes
// @Accept json
// @Produce json
// @Param request body dto.PromoCodeRequest true "Promo code"
// @Success 201 {object} utils.SuccessResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /admin/promocodes [post]
func (pc *PromoCodesController) Create(c *fiber.Ctx) error {
	var input dto.PromoCodeRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}

	// The unique index decides, so concurrent creates of one code yield a
	// single row and a 409 for the rest.
	code := input.ToModel()
	if err := pc.DB.Create(&code).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || pc.taken(code.Promocode) {
			return utils.Conflict(c, "Promocode already exists")
		}
		return utils.Fail(c, pkgerrors.Wrap(err, "create promocode"))
	}
	return utils.Created(c, code)
}

// taken covers dialects that surface unique violations untranslated.
func (pc *PromoCodesController) taken(promocode string) bool {
	var count int64
	return pc.DB.Model(&models.PromoCode{}).Where("promocode = ?", promocode).Count(&count).Error == nil && count > 0
}

func (pc *PromoCodesController) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	code, err := find[models.PromoCode](pc.DB, id)
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.StatusOK, code)
}

// Update keeps the stored code; a different code in the body is ignored.
func (pc *PromoCodesController) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	var input dto.PromoCodeRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}

	code, err := find[models.PromoCode](pc.DB, id)
	if err != nil {
		return utils.Fail(c, err)
	}
	input.ApplyTo(code)
	if err := pc.DB.Save(code).Error; err != nil {
		return utils.Fail(c, pkgerrors.Wrap(err, "update promocode"))
	}
	return utils.Success(c, fiber.StatusOK, code)
}

func (pc *PromoCodesController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	// hard delete so the code can be issued again
	if err := remove[models.PromoCode](pc.DB.Unscoped(), id); err != nil {
		return utils.Fail(c, err)
	}
	return utils.NoContent(c)
}

// Preview reports whether a code would apply to a purchase and what it
// would take off. Nothing is consumed.
func (pc *PromoCodesController) Preview(c *fiber.Ctx) error {
	var input dto.PromoPreviewRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}

	var code models.PromoCode
	err := pc.DB.Where("promocode = ?", strings.ToUpper(strings.TrimSpace(input.Promocode))).First(&code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.Success(c, fiber.StatusOK, dto.PromoPreviewResponse{Message: "promocode_not_found"})
	}
	if err != nil {
		return utils.Fail(c, pkgerrors.Wrap(err, "load promocode"))
	}

	return utils.Success(c, fiber.StatusOK, preview(code, input, pc.now().UTC()))
}

func preview(code models.PromoCode, in dto.PromoPreviewRequest, now time.Time) dto.PromoPreviewResponse {
	switch {
	case code.Expired(now):
		return dto.PromoPreviewResponse{Message: "promocode_expired"}
	case code.Quantity <= 0:
		return dto.PromoPreviewResponse{Message: "promocode_exhausted"}
	case !code.Covers(in.Kind):
		return dto.PromoPreviewResponse{Message: "not_applicable"}
	case !code.AllowsCollege(in.College):
		return dto.PromoPreviewResponse{Message: "college_not_eligible"}
	}
	discount := math.Round(in.Amount*float64(code.DiscountPercentage)) / 100
	return dto.PromoPreviewResponse{
		IsValid:  true,
		Discount: discount,
		Payable:  math.Round((in.Amount-discount)*100) / 100,
		Message:  "ok",
	}
}
