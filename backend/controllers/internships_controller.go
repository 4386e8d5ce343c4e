package controllers

import (
	"strings"

	"eduadmin/backend/config"
	"eduadmin/backend/dto"
	"eduadmin/backend/listing"
	"eduadmin/backend/models"
	"eduadmin/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type InternshipsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewInternshipsController(db *gorm.DB, cfg *config.Config) *InternshipsController {
	return &InternshipsController{DB: db, Cfg: cfg}
}

func (ic *InternshipsController) List(c *fiber.Ctx) error {
	params := listParams(c)
	rows, err := loadAll[models.Internship](ic.DB)
	if err != nil {
		return utils.Fail(c, err)
	}

	rows = listing.Filter(rows, params.Search, func(x models.Internship) []string {
		return append(offeringFields(x.Offering), x.Period, x.Mode)
	})
	if mode := strings.TrimSpace(c.Query("mode")); mode != "" {
		rows = listing.Where(rows, func(x models.Internship) bool { return x.Mode == mode })
	}
	return utils.Paginate(c, listing.Paginate(rows, params.Page, params.PageSize))
}

func (ic *InternshipsController) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	row, err := find[models.Internship](ic.DB, id)
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.StatusOK, row)
}

func (ic *InternshipsController) Create(c *fiber.Ctx) error {
	var input dto.InternshipRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}

	var row models.Internship
	input.ApplyTo(&row)
	if err := ic.DB.Create(&row).Error; err != nil {
		return utils.Fail(c, errors.Wrap(err, "create internship"))
	}
	return utils.Created(c, row)
}

func (ic *InternshipsController) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	var input dto.InternshipRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}

	row, err := find[models.Internship](ic.DB, id)
	if err != nil {
		return utils.Fail(c, err)
	}
	input.ApplyTo(row)
	if err := ic.DB.Save(row).Error; err != nil {
		return utils.Fail(c, errors.Wrap(err, "update internship"))
	}
	return utils.Success(c, fiber.StatusOK, row)
}

func (ic *InternshipsController) SetDisplay(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	var input dto.DisplayRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}
	row, err := find[models.Internship](ic.DB, id)
	if err != nil {
		return utils.Fail(c, err)
	}
	row.IsActive = input.IsActive
	if err := ic.DB.Model(row).Update("is_active", input.IsActive).Error; err != nil {
		return utils.Fail(c, errors.Wrap(err, "update display"))
	}
	return utils.Success(c, fiber.StatusOK, row)
}

func (ic *InternshipsController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	if err := remove[models.Internship](ic.DB, id); err != nil {
		return utils.Fail(c, err)
	}
	return utils.NoContent(c)
}
