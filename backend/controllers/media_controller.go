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

// MediaController backs the media picker with already uploaded files, and
// the instructor dropdown.
type MediaController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewMediaController(db *gorm.DB, cfg *config.Config) *MediaController {
	return &MediaController{DB: db, Cfg: cfg}
}

func (mc *MediaController) List(c *fiber.Ctx) error {
	params := listParams(c)
	rows, err := loadAll[models.Media](mc.DB)
	if err != nil {
		return utils.Fail(c, err)
	}
	rows = listing.Filter(rows, params.Search, func(m models.Media) []string { return []string{m.Title, m.URL} })
	if kind := strings.TrimSpace(c.Query("type")); kind != "" {
		rows = listing.Where(rows, func(m models.Media) bool { return m.Type == kind })
	}
	return utils.Paginate(c, listing.Paginate(rows, params.Page, params.PageSize))
}

func (mc *MediaController) Create(c *fiber.Ctx) error {
	var input dto.MediaRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}
	row := models.Media{Title: strings.TrimSpace(input.Title), URL: input.URL, Type: input.Type}
	if err := mc.DB.Create(&row).Error; err != nil {
		return utils.Fail(c, errors.Wrap(err, "create media"))
	}
	return utils.Created(c, row)
}

func (mc *MediaController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	if err := remove[models.Media](mc.DB, id); err != nil {
		return utils.Fail(c, err)
	}
	return utils.NoContent(c)
}

func (mc *MediaController) ListInstructors(c *fiber.Ctx) error {
	params := listParams(c)
	rows, err := loadAll[models.Instructor](mc.DB)
	if err != nil {
		return utils.Fail(c, err)
	}
	rows = listing.Filter(rows, params.Search, func(i models.Instructor) []string { return []string{i.Name, i.Email} })
	return utils.Paginate(c, listing.Paginate(rows, params.Page, params.PageSize))
}

func (mc *MediaController) CreateInstructor(c *fiber.Ctx) error {
	var input dto.InstructorRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}
	row := models.Instructor{
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Bio:       input.Bio,
		AvatarURL: input.AvatarURL,
	}
	if err := mc.DB.Create(&row).Error; err != nil {
		return utils.Fail(c, errors.Wrap(err, "create instructor"))
	}
	return utils.Created(c, row)
}

func (mc *MediaController) UpdateInstructor(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	var input dto.InstructorRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}
	row, err := find[models.Instructor](mc.DB, id)
	if err != nil {
		return utils.Fail(c, err)
	}
	row.Name = strings.TrimSpace(input.Name)
	row.Email = strings.ToLower(strings.TrimSpace(input.Email))
	row.Bio = input.Bio
	row.AvatarURL = input.AvatarURL
	if err := mc.DB.Save(row).Error; err != nil {
		return utils.Fail(c, errors.Wrap(err, "update instructor"))
	}
	return utils.Success(c, fiber.StatusOK, row)
}

func (mc *MediaController) DeleteInstructor(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	if err := remove[models.Instructor](mc.DB, id); err != nil {
		return utils.Fail(c, err)
	}
	return utils.NoContent(c)
}
