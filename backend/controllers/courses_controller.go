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

type CoursesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCoursesController(db *gorm.DB, cfg *config.Config) *CoursesController {
	return &CoursesController{DB: db, Cfg: cfg}
}

func offeringFields(o models.Offering) []string {
	return []string{o.Title, o.Category, o.Subcategory, o.Level}
}

func (cc *CoursesController) List(c *fiber.Ctx) error {
	params := listParams(c)
	courses, err := loadAll[models.Course](cc.DB)
	if err != nil {
		return utils.Fail(c, err)
	}

	courses = listing.Filter(courses, params.Search, func(x models.Course) []string { return offeringFields(x.Offering) })
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		courses = listing.Where(courses, func(x models.Course) bool { return strings.EqualFold(x.Category, cat) })
	}
	return utils.Paginate(c, listing.Paginate(courses, params.Page, params.PageSize))
}

func (cc *CoursesController) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	course, err := find[models.Course](cc.DB, id)
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.StatusOK, course)
}

// CreateCourse godoc
// @Summary Create course
// @Tags courses
// @Accept json
// @Produce json
// @Param course body dto.OfferingRequest true "Course form"
// @Success 201 {object} utils.SuccessResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /admin/courses [post]
func (cc *CoursesController) Create(c *fiber.Ctx) error {
	var input dto.OfferingRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}
	var course models.Course
	input.ApplyTo(&course.Offering)
	if len(course.Outline().Units) != 1 {
		return utils.Fail(c, errSingleUnit)
	}
	if err := cc.DB.Create(&course).Error; err != nil {
		return utils.Fail(c, errors.Wrap(err, "create course"))
	}
	return utils.Created(c, course)
}

func (cc *CoursesController) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	var input dto.OfferingRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}
	course, err := find[models.Course](cc.DB, id)
	if err != nil {
		return utils.Fail(c, err)
	}
	input.ApplyTo(&course.Offering)
	if len(course.Outline().Units) != 1 {
		return utils.Fail(c, errSingleUnit)
	}
	if err := cc.DB.Save(course).Error; err != nil {
		return utils.Fail(c, errors.Wrap(err, "update course"))
	}
	return utils.Success(c, fiber.StatusOK, course)
}

// SetDisplay flips whether the course is shown in the catalogue.
func (cc *CoursesController) SetDisplay(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	var input dto.DisplayRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}
	course, err := find[models.Course](cc.DB, id)
	if err != nil {
		return utils.Fail(c, err)
	}
	course.IsActive = input.IsActive
	if err := cc.DB.Model(course).Update("is_active", input.IsActive).Error; err != nil {
		return utils.Fail(c, errors.Wrap(err, "update display"))
	}
	return utils.Success(c, fiber.StatusOK, course)
}

func (cc *CoursesController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	if err := remove[models.Course](cc.DB, id); err != nil {
		return utils.Fail(c, err)
	}
	return utils.NoContent(c)
}
