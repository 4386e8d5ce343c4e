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

// JobsController serves both hiring-manager jobs and freelance posts; Kind
// tells them apart.
type JobsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewJobsController(db *gorm.DB, cfg *config.Config) *JobsController {
	return &JobsController{DB: db, Cfg: cfg}
}

func (jc *JobsController) List(c *fiber.Ctx) error {
	params := listParams(c)
	jobs, err := loadAll[models.JobPosting](jc.DB)
	if err != nil {
		return utils.Fail(c, err)
	}

	jobs = listing.Filter(jobs, params.Search, func(j models.JobPosting) []string {
		return append([]string{j.Position, j.CompanyName, j.Location}, j.KeySkills...)
	})
	if kind := strings.TrimSpace(c.Query("kind")); kind != "" {
		jobs = listing.Where(jobs, func(j models.JobPosting) bool { return j.Kind == kind })
	}
	return utils.Paginate(c, listing.Paginate(jobs, params.Page, params.PageSize))
}

func (jc *JobsController) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	job, err := find[models.JobPosting](jc.DB, id)
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.StatusOK, job)
}

func (jc *JobsController) Create(c *fiber.Ctx) error {
	var input dto.JobRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}

	var job models.JobPosting
	input.ApplyTo(&job)
	if err := jc.DB.Create(&job).Error; err != nil {
		return utils.Fail(c, errors.Wrap(err, "create job"))
	}
	return utils.Created(c, job)
}

func (jc *JobsController) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	var input dto.JobRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}

	job, err := find[models.JobPosting](jc.DB, id)
	if err != nil {
		return utils.Fail(c, err)
	}
	input.ApplyTo(job)
	if err := jc.DB.Save(job).Error; err != nil {
		return utils.Fail(c, errors.Wrap(err, "update job"))
	}
	return utils.Success(c, fiber.StatusOK, job)
}

func (jc *JobsController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	if err := remove[models.JobPosting](jc.DB, id); err != nil {
		return utils.Fail(c, err)
	}
	return utils.NoContent(c)
}
