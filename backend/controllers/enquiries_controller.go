package controllers

import (
	"strings"
	"time"

	"eduadmin/backend/config"
	"eduadmin/backend/dto"
	"eduadmin/backend/listing"
	"eduadmin/backend/models"
	"eduadmin/backend/stats"
	"eduadmin/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EnquiriesController struct {
	DB  *gorm.DB
	Cfg *config.Config

	now func() time.Time
}

func NewEnquiriesController(db *gorm.DB, cfg *config.Config) *EnquiriesController {
	return &EnquiriesController{DB: db, Cfg: cfg, now: time.Now}
}

func (ec *EnquiriesController) List(c *fiber.Ctx) error {
	params := listParams(c)
	rows, err := loadAll[models.Enquiry](ec.DB)
	if err != nil {
		return utils.Fail(c, err)
	}
	rows = listing.Filter(rows, params.Search, func(e models.Enquiry) []string {
		return []string{e.Name, e.Email, e.Phone, e.CourseInterest}
	})
	if src := strings.TrimSpace(c.Query("source")); src != "" {
		rows = listing.Where(rows, func(e models.Enquiry) bool { return strings.EqualFold(e.Source, src) })
	}
	return utils.Paginate(c, listing.Paginate(rows, params.Page, params.PageSize))
}

// Import stores a batch of enquiries. A record's own createdAt, date or
// timestamp attribute becomes its creation time.
func (ec *EnquiriesController) Import(c *fiber.Ctx) error {
	var input dto.EnquiryImport
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}

	rows := make([]models.Enquiry, 0, len(input.Enquiries))
	for _, in := range input.Enquiries {
		e := models.Enquiry{
			Name:           strings.TrimSpace(in.Name),
			Email:          strings.ToLower(strings.TrimSpace(in.Email)),
			Phone:          strings.TrimSpace(in.Phone),
			CourseInterest: in.CourseInterest,
			Source:         in.Source,
			Attributes:     datatypes.JSONMap(in.Attributes),
		}
		if e.Attributes == nil {
			e.Attributes = datatypes.JSONMap{}
		}
		if d, ok := stats.DateOf(stats.Record(in.Attributes)); ok {
			e.CreatedAt = d
		}
		rows = append(rows, e)
	}

	if err := ec.DB.CreateInBatches(&rows, 100).Error; err != nil {
		return utils.Fail(c, errors.Wrap(err, "import enquiries"))
	}
	return utils.Success(c, fiber.StatusCreated, fiber.Map{"imported": len(rows)})
}

func (ec *EnquiriesController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	if err := remove[models.Enquiry](ec.DB, id); err != nil {
		return utils.Fail(c, err)
	}
	return utils.NoContent(c)
}

func chartRecord(e models.Enquiry) stats.Record {
	rec := stats.Record{}
	for k, v := range e.Attributes {
		rec[k] = v
	}
	if _, ok := stats.DateOf(rec); !ok {
		rec["createdAt"] = e.CreatedAt
	}
	return rec
}

// Chart godoc
// @Summary Weekly enquiries
// @Description Counts per Monday-aligned week of the month, zero weeks included
// @Tags enquiries
// @Produce json
// @Param month query string false "YYYY-MM, defaults to the current month"
// @Success 200 {object} utils.SuccessResponse
// @Router /admin/enquiries/chart [get]
func (ec *EnquiriesController) Chart(c *fiber.Ctx) error {
	month, err := stats.ParseMonth(c.Query("month"), ec.now())
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	rows, err := loadAll[models.Enquiry](ec.DB)
	if err != nil {
		return utils.Fail(c, err)
	}

	records := make([]stats.Record, len(rows))
	for i, e := range rows {
		records[i] = chartRecord(e)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"month": month.Format("2006-01"),
		"weeks": stats.WeeklyCounts(records, month),
	})
}
