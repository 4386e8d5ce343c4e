package controllers

import (
	"eduadmin/backend/curriculum"
	"eduadmin/backend/dto"
	"eduadmin/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// outlined is satisfied by *models.Course and *models.Internship.
type outlined interface {
	Outline() *curriculum.Outline
	SetOutline(*curriculum.Outline)
}

var errSingleUnit = errors.Wrap(curriculum.ErrInvalidValue, "a course curriculum has exactly one unit")

// CurriculumController serves the builder for one offering type. Courses are
// limited to a single unit; internships may have any number.
type CurriculumController[T any, PT interface {
	*T
	outlined
}] struct {
	DB         *gorm.DB
	SingleUnit bool
}

func (cc *CurriculumController[T, PT]) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	row, err := find[T](cc.DB, id)
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.StatusOK, PT(row).Outline())
}

// Apply godoc
// @Summary Apply curriculum builder commands
// @Description Commands run in order against the stored outline; any failure leaves it unchanged
// @Tags curriculum
// @Accept json
// @Produce json
// @Param request body dto.CurriculumCommands true "Commands"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /admin/courses/{id}/curriculum/commands [post]
func (cc *CurriculumController[T, PT]) Apply(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	var input dto.CurriculumCommands
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}

	var next *curriculum.Outline
	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		row, err := find[T](tx, id)
		if err != nil {
			return err
		}
		next, err = PT(row).Outline().Apply(input.Commands)
		if err != nil {
			return err
		}
		if cc.SingleUnit && len(next.Units) != 1 {
			return errSingleUnit
		}
		PT(row).SetOutline(next)
		return tx.Model(row).Update("curriculum", datatypes.NewJSONType(*next)).Error
	})
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.StatusOK, next)
}
