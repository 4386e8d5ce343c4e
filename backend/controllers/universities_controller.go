package controllers

import (
	"eduadmin/backend/config"
	"eduadmin/backend/dto"
	"eduadmin/backend/listing"
	"eduadmin/backend/models"
	"eduadmin/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UniversitiesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUniversitiesController(db *gorm.DB, cfg *config.Config) *UniversitiesController {
	return &UniversitiesController{DB: db, Cfg: cfg}
}

func (uc *UniversitiesController) List(c *fiber.Ctx) error {
	params := listParams(c)
	rows, err := loadAll[models.University](uc.DB)
	if err != nil {
		return utils.Fail(c, err)
	}
	rows = listing.Filter(rows, params.Search, func(u models.University) []string {
		return []string{u.TPOName, u.TPOEmail, u.CollegeName}
	})
	return utils.Paginate(c, listing.Paginate(rows, params.Page, params.PageSize))
}

// Count is the dashboard card figure.
func (uc *UniversitiesController) Count(c *fiber.Ctx) error {
	var count int64
	if err := uc.DB.Model(&models.University{}).Count(&count).Error; err != nil {
		return utils.Fail(c, errors.Wrap(err, "count universities"))
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"count": count})
}

func (uc *UniversitiesController) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	row, err := find[models.University](uc.DB, id, "Courses")
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.StatusOK, row)
}

func (uc *UniversitiesController) Create(c *fiber.Ctx) error {
	var input dto.UniversityRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}

	var row models.University
	input.ApplyTo(&row)
	if taken, err := uc.emailTaken(row.TPOEmail, 0); err != nil {
		return utils.Fail(c, err)
	} else if taken {
		return utils.Conflict(c, "TPO email already registered")
	}
	if err := uc.DB.Create(&row).Error; err != nil {
		return utils.Fail(c, errors.Wrap(err, "create university"))
	}
	return utils.Created(c, row)
}

func (uc *UniversitiesController) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	var input dto.UniversityRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}

	row, err := find[models.University](uc.DB, id)
	if err != nil {
		return utils.Fail(c, err)
	}
	input.ApplyTo(row)
	if row.Coins < row.UsedCoins {
		return utils.Conflict(c, "Coins cannot go below coins already used")
	}
	if taken, err := uc.emailTaken(row.TPOEmail, row.ID); err != nil {
		return utils.Fail(c, err)
	} else if taken {
		return utils.Conflict(c, "TPO email already registered")
	}
	if err := uc.DB.Save(row).Error; err != nil {
		return utils.Fail(c, errors.Wrap(err, "update university"))
	}
	return utils.Success(c, fiber.StatusOK, row)
}

func (uc *UniversitiesController) emailTaken(email string, except uint) (bool, error) {
	var count int64
	err := uc.DB.Model(&models.University{}).Where("tpo_email = ? AND id <> ?", email, except).Count(&count).Error
	return count > 0, errors.Wrap(err, "check tpo email")
}

func (uc *UniversitiesController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	err = uc.DB.Transaction(func(tx *gorm.DB) error {
		row, err := find[models.University](tx, id)
		if err != nil {
			return err
		}
		if err := tx.Model(row).Association("Courses").Clear(); err != nil {
			return errors.Wrap(err, "clear courses")
		}
		if err := tx.Model(&models.User{}).Where("university_id = ?", id).Update("university_id", nil).Error; err != nil {
			return errors.Wrap(err, "detach students")
		}
		return remove[models.University](tx.Unscoped(), id)
	})
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.NoContent(c)
}

func (uc *UniversitiesController) AddCoins(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	var input dto.CoinsRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}

	var row *models.University
	err = uc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.University{}).Where("id = ?", id).
			Update("coins", gorm.Expr("coins + ?", input.Amount)).Error; err != nil {
			return errors.Wrap(err, "add coins")
		}
		var err error
		row, err = find[models.University](tx, id)
		return err
	})
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.StatusOK, row)
}

// AllotCourse godoc
// @Summary Allot a course to a university
// @Description Charges the cost against the university's available coins
// @Tags universities
// @Accept json
// @Produce json
// @Param request body dto.AllotCourseRequest true "Course and cost"
// @Success 200 {object} utils.SuccessResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /admin/universities/{id}/courses [post]
func (uc *UniversitiesController) AllotCourse(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	var input dto.AllotCourseRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}

	var row *models.University
	err = uc.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		if row, err = find[models.University](tx, id, "Courses"); err != nil {
			return err
		}
		course, err := find[models.Course](tx, input.CourseID)
		if err != nil {
			return err
		}
		for _, have := range row.Courses {
			if have.ID == course.ID {
				return errors.Wrap(utils.ErrConflict, "course already allotted")
			}
		}
		if row.AvailableCoins() < input.Cost {
			return errors.Wrap(utils.ErrConflict, "not enough coins")
		}
		row.UsedCoins += input.Cost
		if err := tx.Model(row).Update("used_coins", row.UsedCoins).Error; err != nil {
			return errors.Wrap(err, "charge coins")
		}
		if err := tx.Model(row).Association("Courses").Append(course); err != nil {
			return errors.Wrap(err, "allot course")
		}
		return nil
	})
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.StatusOK, row)
}

func (uc *UniversitiesController) Students(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	if _, err := find[models.University](uc.DB, id); err != nil {
		return utils.Fail(c, err)
	}

	params := listParams(c)
	students, err := loadAll[models.User](uc.DB.Where("university_id = ?", id))
	if err != nil {
		return utils.Fail(c, err)
	}
	students = listing.Filter(students, params.Search, userFields)
	return utils.Paginate(c, listing.Paginate(students, params.Page, params.PageSize))
}
