package controllers

import (
	"strconv"

	"eduadmin/backend/config"
	"eduadmin/backend/dto"
	"eduadmin/backend/listing"
	"eduadmin/backend/models"
	"eduadmin/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type BatchesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewBatchesController(db *gorm.DB, cfg *config.Config) *BatchesController {
	return &BatchesController{DB: db, Cfg: cfg}
}

func (bc *BatchesController) List(c *fiber.Ctx) error {
	params := listParams(c)
	batches, err := loadAll[models.Batch](bc.DB.Preload("Users"))
	if err != nil {
		return utils.Fail(c, err)
	}

	batches = listing.Filter(batches, params.Search, func(b models.Batch) []string { return []string{b.Name} })
	if raw := c.Query("courseId"); raw != "" {
		courseID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return utils.BadRequest(c, "Invalid courseId")
		}
		batches = listing.Where(batches, func(b models.Batch) bool { return b.CourseID == uint(courseID) })
	}
	return utils.Paginate(c, listing.Paginate(batches, params.Page, params.PageSize))
}

func (bc *BatchesController) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	batch, err := find[models.Batch](bc.DB, id, "Users")
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.StatusOK, batch)
}

func (bc *BatchesController) Create(c *fiber.Ctx) error {
	var input dto.BatchRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}
	if _, err := find[models.Course](bc.DB, input.CourseID); err != nil {
		return utils.Fail(c, err)
	}

	var batch models.Batch
	input.ApplyTo(&batch)
	if err := bc.DB.Create(&batch).Error; err != nil {
		return utils.Fail(c, errors.Wrap(err, "create batch"))
	}
	return utils.Created(c, batch)
}

func (bc *BatchesController) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	var input dto.BatchRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}

	batch, err := find[models.Batch](bc.DB, id, "Users")
	if err != nil {
		return utils.Fail(c, err)
	}
	if input.Capacity < len(batch.Users) {
		return utils.Conflict(c, "Capacity is below the number of enrolled users")
	}
	input.ApplyTo(batch)
	if err := bc.DB.Omit("Users").Save(batch).Error; err != nil {
		return utils.Fail(c, errors.Wrap(err, "update batch"))
	}
	return utils.Success(c, fiber.StatusOK, batch)
}

func (bc *BatchesController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		batch, err := find[models.Batch](tx, id)
		if err != nil {
			return err
		}
		if err := tx.Model(batch).Association("Users").Clear(); err != nil {
			return errors.Wrap(err, "clear enrolments")
		}
		return remove[models.Batch](tx, id)
	})
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.NoContent(c)
}

// Enroll godoc
// @Summary Enrol a user in a batch
// @Tags batches
// @Accept json
// @Produce json
// @Param request body dto.EnrollRequest true "User"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /admin/batches/{id}/users [post]
func (bc *BatchesController) Enroll(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	var input dto.EnrollRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}

	var batch *models.Batch
	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		if batch, err = find[models.Batch](tx, id, "Users"); err != nil {
			return err
		}
		user, err := find[models.User](tx, input.UserID)
		if err != nil {
			return err
		}
		for _, u := range batch.Users {
			if u.ID == user.ID {
				return nil
			}
		}
		if len(batch.Users) >= batch.Capacity {
			return errors.Wrapf(utils.ErrConflict, "batch %q is full", batch.Name)
		}
		if err := tx.Model(batch).Association("Users").Append(user); err != nil {
			return errors.Wrap(err, "enrol user")
		}
		return nil
	})
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.StatusOK, batch)
}

func (bc *BatchesController) Unenroll(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	userID, err := paramID(c, "userId")
	if err != nil {
		return utils.Fail(c, err)
	}

	batch, err := find[models.Batch](bc.DB, id)
	if err != nil {
		return utils.Fail(c, err)
	}
	if err := bc.DB.Model(batch).Association("Users").Delete(&models.User{Base: models.Base{ID: userID}}); err != nil {
		return utils.Fail(c, errors.Wrap(err, "unenrol user"))
	}
	return utils.NoContent(c)
}
