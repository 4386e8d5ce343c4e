package controllers

import (
	"strings"

	"eduadmin/backend/config"
	"eduadmin/backend/dto"
	"eduadmin/backend/listing"
	"eduadmin/backend/middleware"
	"eduadmin/backend/models"
	"eduadmin/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{DB: db, Cfg: cfg}
}

func userFields(u models.User) []string {
	return []string{u.Name, u.Email, u.Phone}
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param search query string false "Search name, email or phone"
// @Param role query string false "admin, student or tpo"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} utils.PaginatedResponse[models.User]
// @Router /admin/users [get]
func (uc *UserController) List(c *fiber.Ctx) error {
	params := listParams(c)
	users, err := loadAll[models.User](uc.DB)
	if err != nil {
		return utils.Fail(c, err)
	}

	users = listing.Filter(users, params.Search, userFields)
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		users = listing.Where(users, func(u models.User) bool { return u.Role == role })
	}
	return utils.Paginate(c, listing.Paginate(users, params.Page, params.PageSize))
}

func (uc *UserController) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	user, err := find[models.User](uc.DB, id)
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.StatusOK, user)
}

func (uc *UserController) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	var input dto.UserUpdateRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}

	user, err := find[models.User](uc.DB, id)
	if err != nil {
		return utils.Fail(c, err)
	}

	// an operator cannot lock themselves out
	if claims, ok := middleware.CurrentClaims(c); ok && claims.UserID == user.ID {
		if (input.Role != "" && input.Role != models.RoleAdmin) || (input.IsBlocked != nil && *input.IsBlocked) {
			return utils.Conflict(c, "Cannot demote or block your own account")
		}
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		user.Name = name
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" {
		user.Phone = phone
	}
	if input.Role != "" {
		user.Role = input.Role
	}
	if input.IsBlocked != nil {
		user.IsBlocked = *input.IsBlocked
	}
	if input.UniversityID != nil {
		if *input.UniversityID == 0 {
			user.UniversityID = nil
		} else {
			if _, err := find[models.University](uc.DB, *input.UniversityID); err != nil {
				return utils.Fail(c, err)
			}
			user.UniversityID = input.UniversityID
		}
	}

	if err := uc.DB.Save(user).Error; err != nil {
		return utils.Fail(c, errors.Wrap(err, "update user"))
	}
	return utils.Success(c, fiber.StatusOK, user)
}

func (uc *UserController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	if claims, ok := middleware.CurrentClaims(c); ok && claims.UserID == id {
		return utils.Conflict(c, "Cannot delete your own account")
	}
	if err := remove[models.User](uc.DB, id); err != nil {
		return utils.Fail(c, err)
	}
	return utils.NoContent(c)
}
