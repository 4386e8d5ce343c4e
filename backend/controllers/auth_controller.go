package controllers

import (
	"errors"
	"log"
	"strings"
	"time"

	"eduadmin/backend/config"
	"eduadmin/backend/dto"
	"eduadmin/backend/middleware"
	"eduadmin/backend/models"
	"eduadmin/backend/utils"

	"github.com/gofiber/fiber/v2"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// Login godoc
// @Summary Operator login
// @Description Authenticate an operator and return a JWT bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input dto.LoginRequest
	if err := bind(c, &input); err != nil {
		return utils.Fail(c, err)
	}

	var user models.User
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if err := ac.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}
	if user.IsBlocked {
		return utils.Forbidden(c, "Account is blocked")
	}

	token, err := utils.GenerateJWTToken(user.ID, user.Role, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	now := time.Now().UTC()
	ac.DB.Create(&models.LoginHistory{UserID: user.ID, LoginTime: now, IP: c.IP()})
	ac.DB.Model(&user).Update("last_login_at", now)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Me returns the operator behind the bearer token.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}
	user, err := find[models.User](ac.DB, claims.UserID)
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.StatusOK, user)
}

// SeedAdmin creates the configured operator account when no admin exists.
// Without ADMIN_PASSWORD nothing is seeded.
func SeedAdmin(db *gorm.DB, cfg *config.Config, logger *log.Logger) error {
	if cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return pkgerrors.Wrap(err, "count admins")
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return pkgerrors.Wrap(err, "hash admin password")
	}
	admin := models.User{Name: "Administrator", Email: cfg.AdminEmail, PasswordHash: string(hash), Role: models.RoleAdmin}
	if err := db.Create(&admin).Error; err != nil {
		return pkgerrors.Wrap(err, "create admin")
	}
	logger.Printf("seeded admin account %s", admin.Email)
	return nil
}
