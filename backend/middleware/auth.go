package middleware

import (
	"errors"

	"eduadmin/backend/config"
	"eduadmin/backend/models"
	"eduadmin/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const claimsKey = "claims"

func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := utils.ExtractClaimsFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, err.Error())
		}
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware. The role is re-read from the
// database so a demoted or blocked operator loses access before the token
// expires.
func AdminMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := CurrentClaims(c)
		if !ok {
			return utils.Unauthorized(c, "Missing authorization token")
		}

		var user models.User
		if err := db.Select("id", "role", "is_blocked").First(&user, claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.Unauthorized(c, "Unknown user")
			}
			return utils.InternalServerError(c, "Could not query database")
		}
		if !user.IsAdmin() || user.IsBlocked {
			return utils.Forbidden(c, "Admin access required")
		}

		return c.Next()
	}
}

func CurrentClaims(c *fiber.Ctx) (utils.Claims, bool) {
	claims, ok := c.Locals(claimsKey).(utils.Claims)
	return claims, ok
}
