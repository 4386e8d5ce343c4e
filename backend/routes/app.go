package routes

import (
	"log"
	"strings"

	"eduadmin/backend/config"
	"eduadmin/backend/gateway"
	"eduadmin/backend/middleware"
	"eduadmin/backend/utils"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// NewApp builds the HTTP app with its middleware stack and every route.
func NewApp(db *gorm.DB, cfg *config.Config, logger *log.Logger, gw gateway.StatusChecker) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "eduadmin",
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          utils.ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders: "Content-Disposition",
	}))
	app.Use(middleware.LoggingMiddleware(logger, strings.EqualFold(cfg.LogFormat, "color")))

	SetupRoutes(app, db, cfg, gw)
	return app
}
