package routes

import (
	"eduadmin/backend/config"
	"eduadmin/backend/controllers"
	"eduadmin/backend/gateway"
	"eduadmin/backend/middleware"
	"eduadmin/backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, gw gateway.StatusChecker) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/login", authController.Login)

	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db)

	app.Get("/api/auth/me", authMiddleware, authController.Me)

	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)

	overviewController := controllers.NewOverviewController(db, cfg)
	admin.Get("/overview", overviewController.Get)

	// Courses and their single-unit curriculum
	coursesController := controllers.NewCoursesController(db, cfg)
	courseCurriculum := &controllers.CurriculumController[models.Course, *models.Course]{DB: db, SingleUnit: true}
	courses := admin.Group("/courses")
	courses.Get("/", coursesController.List)
	courses.Post("/", coursesController.Create)
	courses.Get("/:id", coursesController.Get)
	courses.Put("/:id", coursesController.Update)
	courses.Patch("/:id/display", coursesController.SetDisplay)
	courses.Delete("/:id", coursesController.Delete)
	courses.Get("/:id/curriculum", courseCurriculum.Get)
	courses.Post("/:id/curriculum/commands", courseCurriculum.Apply)

	internshipsController := controllers.NewInternshipsController(db, cfg)
	internshipCurriculum := &controllers.CurriculumController[models.Internship, *models.Internship]{DB: db}
	internships := admin.Group("/internships")
	internships.Get("/", internshipsController.List)
	internships.Post("/", internshipsController.Create)
	internships.Get("/:id", internshipsController.Get)
	internships.Put("/:id", internshipsController.Update)
	internships.Patch("/:id/display", internshipsController.SetDisplay)
	internships.Delete("/:id", internshipsController.Delete)
	internships.Get("/:id/curriculum", internshipCurriculum.Get)
	internships.Post("/:id/curriculum/commands", internshipCurriculum.Apply)

	batchesController := controllers.NewBatchesController(db, cfg)
	batches := admin.Group("/batches")
	batches.Get("/", batchesController.List)
	batches.Post("/", batchesController.Create)
	batches.Get("/:id", batchesController.Get)
	batches.Put("/:id", batchesController.Update)
	batches.Delete("/:id", batchesController.Delete)
	batches.Post("/:id/users", batchesController.Enroll)
	batches.Delete("/:id/users/:userId", batchesController.Unenroll)

	universitiesController := controllers.NewUniversitiesController(db, cfg)
	universities := admin.Group("/universities")
	universities.Get("/", universitiesController.List)
	universities.Get("/count", universitiesController.Count)
	universities.Post("/", universitiesController.Create)
	universities.Get("/:id", universitiesController.Get)
	universities.Put("/:id", universitiesController.Update)
	universities.Delete("/:id", universitiesController.Delete)
	universities.Post("/:id/coins", universitiesController.AddCoins)
	universities.Post("/:id/courses", universitiesController.AllotCourse)
	universities.Get("/:id/students", universitiesController.Students)

	promoCodesController := controllers.NewPromoCodesController(db, cfg)
	promocodes := admin.Group("/promocodes")
	promocodes.Get("/", promoCodesController.List)
	promocodes.Post("/", promoCodesController.Create)
	promocodes.Post("/preview", promoCodesController.Preview)
	promocodes.Get("/:id", promoCodesController.Get)
	promocodes.Put("/:id", promoCodesController.Update)
	promocodes.Delete("/:id", promoCodesController.Delete)

	paymentsController := controllers.NewPaymentsController(db, cfg, gw)
	payments := admin.Group("/payments")
	payments.Get("/", paymentsController.List)
	payments.Get("/export", paymentsController.Export)
	payments.Get("/:id", paymentsController.Get)
	payments.Post("/:id/sync", paymentsController.Sync)

	jobsController := controllers.NewJobsController(db, cfg)
	jobs := admin.Group("/jobs")
	jobs.Get("/", jobsController.List)
	jobs.Post("/", jobsController.Create)
	jobs.Get("/:id", jobsController.Get)
	jobs.Put("/:id", jobsController.Update)
	jobs.Delete("/:id", jobsController.Delete)

	userController := controllers.NewUserController(db, cfg)
	users := admin.Group("/users")
	users.Get("/", userController.List)
	users.Get("/:id", userController.Get)
	users.Put("/:id", userController.Update)
	users.Delete("/:id", userController.Delete)

	enquiriesController := controllers.NewEnquiriesController(db, cfg)
	enquiries := admin.Group("/enquiries")
	enquiries.Get("/", enquiriesController.List)
	enquiries.Get("/chart", enquiriesController.Chart)
	enquiries.Post("/import", enquiriesController.Import)
	enquiries.Delete("/:id", enquiriesController.Delete)

	mediaController := controllers.NewMediaController(db, cfg)
	admin.Get("/media", mediaController.List)
	admin.Post("/media", mediaController.Create)
	admin.Delete("/media/:id", mediaController.Delete)
	admin.Get("/instructors", mediaController.ListInstructors)
	admin.Post("/instructors", mediaController.CreateInstructor)
	admin.Put("/instructors/:id", mediaController.UpdateInstructor)
	admin.Delete("/instructors/:id", mediaController.DeleteInstructor)
}
