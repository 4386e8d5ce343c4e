package controllers

import (
	"context"

	"eduadmin/backend/config"
	"eduadmin/backend/models"
	"eduadmin/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type OverviewController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewOverviewController(db *gorm.DB, cfg *config.Config) *OverviewController {
	return &OverviewController{DB: db, Cfg: cfg}
}

// Overview is the set of dashboard cards.
type Overview struct {
	Courses      int64   `json:"courses"`
	Internships  int64   `json:"internships"`
	Universities int64   `json:"universities"`
	Students     int64   `json:"students"`
	Payments     int64   `json:"payments"`
	Revenue      float64 `json:"revenue"`
}

// Get loads every card concurrently. One failing query fails the response.
func (oc *OverviewController) Get(c *fiber.Ctx) error {
	ov, err := oc.load(c.UserContext())
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.StatusOK, ov)
}

func (oc *OverviewController) load(ctx context.Context) (Overview, error) {
	var ov Overview
	g, ctx := errgroup.WithContext(ctx)

	count := func(dst *int64, model any, query ...any) {
		g.Go(func() error {
			q := oc.DB.WithContext(ctx).Model(model)
			if len(query) > 0 {
				q = q.Where(query[0], query[1:]...)
			}
			return errors.Wrapf(q.Count(dst).Error, "count %T", model)
		})
	}
	count(&ov.Courses, &models.Course{})
	count(&ov.Internships, &models.Internship{})
	count(&ov.Universities, &models.University{})
	count(&ov.Students, &models.User{}, "role = ?", models.RoleStudent)
	count(&ov.Payments, &models.Payment{})

	g.Go(func() error {
		var payments []models.Payment
		if err := oc.DB.WithContext(ctx).Select("transaction_amount", "status").Find(&payments).Error; err != nil {
			return errors.Wrap(err, "load revenue")
		}
		for _, p := range payments {
			if p.State() == models.PaymentPaid {
				ov.Revenue += p.TransactionAmount
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return ov, nil
}
