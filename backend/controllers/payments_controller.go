package controllers

import (
	"fmt"
	"strings"
	"time"

	"eduadmin/backend/config"
	"eduadmin/backend/export"
	"eduadmin/backend/gateway"
	"eduadmin/backend/listing"
	"eduadmin/backend/models"
	"eduadmin/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PaymentsController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Gateway gateway.StatusChecker
}

func NewPaymentsController(db *gorm.DB, cfg *config.Config, gw gateway.StatusChecker) *PaymentsController {
	return &PaymentsController{DB: db, Cfg: cfg, Gateway: gw}
}

// page runs the list query shared by the table and its export.
func (pc *PaymentsController) page(c *fiber.Ctx) (listing.Page[models.Payment], error) {
	params := listParams(c)
	payments, err := loadAll[models.Payment](pc.DB)
	if err != nil {
		return listing.Page[models.Payment]{}, err
	}

	payments = listing.Filter(payments, params.Search, func(p models.Payment) []string {
		return []string{p.Name, p.Email, p.OrderID, p.State()}
	})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		payments = listing.Where(payments, func(p models.Payment) bool { return strings.EqualFold(p.State(), status) })
	}
	return listing.Paginate(payments, params.Page, params.PageSize), nil
}

func (pc *PaymentsController) List(c *fiber.Ctx) error {
	page, err := pc.page(c)
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Paginate(c, page)
}

func (pc *PaymentsController) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	payment, err := find[models.Payment](pc.DB, id)
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.StatusOK, payment)
}

var paymentHeaders = []string{
	"Order ID", "Name", "Email", "Courses", "Base Price", "Discount", "GST", "Amount", "Status", "Date",
}

func paymentRow(p models.Payment) []any {
	ids := make([]string, len(p.CourseIDs))
	for i, id := range p.CourseIDs {
		ids[i] = fmt.Sprint(id)
	}
	return []any{
		p.OrderID, p.Name, p.Email, strings.Join(ids, ", "),
		p.BasePrice, p.Discount, p.GST, p.TransactionAmount,
		p.State(), p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// Export godoc
// @Summary Export payments
// @Description Same query as the list; the rows on the requested page are written to an .xlsx file
// @Tags payments
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Router /admin/payments/export [get]
func (pc *PaymentsController) Export(c *fiber.Ctx) error {
	page, err := pc.page(c)
	if err != nil {
		return utils.Fail(c, err)
	}

	table := export.Table{Sheet: "Payments", Headers: paymentHeaders}
	for _, p := range page.Items {
		table.Rows = append(table.Rows, paymentRow(p))
	}
	data, err := export.XLSX(table)
	if err != nil {
		return utils.Fail(c, err)
	}

	c.Attachment(fmt.Sprintf("payments-page-%d.xlsx", page.Page))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(data)
}

// Sync asks the payment gateway for the order's current status and stores it.
func (pc *PaymentsController) Sync(c *fiber.Ctx) error {
	if pc.Gateway == nil {
		return utils.Error(c, fiber.StatusServiceUnavailable, gateway.ErrNotConfigured)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Fail(c, err)
	}
	payment, err := find[models.Payment](pc.DB, id)
	if err != nil {
		return utils.Fail(c, err)
	}

	status, err := pc.Gateway.CheckStatus(c.UserContext(), payment.OrderID)
	if err != nil {
		return utils.Error(c, fiber.StatusBadGateway, err)
	}

	payment.Status = datatypes.NewJSONType(status.PaymentStatus())
	if payment.PaymentData == nil {
		payment.PaymentData = datatypes.JSONMap{}
	}
	payment.PaymentData["gateway"] = status.Raw
	if err := pc.DB.Save(payment).Error; err != nil {
		return utils.Fail(c, errors.Wrap(err, "store payment status"))
	}
	return utils.Success(c, fiber.StatusOK, payment)
}
