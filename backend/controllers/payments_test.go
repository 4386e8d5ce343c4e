package controllers_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"eduadmin/backend/gateway"
	"eduadmin/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
)

type fakeGateway struct {
	statuses map[string]gateway.Status
}

func (f *fakeGateway) CheckStatus(_ context.Context, orderID string) (gateway.Status, error) {
	s, ok := f.statuses[orderID]
	if !ok {
		return gateway.Status{}, errors.New("midtrans: Transaction doesn't exist.")
	}
	return s, nil
}

func seedPayments(t *testing.T, env *testEnv) []models.Payment {
	t.Helper()
	rows := []models.Payment{
		{Name: "Asha Rao", Email: "asha@example.com", OrderID: "ORD-1", CourseIDs: datatypes.JSONSlice[uint]{1, 2},
			BasePrice: 2000, Discount: 200, GST: 324, TransactionAmount: 2124,
			Status: datatypes.NewJSONType(models.PaymentStatus{State: models.PaymentPaid})},
		{Name: "Ravi Kumar", Email: "ravi@example.com", OrderID: "ORD-2", CourseIDs: datatypes.JSONSlice[uint]{3},
			BasePrice: 500, TransactionAmount: 590,
			Status: datatypes.NewJSONType(models.PaymentStatus{State: models.PaymentPending})},
		{Name: "Meera", Email: "meera@example.com", OrderID: "ORD-3",
			BasePrice: 800, TransactionAmount: 944,
			Status: datatypes.NewJSONType(models.PaymentStatus{State: models.PaymentFailed})},
	}
	require.NoError(t, env.db.Create(&rows).Error)
	return rows
}

func TestListPayments(t *testing.T) {
	env := setup(t)
	seedPayments(t, env)

	_, body := env.call(t, http.MethodGet, "/api/admin/payments?status=paid", nil)
	list := items(t, body)
	require.Len(t, list, 1)
	assert.Equal(t, "ORD-1", list[0].(map[string]any)["orderId"])

	_, body = env.call(t, http.MethodGet, "/api/admin/payments?search=ravi", nil)
	assert.Len(t, items(t, body), 1)

	_, body = env.call(t, http.MethodGet, "/api/admin/payments?search=pending", nil)
	assert.Len(t, items(t, body), 1, "status text is searchable")
}

func TestExportPayments(t *testing.T) {
	env := setup(t)
	seedPayments(t, env)

	resp, _ := env.call(t, http.MethodGet, "/api/admin/payments/export?pageSize=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "payments-page-1.xlsx")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Payments")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus the two rows on the page")
	assert.Equal(t, "Order ID", rows[0][0])
	// newest first
	assert.Equal(t, "ORD-3", rows[1][0])
	assert.Equal(t, "ORD-2", rows[2][0])
	assert.Equal(t, "3", rows[2][3])
}

func TestSyncPaymentStatus(t *testing.T) {
	gw := &fakeGateway{statuses: map[string]gateway.Status{
		"ORD-2": {OrderID: "ORD-2", TransactionStatus: "settlement", StatusCode: "200", StatusMessage: "Success",
			Raw: map[string]any{"transaction_status": "settlement"}},
	}}
	env := setup(t, gw)
	rows := seedPayments(t, env)

	resp, body := env.call(t, http.MethodPost, fmt.Sprintf("/api/admin/payments/%d/sync", rows[1].ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	var p models.Payment
	require.NoError(t, env.db.First(&p, rows[1].ID).Error)
	assert.Equal(t, models.PaymentPaid, p.State())
	assert.Equal(t, "200", p.Status.Data().Code)
	assert.Contains(t, p.PaymentData, "gateway")

	resp, body = env.call(t, http.MethodPost, fmt.Sprintf("/api/admin/payments/%d/sync", rows[2].ID), nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "midtrans: Transaction doesn't exist.", body["message"])
}

func TestSyncWithoutGateway(t *testing.T) {
	env := setup(t)
	rows := seedPayments(t, env)

	resp, _ := env.call(t, http.MethodPost, fmt.Sprintf("/api/admin/payments/%d/sync", rows[0].ID), nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
