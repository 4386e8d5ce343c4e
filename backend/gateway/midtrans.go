// Package gateway talks to the payment provider.
package gateway

import (
	"context"
	"strings"

	"eduadmin/backend/models"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/pkg/errors"
)

var ErrNotConfigured = errors.New("payment gateway not configured")

// Status is the provider's view of one order.
type Status struct {
	OrderID           string
	TransactionStatus string
	FraudStatus       string
	StatusCode        string
	StatusMessage     string
	Raw               map[string]any
}

type StatusChecker interface {
	CheckStatus(ctx context.Context, orderID string) (Status, error)
}

type Midtrans struct {
	client coreapi.Client
}

func NewMidtrans(serverKey string, production bool) (*Midtrans, error) {
	if strings.TrimSpace(serverKey) == "" {
		return nil, ErrNotConfigured
	}
	m := &Midtrans{}
	if production {
		m.client.New(serverKey, midtrans.Production)
	} else {
		m.client.New(serverKey, midtrans.Sandbox)
	}
	return m, nil
}

// CheckStatus asks Core API for the transaction by order id. The SDK call does
// not take a context; ctx is only checked before the request.
func (m *Midtrans) CheckStatus(ctx context.Context, orderID string) (Status, error) {
	if err := ctx.Err(); err != nil {
		return Status{}, err
	}
	res, merr := m.client.CheckTransaction(orderID)
	if merr != nil {
		return Status{}, errors.Errorf("midtrans: %s", merr.Message)
	}
	return Status{
		OrderID:           res.OrderID,
		TransactionStatus: res.TransactionStatus,
		FraudStatus:       res.FraudStatus,
		StatusCode:        res.StatusCode,
		StatusMessage:     res.StatusMessage,
		Raw: map[string]any{
			"transaction_id":     res.TransactionID,
			"transaction_status": res.TransactionStatus,
			"transaction_time":   res.TransactionTime,
			"payment_type":       res.PaymentType,
			"gross_amount":       res.GrossAmount,
			"fraud_status":       res.FraudStatus,
		},
	}, nil
}

// State maps a provider status onto the payment states shown in the list.
func (s Status) State() string {
	switch strings.ToLower(s.TransactionStatus) {
	case "capture":
		if strings.EqualFold(s.FraudStatus, "accept") {
			return models.PaymentPaid
		}
		if strings.EqualFold(s.FraudStatus, "challenge") {
			return models.PaymentPending
		}
		return models.PaymentFailed
	case "settlement":
		return models.PaymentPaid
	case "pending":
		return models.PaymentPending
	case "deny", "failure":
		return models.PaymentFailed
	case "cancel":
		return models.PaymentCanceled
	case "expire":
		return models.PaymentExpired
	case "refund", "partial_refund":
		return models.PaymentRefunded
	default:
		return models.PaymentPending
	}
}

// PaymentStatus is the status object stored on the payment.
func (s Status) PaymentStatus() models.PaymentStatus {
	return models.PaymentStatus{State: s.State(), Code: s.StatusCode, Message: s.StatusMessage}
}
