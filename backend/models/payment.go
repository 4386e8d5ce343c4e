package models

import "gorm.io/datatypes"

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentExpired  = "expired"
	PaymentCanceled = "canceled"
	PaymentRefunded = "refunded"
)

type PaymentStatus struct {
	State   string `json:"state"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Payment is an order as recorded after checkout. PaymentData is whatever the
// payment provider returned and is stored untouched.
type Payment struct {
	Base
	UserID            uint                              `gorm:"index" json:"userId"`
	Name              string                            `json:"name"`
	Email             string                            `json:"email"`
	OrderID           string                            `gorm:"uniqueIndex;not null" json:"orderId"`
	CourseIDs         datatypes.JSONSlice[uint]         `json:"courseIds"`
	BasePrice         float64                           `json:"basePrice"`
	Discount          float64                           `json:"discount"`
	GST               float64                           `json:"gst"`
	TransactionAmount float64                           `json:"transactionAmount"`
	PaymentData       datatypes.JSONMap                 `json:"paymentData"`
	Status            datatypes.JSONType[PaymentStatus] `json:"status"`
}

func (p Payment) State() string { return p.Status.Data().State }
