package storeprotocol

import "github.com/shopspring/decimal"

const (
	Paid PaymentStatus = "PAID"
)

type PaymentStatus string

type PaymentRequest struct {
	Cart Cart `json:"cart"`
}

type Cart struct {
	Order *CheckoutOrder `json:"order"`
}

type CheckoutOrder struct {
	ID       string          `json:"id"`
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency,omitempty"`
	Items    []LineItem      `json:"items"`
}

type LineItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type PaymentStatusUpdate struct {
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}
