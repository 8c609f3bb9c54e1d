package payuprotocol

const (
	Success StatusCode = "SUCCESS"
)

type StatusCode string

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
}

type Product struct {
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

type OrderRequest struct {
	NotifyURL     string    `json:"notifyUrl"`
	CustomerIP    string    `json:"customerIp"`
	MerchantPosID string    `json:"merchantPosId"`
	Description   string    `json:"description"`
	CurrencyCode  string    `json:"currencyCode"`
	TotalAmount   string    `json:"totalAmount"`
	ExtOrderID    string    `json:"extOrderId"`
	Products      []Product `json:"products"`
}

type Status struct {
	StatusCode StatusCode `json:"statusCode"`
	StatusDesc string     `json:"statusDesc,omitempty"`
}

type OrderResponse struct {
	Status      Status `json:"status"`
	RedirectURI string `json:"redirectUri"`
	OrderID     string `json:"orderId,omitempty"`
}

// Notification is the callback body. Only extOrderId is consumed; the rest is
// carried for diagnostics.
type Notification struct {
	Order NotificationOrder `json:"order"`
}

type NotificationOrder struct {
	OrderID    string `json:"orderId,omitempty"`
	ExtOrderID string `json:"extOrderId"`
	Status     string `json:"status,omitempty"`
}
