package response

// OrderPlacedResponse acknowledges a guest order. ClientSecret is only set
// when an online payment was opened for the order.
type OrderPlacedResponse struct {
	OrderID      uint   `json:"order_id"`
	ClientSecret string `json:"client_secret,omitempty"`
}

type QRCodeResponse struct {
	QRCode string `json:"qr_code"`
}
