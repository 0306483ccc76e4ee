// Package payment renders UPI payment intents for the simulated checkout.
// No payment provider is integrated; the intent link is handed to the
// student's own UPI app and the portal takes their word for it.
package payment

import (
	"fmt"
	"net/url"

	"campushub/internal/shared/config"
)

type UPIService struct {
	upiID     string
	payeeName string
	currency  string
}

func NewUPIService(cfg *config.PaymentConfig) *UPIService {
	return &UPIService{
		upiID:     cfg.UPIID,
		payeeName: cfg.PayeeName,
		currency:  cfg.Currency,
	}
}

// Intent builds the upi://pay deep link for an order.
func (s *UPIService) Intent(orderNumber string, amount float64) string {
	params := url.Values{}
	params.Set("pa", s.upiID)
	params.Set("pn", s.payeeName)
	params.Set("am", fmt.Sprintf("%.2f", amount))
	params.Set("cu", s.currency)
	params.Set("tn", fmt.Sprintf("Food Order %s", orderNumber))
	return "upi://pay?" + params.Encode()
}
