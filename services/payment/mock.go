package payment

import (
	"context"
	"strings"

	"cleanquote/models"
)

const MockSessionID = "cs_test_mock_12345"

// MockCheckout skips the payment provider and sends the customer straight to
// the success page. Used when no Stripe key is configured.
type MockCheckout struct{}

func (MockCheckout) CreateSession(ctx context.Context, checkout DepositCheckout) (*models.CheckoutSession, error) {
	url := checkout.URLs.SuccessURL
	if strings.Contains(url, sessionIDTemplate) {
		url = strings.ReplaceAll(url, sessionIDTemplate, MockSessionID)
	} else {
		url += "?session_id=" + MockSessionID
	}
	return &models.CheckoutSession{ID: MockSessionID, URL: url}, nil
}
