package payment

import (
	"context"
	"fmt"

	"cleanquote/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// StripeCheckout creates hosted Stripe Checkout sessions.
type StripeCheckout struct {
	sessions session.Client
}

// NewStripeCheckout uses the default Stripe API backend.
func NewStripeCheckout(secretKey string) *StripeCheckout {
	return NewStripeCheckoutWithBackend(secretKey, stripe.GetBackend(stripe.APIBackend))
}

func NewStripeCheckoutWithBackend(secretKey string, backend stripe.Backend) *StripeCheckout {
	return &StripeCheckout{sessions: session.Client{B: backend, Key: secretKey}}
}

func (c *StripeCheckout) CreateSession(ctx context.Context, checkout DepositCheckout) (*models.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(checkout.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(checkout.ProductName),
					},
					UnitAmount: stripe.Int64(checkout.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(checkout.URLs.SuccessURL),
		CancelURL:     stripe.String(checkout.URLs.CancelURL),
		CustomerEmail: stripe.String(checkout.CustomerEmail),
	}
	params.Context = ctx
	params.AddMetadata("customer_name", checkout.CustomerName)
	params.AddMetadata("customer_address", checkout.CustomerAddress)
	params.AddMetadata("total_price", fmt.Sprintf("%.2f", checkout.TotalPrice))

	s, err := c.sessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: %w", err)
	}
	return &models.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}
