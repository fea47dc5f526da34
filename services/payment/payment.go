// Package payment creates deposit checkout sessions for accepted quotes.
package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"cleanquote/models"

	"go.uber.org/zap"
)

const (
	depositProductName = "Home Cleaning Deposit – CleanQuote"
	sessionIDTemplate  = "{CHECKOUT_SESSION_ID}"
)

// ErrInvalidCheckout wraps every validation failure of a checkout request.
var ErrInvalidCheckout = errors.New("invalid checkout request")

// DepositCheckout is a provider-neutral description of the session to create.
type DepositCheckout struct {
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	TotalPrice      float64
	AmountCents     int64
	Currency        string
	ProductName     string
	URLs            models.CheckoutURLs
}

// CheckoutProvider is a payment provider able to host a checkout page.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, checkout DepositCheckout) (*models.CheckoutSession, error)
}

type CheckoutService interface {
	CreateDepositCheckout(ctx context.Context, req models.CheckoutRequest, urls models.CheckoutURLs) (*models.CheckoutSession, error)
}

type DefaultCheckoutService struct {
	provider CheckoutProvider
	currency string
	logger   *zap.Logger
}

func NewCheckoutService(provider CheckoutProvider, currency string, logger *zap.Logger) *DefaultCheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if currency == "" {
		currency = "usd"
	}
	return &DefaultCheckoutService{provider: provider, currency: strings.ToLower(currency), logger: logger}
}

func (s *DefaultCheckoutService) CreateDepositCheckout(ctx context.Context, req models.CheckoutRequest, urls models.CheckoutURLs) (*models.CheckoutSession, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	checkout := DepositCheckout{
		CustomerName:    req.Name,
		CustomerEmail:   req.Email,
		CustomerAddress: req.Address,
		TotalPrice:      req.TotalPrice,
		AmountCents:     ToCents(req.DepositAmount),
		Currency:        s.currency,
		ProductName:     depositProductName,
		URLs:            urls,
	}

	sess, err := s.provider.CreateSession(ctx, checkout)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	s.logger.Info("checkout session created",
		zap.String("sessionID", sess.ID),
		zap.Int64("amountCents", checkout.AmountCents))
	return sess, nil
}

// BuildCheckoutURLs derives the redirect targets from the public site root.
func BuildCheckoutURLs(baseURL string) models.CheckoutURLs {
	base := strings.TrimRight(baseURL, "/")
	return models.CheckoutURLs{
		SuccessURL: base + "/step6.html?session_id=" + sessionIDTemplate,
		CancelURL:  base + "/estimate-payment.html",
	}
}

// ToCents converts a currency amount to its smallest unit, rounding half away from zero.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func validateRequest(req models.CheckoutRequest) error {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidCheckout)
	case strings.TrimSpace(req.Email) == "":
		return fmt.Errorf("%w: email is required", ErrInvalidCheckout)
	case strings.TrimSpace(req.Address) == "":
		return fmt.Errorf("%w: address is required", ErrInvalidCheckout)
	case req.DepositAmount <= 0 || math.IsNaN(req.DepositAmount) || math.IsInf(req.DepositAmount, 0):
		return fmt.Errorf("%w: deposit amount must be positive", ErrInvalidCheckout)
	case ToCents(req.DepositAmount) < 1:
		return fmt.Errorf("%w: deposit amount is below one cent", ErrInvalidCheckout)
	}
	return nil
}
