package models

// CheckoutRequest is the body of the deposit checkout endpoint.
type CheckoutRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Address       string  `json:"address" binding:"required"`
	TotalPrice    float64 `json:"totalPrice"`
	DepositAmount float64 `json:"depositAmount" binding:"required,gt=0"`
}

// CheckoutSession is the provider-agnostic result of creating a checkout.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"checkout_url"`
}

// CheckoutURLs are the redirect targets handed to the payment provider.
type CheckoutURLs struct {
	SuccessURL string
	CancelURL  string
}
