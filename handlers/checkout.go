package handlers

import (
	"errors"
	"net/http"
	"strings"

	"cleanquote/models"
	"cleanquote/services/payment"
	"cleanquote/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler creates deposit checkout sessions.
type CheckoutHandler struct {
	Service       payment.CheckoutService
	PublicBaseURL string
}

func NewCheckoutHandler(svc payment.CheckoutService, publicBaseURL string) *CheckoutHandler {
	return &CheckoutHandler{Service: svc, PublicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

func (h *CheckoutHandler) CreateCheckoutHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields for checkout.", err.Error())
		return
	}

	session, err := h.Service.CreateDepositCheckout(c.Request.Context(), req, payment.BuildCheckoutURLs(h.baseURL(c)))
	if err != nil {
		if errors.Is(err, payment.ErrInvalidCheckout) {
			utils.JSONError(c, http.StatusBadRequest, "Missing required fields for checkout.", err.Error())
			return
		}
		logger.Error("Stripe error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkout_url": session.URL})
}

func (h *CheckoutHandler) baseURL(c *gin.Context) string {
	if h.PublicBaseURL != "" {
		return h.PublicBaseURL
	}
	return "https://" + c.Request.Host
}
