package api

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vitalplan/backend/internal/service"
)

// BillingHandler serves Stripe checkout and the webhook endpoint.
type BillingHandler struct {
	billingService service.IBillingService
}

// NewBillingHandler creates a new BillingHandler instance
func NewBillingHandler(billingService service.IBillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// RegisterRoutes wires the authenticated checkout endpoint.
func (h *BillingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/billing/checkout-session", h.CreateCheckoutSession)
}

// RegisterWebhookRoute wires the webhook on an unauthenticated group;
// Stripe authenticates with its signature header instead of a bearer
// token.
func (h *BillingHandler) RegisterWebhookRoute(router *gin.RouterGroup) {
	router.POST("/billing/webhook", h.Webhook)
}

func (h *BillingHandler) CreateCheckoutSession(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	sess, err := h.billingService.CreateCheckoutSession(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		log.Printf("billing: checkout session failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start checkout"})
		return
	}

	c.JSON(http.StatusOK, sess)
}

func (h *BillingHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<16))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read payload"})
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := h.billingService.HandleWebhook(c.Request.Context(), payload, signature); err != nil {
		log.Printf("billing: webhook rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "webhook rejected"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
