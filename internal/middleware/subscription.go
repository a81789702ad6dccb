package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vitalplan/backend/internal/service"
)

// SubscriptionMiddleware gates plan-generation endpoints behind an
// active subscription or trial.
func SubscriptionMiddleware(billing service.IBillingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		uid, ok := userID.(uuid.UUID)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user id in context"})
			c.Abort()
			return
		}

		entitled, err := billing.IsEntitled(c.Request.Context(), uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check subscription"})
			c.Abort()
			return
		}
		if !entitled {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "active subscription required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
