package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	payhereControllers "github.com/Kavinduranmal/Noirrage-sub000/controllers/payhere"
)

// PayHereWebhookAuth recomputes the md5sig PayHere attaches to every notify
// call and rejects the request before the handler ever sees the payload.
// Sandbox/dev mode skips the check so local testing can post hand-built
// forms.
func PayHereWebhookAuth(merchantSecret, mode string) gin.HandlerFunc {
	skip := strings.EqualFold(mode, "sandbox") || strings.EqualFold(mode, "dev")

	return func(c *gin.Context) {
		if skip {
			c.Next()
			return
		}

		if err := c.Request.ParseForm(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse form for signature verification"})
			c.Abort()
			return
		}

		provided := c.PostForm("md5sig")
		if provided == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "missing md5sig signature"})
			c.Abort()
			return
		}

		calculated := payhereControllers.NotifySignature(
			c.PostForm("merchant_id"),
			c.PostForm("order_id"),
			c.PostForm("payhere_amount"),
			c.PostForm("payhere_currency"),
			c.PostForm("status_code"),
			merchantSecret,
		)

		if !strings.EqualFold(calculated, provided) {
			log.Printf("PayHere webhook signature mismatch for order %s", c.PostForm("order_id"))
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid webhook signature"})
			c.Abort()
			return
		}

		c.Next()
	}
}
