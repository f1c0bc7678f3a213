package middleware

import "github.com/gin-gonic/gin"

// CartSessionHeader carries the guest cart-session token on every request
// that wants guest cart association.
const CartSessionHeader = "X-Cart-Session"

func CartSession(c *gin.Context) {
	if token := c.GetHeader(CartSessionHeader); token != "" {
		c.Set("cart_session", token)
	}
	c.Next()
}
