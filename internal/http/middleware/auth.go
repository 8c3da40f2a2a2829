package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/willcheung/robinhood-export-function/domain"
)

// RequireLogin gates an endpoint on the process authorization state.
func RequireLogin(state domain.AuthState) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		if !state.IsLoggedIn() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			c.Abort()
			return
		}
		c.Next()
	})
}
