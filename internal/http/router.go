package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/willcheung/robinhood-export-function/domain"
	"github.com/willcheung/robinhood-export-function/internal/http/handlers"
	"github.com/willcheung/robinhood-export-function/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, eh *handlers.ExportHandlers, state domain.AuthState) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/login", ah.Login)
	auth.POST("/challenge/respond", ah.RespondChallenge)

	v := r.Group("/").Use(middleware.RequireLogin(state))
	v.POST("/auth/logout", ah.Logout)
	v.GET("/export/stocks", eh.Stocks)
	v.GET("/export/options", eh.Options)

	return r
}
