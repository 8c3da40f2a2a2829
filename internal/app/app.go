package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/willcheung/robinhood-export-function/internal/config"
	httpx "github.com/willcheung/robinhood-export-function/internal/http"
	"github.com/willcheung/robinhood-export-function/internal/http/handlers"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if container.RedisClient != nil {
		if err := container.RedisClient.Ping(context.Background()).Err(); err != nil {
			return err
		}
	}

	authH := handlers.NewAuthHandlers(container.AuthSvc)
	exportH := handlers.NewExportHandlers(container.ExportSvc)

	r := httpx.BuildRouter(authH, exportH, container.AuthState)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
