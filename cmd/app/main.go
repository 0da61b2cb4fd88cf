package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"placeholder/cmd/fx/account_fx"
	"placeholder/cmd/fx/album_fx"
	"placeholder/cmd/fx/config_fx"
	"placeholder/cmd/fx/controllers_fx"
	"placeholder/cmd/fx/credential_fx"
	"placeholder/cmd/fx/db_fx"
	"placeholder/cmd/fx/memcache_fx"
	"placeholder/cmd/fx/post_fx"
	"placeholder/cmd/fx/todo_fx"
	"placeholder/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		credential_fx.Module,
		album_fx.Module,
		post_fx.Module,
		todo_fx.Module,
		controllers_fx.Module,

		fx.WithLogger(config_fx.NewEventLogger),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger zerolog.Logger) {
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			go func() {
				logger.Info().Str("addr", server.Addr).Msg("starting HTTP server")
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}
