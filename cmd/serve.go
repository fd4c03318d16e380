package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food-order/handlers"
	"food-order/media"
	"food-order/middleware"
	"food-order/routes"
	"food-order/services"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, err := bootstrap()
		if err != nil {
			return err
		}

		auth := services.NewAuthService(st, 0)
		if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
			created, err := auth.EnsureAdmin(cmd.Context(), cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword)
			if err != nil {
				return err
			}
			if created {
				log.Info().Str("username", cfg.AdminUsername).Msg("seeded admin account")
			}
		}

		if n, err := st.PruneSessions(cmd.Context()); err != nil {
			log.Warn().Err(err).Msg("could not prune expired sessions")
		} else if n > 0 {
			log.Info().Int64("count", n).Msg("pruned expired sessions")
		}

		h := &handlers.Handler{
			Store:     st,
			Auth:      auth,
			Orders:    services.NewOrderService(st),
			Media:     media.NewStorage(cfg.MediaDir),
			JWTSecret: cfg.JWTSecret,
		}
		cookies := middleware.NewCookieStore(cfg.SessionKey, cfg.CookieSecure)
		engine, err := routes.NewEngine(h, cookies)
		if err != nil {
			return err
		}

		protect := middleware.CSRF(cfg.CSRFKey, cfg.CookieSecure, []string{
			"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port,
		})
		server := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           protect(engine),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() {
			log.Info().Str("port", cfg.Port).Msg("server starting")
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errc <- err
			}
			close(errc)
		}()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
		}

		log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
