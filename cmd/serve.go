package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertthunder/podx/internal/server"
	"github.com/urfave/cli/v3"
)

// Serve runs the local proxy that fronts the generation backend.
//
// Flags override the [server] section of the config; the proxy keeps running
// until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	host := cmd.String("host")
	port := cmd.Int("port")
	upstream := cmd.String("upstream")

	if host == "" {
		host = r.config.Server.Host
	}
	if port == 0 {
		port = r.config.Server.Port
	}
	if upstream == "" {
		upstream = r.config.Server.UpstreamURL
	}
	if upstream == "" {
		upstream = r.config.API.BaseURL
	}

	proxy := server.NewProxyHandler(upstream, r.httpClient)
	router := server.NewRouter()
	router.Use(server.RequestID(), server.Logging(r.logger))
	router.Mount(proxy)

	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("proxy listening at %v (upstream %v)", addr, upstream)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	r.writePlain("→ podx proxy listening on http://%s\n", addr)
	for _, route := range proxy.Routes() {
		r.writePlain("  %-4s %s\n", route.Method, route.Pattern)
	}
	r.writePlain("Press ctrl+c to stop.\n")

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	r.logger.Info("shutting down proxy")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	return nil
}
