package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"bitkitcore/internal/config"
	"bitkitcore/internal/devserver"
	"bitkitcore/internal/logging"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		cfgFile string
		dev     = devserver.DefaultConfig()
	)
	cmd := &cobra.Command{
		Use:          "lnurld",
		Short:        "In-memory LNURL service for development",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.Load(cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}
			logging.Setup(s.LogLevel)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, s.Listen, devserver.New(dev).Handler())
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file")
	f.String("listen", "", "listen address (default 127.0.0.1:8080)")
	f.String("log-level", "", "debug, info, warn or error")
	f.StringVar(&dev.BaseURL, "base-url", "", "public base URL used in callbacks (default from the Host header)")
	f.StringSliceVar(&dev.Users, "users", nil, "accepted Lightning Address users (default any)")
	f.StringVar(&dev.NodeURI, "node-uri", dev.NodeURI, "node URI advertised in channel offers")
	f.Uint64Var(&dev.MinSendable, "min-sendable", dev.MinSendable, "msat")
	f.Uint64Var(&dev.MaxSendable, "max-sendable", dev.MaxSendable, "msat")
	f.IntVar(&dev.CommentAllowed, "comment-allowed", dev.CommentAllowed, "max comment length, 0 disables comments")
	return cmd
}

func serve(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		slog.Info("lnurld listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
