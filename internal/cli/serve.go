package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/matzehuels/guidekit/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		noCache  bool
		redisURL string
		maxBody  int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP render API",
		Long: `Serve starts an HTTP server that renders posted chart documents.

  POST /v1/render?format=svg|json|png|pdf   (body: TOML or JSON document)
  GET  /healthz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, noCache, redisURL)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(runner, loggerFromContext(ctx), server.WithMaxBodyBytes(maxBody))
			err = srv.ListenAndServe(ctx, addr)
			if errors.Is(err, context.Canceled) {
				printInfo("Server stopped")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", envOr(envAddr, server.DefaultAddr), "listen address (env "+envAddr+")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&redisURL, "redis-url", envOr(envRedisURL, ""), "use a redis artifact cache (env "+envRedisURL+")")
	cmd.Flags().Int64Var(&maxBody, "max-body", server.DefaultMaxBodyBytes, "maximum document size in bytes")

	return cmd
}
