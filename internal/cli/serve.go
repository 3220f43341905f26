package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mlguide/internal/catalog"
	"mlguide/internal/config"
	"mlguide/internal/logging"
	"mlguide/internal/web"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		envFile string
		addr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the guide as a web page",
		Long: `Serve the guide as a single HTML page with a live search box, plus a small
JSON API under /api. MLGUIDE_* environment variables override the [server]
and [log] config sections; --env loads them from a dotenv file first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.SetupConsole(cmd.ErrOrStderr(), opts.logLevel); err != nil {
				return err
			}
			if err := config.LoadEnvFile(envFile); err != nil {
				return err
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if err := config.ApplyEnv(cfg); err != nil {
				return err
			}
			// flags win over the environment
			if err := opts.applyLogLevel(cfg); err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if err := logging.SetupConsole(cmd.ErrOrStderr(), cfg.Log.Level); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return web.NewServer(cfg.Server, catalog.Default).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&envFile, "env", "", "dotenv file to load before reading the environment")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.addr")
	return cmd
}
