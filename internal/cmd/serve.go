package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/analytics"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/config"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/content"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/handlers"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/logger"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the landing page web server",
	Long: `Start the HTTP server for the landing page, the estimate API and the
analytics endpoint. Configuration comes from the environment and an optional
.env / .env.local file in the working directory.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadDotEnv()
		if viper.GetBool("debug") {
			os.Setenv("LOG_LEVEL", "debug")
		}
		fx.New(Options()...).Run()
	},
}

// Options returns the fx options that make up the web server.
func Options() []fx.Option {
	return []fx.Option{
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		content.Module,

		// Analytics sinks attach before the server accepts traffic
		analytics.Module,
		handlers.Module,
		server.Module,
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
