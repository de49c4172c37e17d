package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/girlmathhq/girlmath/internal/config"
	"github.com/girlmathhq/girlmath/internal/engine"
	"github.com/girlmathhq/girlmath/internal/service"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scoring HTTP API",
	Long:  "Serve the scoring engine over HTTP: POST /v1/score, POST /v1/punchline, GET /v1/offers.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "127.0.0.1:8787", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	eng := engine.New(config.Ruleset(cfg))
	svc := service.New(service.Config{Addr: flagAddr}, eng)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Listening on http://%s\n", flagAddr)
	}

	return svc.Run(ctx)
}
