package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"feature-feedback-board/internal/bootstrap"
	"feature-feedback-board/internal/config"
	"feature-feedback-board/internal/tracer"

	"github.com/spf13/cobra"
)

var (
	seedFile   string
	idStrategy string
	sortOrder  string
	noColor    bool
)

// rootCmd starts an interactive board. Nothing is kept once it exits.
var rootCmd = &cobra.Command{
	Use:   "board",
	Short: "Feature feedback board",
	Long: `Collect feature requests, vote on them and track their status.

All state lives in memory for the life of the process.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration, flags win over environment
		cfg := config.Load()
		if cmd.Flags().Changed("seed") {
			cfg.Board.SeedFile = seedFile
		}
		if cmd.Flags().Changed("id-strategy") {
			cfg.Board.IdStrategy = idStrategy
		}
		if cmd.Flags().Changed("sort") {
			cfg.Board.DefaultSort = sortOrder
		}
		if noColor {
			cfg.App.NoColor = true
		}

		// 2. Tracing (disabled unless OTEL_ENABLED=true)
		shutdownTracer := tracer.InitTracer(cfg.Otel)
		defer shutdownTracer(context.Background())

		// 3. Bootstrap Dependencies (Container)
		container, err := bootstrap.NewContainer(cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer container.Logger.Sync()

		// 4. Run the shell until quit, EOF or interrupt
		return container.Shell.Run(cmd.Context(), cmd.InOrStdin())
	},
}

func init() {
	rootCmd.Flags().StringVar(&seedFile, "seed", "", "YAML fixture of features to preload")
	rootCmd.Flags().StringVar(&idStrategy, "id-strategy", "", "id generator: uuid or sequence")
	rootCmd.Flags().StringVar(&sortOrder, "sort", "", "initial sort order")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
