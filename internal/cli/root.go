// Package cli provides the tiptally commands. The root command starts the
// interactive screen; calc and rates are the non-interactive surfaces.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"tiptally/internal/config"
	"tiptally/internal/format"
	"tiptally/internal/service"
	"tiptally/internal/tui"
	"tiptally/internal/viewmodel"
	"tiptally/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:   "tiptally",
	Short: "Tip and tax calculator for Canadian restaurant bills",
	Long: `tiptally computes tip, sales tax, and total for a restaurant bill.

Run it without arguments for the interactive screen, or use the calc
command for a one-shot breakdown:

  tiptally
  tiptally calc --bill 18.94 --tip 15 --province ON
  tiptally rates`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startScreen()
	},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(ratesCmd)
}

// newService builds the formatter and service from the environment config.
func newService(cfg config.Config) (*service.CalcService, error) {
	f, err := format.New(cfg.Locale, cfg.CurrencySymbol)
	if err != nil {
		return nil, fmt.Errorf("configure formatter: %w", err)
	}
	return service.NewCalcService(f), nil
}

func startScreen() error {
	cfg := config.Load()

	// The screen owns the terminal, so logs go to a file or nowhere.
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer logFile.Close()
		logging.SetupWriter(logFile)
	} else {
		logging.SetupWriter(io.Discard)
	}

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	vm := viewmodel.New(svc, cfg.DefaultProvince)
	slog.Info("screen starting", "locale", cfg.Locale, "default_province", cfg.DefaultProvince)
	return tui.New(vm).Run()
}
