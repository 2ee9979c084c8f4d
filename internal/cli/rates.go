package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tiptally/internal/config"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "List the tip rates and provincial tax rates",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		svc, err := newService(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Tip rates:")
		for _, option := range svc.TipOptions() {
			fmt.Fprintf(out, "  %s\n", option)
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Provincial tax rates:")
		for _, option := range svc.ProvinceOptions() {
			fmt.Fprintf(out, "  %s\n", option)
		}
		return nil
	},
}
