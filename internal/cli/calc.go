package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"tiptally/internal/config"
	"tiptally/internal/rates"
	"tiptally/pkg/logging"
)

var (
	calcBill     string
	calcTip      int
	calcProvince string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute a one-shot tip/tax/total breakdown",
	Example: `  tiptally calc --bill 18.94 --tip 15 --province ON
  tiptally calc --bill 100 --tip 20 --province QC`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup()
		cfg := config.Load()

		svc, err := newService(cfg)
		if err != nil {
			return err
		}

		tipIndex, err := tipIndexForPercent(calcTip)
		if err != nil {
			return err
		}

		code := strings.ToUpper(calcProvince)
		provinceIndex := rates.ProvinceIndex(code)
		if provinceIndex < 0 {
			return fmt.Errorf("unknown province %q (use one of %s)", calcProvince, provinceCodes())
		}

		r := svc.Calculate(calcBill, tipIndex, provinceIndex)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Bill          %s\n", r.Bill)
		fmt.Fprintf(out, "Tip   (%s)    %s\n", r.TipLabel, r.Tip)
		fmt.Fprintf(out, "Tax   (%s %s) %s\n", r.ProvinceCode, r.TaxLabel, r.Tax)
		fmt.Fprintf(out, "Total         %s\n", r.Total)
		return nil
	},
}

func init() {
	calcCmd.Flags().StringVar(&calcBill, "bill", "", "bill amount (missing or invalid is treated as 0)")
	calcCmd.Flags().IntVar(&calcTip, "tip", 0, "tip percentage, one of the offered rates (0, 5, 10, 15, 20, 25)")
	calcCmd.Flags().StringVar(&calcProvince, "province", "ON", "two-letter province code")
}

// tipIndexForPercent maps a whole tip percentage to its table index. Only
// rates the tip table offers are accepted, which keeps the index-validity
// precondition intact for the calculator.
func tipIndexForPercent(percent int) (int, error) {
	want := decimal.NewFromInt(int64(percent))
	for i, r := range rates.TipRates() {
		if r.Mul(decimal.NewFromInt(100)).Equal(want) {
			return i, nil
		}
	}

	offered := make([]string, 0, len(rates.TipRates()))
	for _, r := range rates.TipRates() {
		offered = append(offered, r.Mul(decimal.NewFromInt(100)).String())
	}
	return 0, fmt.Errorf("tip %d%% is not offered (choose from %s)", percent, strings.Join(offered, ", "))
}

func provinceCodes() string {
	codes := make([]string, 0, len(rates.Provinces()))
	for _, p := range rates.Provinces() {
		codes = append(codes, p.Code)
	}
	return strings.Join(codes, ", ")
}
