package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finzaapp/finza/internal/advisor"
	"github.com/finzaapp/finza/internal/config"
)

var adviceCmd = &cobra.Command{
	Use:   "advice",
	Short: "Fetch one piece of AI advice for your current finances",
	RunE:  runAdvice,
}

func init() {
	rootCmd.AddCommand(adviceCmd)
}

func runAdvice(cmd *cobra.Command, _ []string) error {
	cfg, kv, ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer kv.Close()

	client := advisor.NewClient(
		config.GetAdvisorKey(cfg),
		cfg.Advisor.BaseURL,
		cfg.Advisor.Model,
	)

	snap := advisor.Snapshot{
		Transactions: ledger.Transactions(),
		Goals:        ledger.Goals(),
		Commitments:  ledger.Commitments(),
	}

	var a advisor.Advisor
	if client != nil {
		a = client
	}
	advice := advisor.AdviceOrFallback(cmd.Context(), a, snap)

	fmt.Printf("\n  %s\n", advice)
	return nil
}
