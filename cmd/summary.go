package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finzaapp/finza/internal/cli"
	"github.com/finzaapp/finza/internal/metrics"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Balance, totals, and daily-budget figures",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg, kv, ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer kv.Close()

	now := time.Now()
	cur := cfg.General.Currency

	transactions := ledger.Transactions()
	goals := ledger.Goals()
	commitments := ledger.Commitments()

	summary := metrics.Summarize(transactions)
	dailyGoals := metrics.DailyGoalTarget(goals, now)
	dailyBills := metrics.DailyCommitmentBurden(commitments)

	fmt.Println()
	fmt.Println(cli.RenderTitle("FINZA  Overview"))
	fmt.Println()

	rows := [][]string{
		{"Balance", cli.FormatAmount(cur, summary.Balance)},
		{"Income", cli.FormatAmount(cur, summary.TotalIncome)},
		{"Expenses", cli.FormatAmount(cur, summary.TotalExpenses)},
		{"---"},
		{"Daily for bills", cli.FormatAmount(cur, dailyBills)},
		{"Daily for goals", cli.FormatAmount(cur, dailyGoals)},
		{"---"},
		{"Transactions", cli.FormatNumber(int64(len(transactions)))},
		{"Goals", cli.FormatNumber(int64(len(goals)))},
		{"Bills", cli.FormatNumber(int64(len(commitments)))},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	return nil
}
