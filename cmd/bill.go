package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finzaapp/finza/internal/cli"
	"github.com/finzaapp/finza/internal/metrics"
	"github.com/finzaapp/finza/internal/model"
)

var (
	flagBillName   string
	flagBillAmount string
	flagBillDue    int
)

var billCmd = &cobra.Command{
	Use:   "bill",
	Short: "Manage fixed monthly commitments",
}

var billAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a fixed monthly bill",
	RunE:  runBillAdd,
}

var billListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bills and the daily burden",
	RunE:  runBillList,
}

var billRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a bill",
	Args:  cobra.ExactArgs(1),
	RunE:  runBillRm,
}

func init() {
	billAddCmd.Flags().StringVarP(&flagBillName, "name", "n", "", "Bill name (required)")
	billAddCmd.Flags().StringVarP(&flagBillAmount, "amount", "a", "", "Monthly amount (required)")
	billAddCmd.Flags().IntVar(&flagBillDue, "due", 1, "Due day of month (1-31)")
	_ = billAddCmd.MarkFlagRequired("name")
	_ = billAddCmd.MarkFlagRequired("amount")

	billCmd.AddCommand(billAddCmd, billListCmd, billRmCmd)
	rootCmd.AddCommand(billCmd)
}

func runBillAdd(_ *cobra.Command, _ []string) error {
	amount, err := parseAmount(flagBillAmount)
	if err != nil {
		return err
	}

	cfg, kv, ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer kv.Close()

	c, err := ledger.AddCommitment(model.CommitmentInput{
		Name:   flagBillName,
		Amount: amount,
		DueDay: flagBillDue,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Added %q: %s/month, due %s (%s)\n",
		c.Name,
		cli.FormatAmount(cfg.General.Currency, c.Amount),
		cli.FormatDueDay(c.DueDay),
		cli.ShortID(c.ID))
	return nil
}

func runBillList(_ *cobra.Command, _ []string) error {
	cfg, kv, ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer kv.Close()

	commitments := ledger.Commitments()
	if len(commitments) == 0 {
		fmt.Println("\n  No bills yet. Add one with `finza bill add`.")
		return nil
	}

	cur := cfg.General.Currency
	rows := make([][]string, 0, len(commitments))
	for _, c := range commitments {
		rows = append(rows, []string{
			cli.ShortID(c.ID),
			c.Name,
			cli.FormatAmount(cur, c.Amount),
			cli.FormatDueDay(c.DueDay),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Bill", "Monthly", "Due"},
		Rows:    rows,
	}))

	fmt.Printf("\n  Daily burden (30-day month): %s\n",
		cli.FormatAmount(cur, metrics.DailyCommitmentBurden(commitments)))
	return nil
}

func runBillRm(_ *cobra.Command, args []string) error {
	_, kv, ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer kv.Close()

	id, err := resolveID(args[0], commitmentIDs(ledger.Commitments()))
	if err != nil {
		return err
	}
	if err := ledger.RemoveCommitment(id); err != nil {
		return err
	}
	fmt.Printf("  Removed %s\n", cli.ShortID(id))
	return nil
}
