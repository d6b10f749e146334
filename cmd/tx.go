package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finzaapp/finza/internal/cli"
	"github.com/finzaapp/finza/internal/model"
)

var (
	flagTxAmount   string
	flagTxDesc     string
	flagTxKind     string
	flagTxCategory string
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Manage transactions",
}

var txAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an income or expense",
	RunE:  runTxAdd,
}

var txListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, most recent first",
	RunE:  runTxList,
}

var txRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runTxRm,
}

func init() {
	txAddCmd.Flags().StringVarP(&flagTxAmount, "amount", "a", "", "Amount (required)")
	txAddCmd.Flags().StringVarP(&flagTxDesc, "desc", "s", "", "Description (required)")
	txAddCmd.Flags().StringVarP(&flagTxKind, "kind", "k", "expense", "income or expense")
	txAddCmd.Flags().StringVarP(&flagTxCategory, "category", "c", "general", "Category label")
	_ = txAddCmd.MarkFlagRequired("amount")
	_ = txAddCmd.MarkFlagRequired("desc")

	txCmd.AddCommand(txAddCmd, txListCmd, txRmCmd)
	rootCmd.AddCommand(txCmd)
}

func runTxAdd(_ *cobra.Command, _ []string) error {
	amount, err := parseAmount(flagTxAmount)
	if err != nil {
		return err
	}
	kind, err := model.ParseKind(flagTxKind)
	if err != nil {
		return err
	}

	cfg, kv, ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer kv.Close()

	tx, err := ledger.AddTransaction(model.TransactionInput{
		Description: flagTxDesc,
		Amount:      amount,
		Kind:        kind,
		Category:    flagTxCategory,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Recorded %s %s (%s)\n",
		cli.FormatSigned(cfg.General.Currency, tx.Amount, tx.Kind == model.KindIncome),
		tx.Description, cli.ShortID(tx.ID))
	return nil
}

func runTxList(_ *cobra.Command, _ []string) error {
	cfg, kv, ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer kv.Close()

	transactions := ledger.Transactions()
	if len(transactions) == 0 {
		fmt.Println("\n  No transactions yet. Record one with `finza tx add`.")
		return nil
	}

	cur := cfg.General.Currency
	rows := make([][]string, 0, len(transactions))
	for _, t := range transactions {
		amount := cli.FormatSigned(cur, t.Amount, t.Kind == model.KindIncome)
		if t.Kind == model.KindIncome {
			amount = cli.IncomeStyle.Render(amount)
		} else {
			amount = cli.ExpenseStyle.Render(amount)
		}
		rows = append(rows, []string{
			cli.ShortID(t.ID),
			cli.FormatDate(t.Date),
			t.Description,
			t.Category,
			amount,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Date", "Description", "Category", "Amount"},
		Rows:    rows,
	}))
	return nil
}

func runTxRm(_ *cobra.Command, args []string) error {
	_, kv, ledger, err := openLedger()
	if err != nil {
		return err
	}
	defer kv.Close()

	id, err := resolveID(args[0], transactionIDs(ledger.Transactions()))
	if err != nil {
		return err
	}
	if err := ledger.RemoveTransaction(id); err != nil {
		return err
	}
	fmt.Printf("  Removed %s\n", cli.ShortID(id))
	return nil
}
