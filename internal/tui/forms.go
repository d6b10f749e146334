package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/finzaapp/finza/internal/model"
)

type formKind int

const (
	formNone formKind = iota
	formTransaction
	formGoal
	formBill
	formContribute
)

// formValues backs the huh inputs. It lives behind a pointer so the
// bound fields stay stable while the model value gets copied around.
type formValues struct {
	desc     string
	amount   string
	kind     string
	category string

	name   string
	target string
	days   string

	dueDay string

	goalID   string
	goalName string
}

func (v *formValues) reset() {
	*v = formValues{}
}

func (a *App) openAddForm() {
	a.vals.reset()
	a.status = ""

	switch a.activeTab {
	case tabBills:
		a.formKind = formBill
		a.vals.dueDay = "1"
		a.form = huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Name").Placeholder("Rent").Value(&a.vals.name),
			huh.NewInput().Title("Monthly amount").Placeholder("850").Value(&a.vals.amount),
			huh.NewInput().Title("Due day (1-31)").Value(&a.vals.dueDay),
		))
	case tabGoals:
		a.formKind = formGoal
		a.vals.days = "30"
		a.form = huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Name").Placeholder("Emergency fund").Value(&a.vals.name),
			huh.NewInput().Title("Target amount").Placeholder("3000").Value(&a.vals.target),
			huh.NewInput().Title("Days to reach it").Value(&a.vals.days),
		))
	default:
		a.formKind = formTransaction
		a.vals.kind = string(model.KindExpense)
		a.vals.category = "general"
		a.form = huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Description").Placeholder("Groceries").Value(&a.vals.desc),
			huh.NewInput().Title("Amount").Placeholder("42.50").Value(&a.vals.amount),
			huh.NewSelect[string]().Title("Kind").
				Options(
					huh.NewOption("Expense", string(model.KindExpense)),
					huh.NewOption("Income", string(model.KindIncome)),
				).
				Value(&a.vals.kind),
			huh.NewInput().Title("Category").Value(&a.vals.category),
		))
	}
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width - 4)
	}
}

func (a *App) openContributeForm(goal model.SavingsGoal) {
	a.vals.reset()
	a.status = ""
	a.formKind = formContribute
	a.vals.goalID = goal.ID
	a.vals.goalName = goal.Name
	a.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(fmt.Sprintf("Add to %q", goal.Name)).
			Placeholder("100").
			Value(&a.vals.amount),
	))
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width - 4)
	}
}

// applyForm turns completed form values into a ledger mutation.
func (a *App) applyForm() {
	var err error
	switch a.formKind {
	case formTransaction:
		err = a.applyTransaction()
	case formGoal:
		err = a.applyGoal()
	case formBill:
		err = a.applyBill()
	case formContribute:
		err = a.applyContribution()
	}
	a.formKind = formNone

	if err != nil {
		a.status = err.Error()
		return
	}
	a.recompute()
	a.notifyAdvice()
	a.status = "Saved"
}

func (a *App) applyTransaction() error {
	amount, err := parseFormAmount(a.vals.amount)
	if err != nil {
		return err
	}
	kind, err := model.ParseKind(a.vals.kind)
	if err != nil {
		return err
	}
	_, err = a.ledger.AddTransaction(model.TransactionInput{
		Description: strings.TrimSpace(a.vals.desc),
		Amount:      amount,
		Kind:        kind,
		Category:    strings.TrimSpace(a.vals.category),
	})
	return err
}

func (a *App) applyGoal() error {
	target, err := parseFormAmount(a.vals.target)
	if err != nil {
		return err
	}
	days, err := strconv.Atoi(strings.TrimSpace(a.vals.days))
	if err != nil || days < 1 {
		return fmt.Errorf("days must be a positive number")
	}
	_, err = a.ledger.AddGoal(model.GoalInput{
		Name:         strings.TrimSpace(a.vals.name),
		TargetAmount: target,
		SavedAmount:  decimal.Zero,
		TargetDate:   time.Now().AddDate(0, 0, days),
	})
	return err
}

func (a *App) applyBill() error {
	amount, err := parseFormAmount(a.vals.amount)
	if err != nil {
		return err
	}
	dueDay, err := strconv.Atoi(strings.TrimSpace(a.vals.dueDay))
	if err != nil {
		return fmt.Errorf("due day must be a number")
	}
	_, err = a.ledger.AddCommitment(model.CommitmentInput{
		Name:   strings.TrimSpace(a.vals.name),
		Amount: amount,
		DueDay: dueDay,
	})
	return err
}

func (a *App) applyContribution() error {
	amount, err := parseFormAmount(a.vals.amount)
	if err != nil {
		return err
	}
	_, err = a.ledger.RecordContribution(a.vals.goalID, amount)
	return err
}

func parseFormAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}
