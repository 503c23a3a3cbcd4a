package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"budgeteer/internal/model"
	"budgeteer/internal/service"
)

// RenderTransactionsTable renders transactions as an aligned table with
// signed, styled amounts.
func RenderTransactionsTable(transactions []model.Transaction) string {
	if len(transactions) == 0 {
		return InfoStyle.Render("No transactions found.")
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		TableHeaderStyle.Render("ID"),
		TableHeaderStyle.Render("Date"),
		TableHeaderStyle.Render("Type"),
		TableHeaderStyle.Render("Amount"),
		TableHeaderStyle.Render("Description"))

	for _, txn := range transactions {
		meta := txn.Meta()
		amount := txn.FormatAmount()
		if txn.Kind() == model.TransactionIncome {
			amount = IncomeStyle.Render(amount)
		} else {
			amount = ExpenseStyle.Render(amount)
		}
		fmt.Fprintf(w, "%d\t%s\t%s %s\t%s\t%s\n",
			meta.ID,
			meta.Date.Format("2006-01-02"),
			txn.Icon(),
			txn.Kind(),
			amount,
			meta.Description)
	}

	_ = w.Flush()
	return sb.String()
}

// RenderCategoriesTable renders categories with their kind icon and color.
func RenderCategoriesTable(categories []model.Category) string {
	if len(categories) == 0 {
		return InfoStyle.Render("No categories found.")
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		TableHeaderStyle.Render("ID"),
		TableHeaderStyle.Render("Name"),
		TableHeaderStyle.Render("Kind"),
		TableHeaderStyle.Render("Description"))

	for _, category := range categories {
		meta := category.Meta()
		description := meta.Description
		if description == "" {
			description = SubtleStyle.Render("(no description)")
		}
		fmt.Fprintf(w, "%d\t%s\t%s %s\t%s\n",
			meta.ID,
			meta.Name,
			category.Icon(),
			category.Kind(),
			description)
	}

	_ = w.Flush()
	return sb.String()
}

// RenderBudgetsTable renders planned amounts per category and period.
func RenderBudgetsTable(budgets []*model.Budget, categoryName func(int) string) string {
	if len(budgets) == 0 {
		return InfoStyle.Render("No budgets found.")
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		TableHeaderStyle.Render("ID"),
		TableHeaderStyle.Render("Period"),
		TableHeaderStyle.Render("Category"),
		TableHeaderStyle.Render("Planned"))

	for _, budget := range budgets {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			budget.ID,
			budget.Period(),
			categoryName(budget.CategoryID),
			budget.PlannedAmount.StringFixed(2))
	}

	_ = w.Flush()
	return sb.String()
}

// RenderSummary renders income, expense and balance totals in a box.
func RenderSummary(title string, summary service.Summary) string {
	balance := summary.Balance.StringFixed(2)
	if summary.Balance.IsNegative() {
		balance = ExpenseStyle.Render(balance)
	} else {
		balance = IncomeStyle.Render(balance)
	}

	content := fmt.Sprintf("Income:   %s\nExpenses: %s\nBalance:  %s",
		IncomeStyle.Render("+"+summary.TotalIncome.StringFixed(2)),
		ExpenseStyle.Render("-"+summary.TotalExpenses.StringFixed(2)),
		balance)

	return RenderBox(ChartIcon+" "+title, content)
}
