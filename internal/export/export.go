// Package export writes transactions, categories and report snapshots
// to JSON or XML files.
package export

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"budgeteer/internal/model"
)

// TransactionRow is the flat export shape of a transaction. The Kind
// field carries the variant tag so exports round-trip unambiguously.
type TransactionRow struct {
	Date          time.Time `json:"date" xml:"date"`
	Kind          string    `json:"kind" xml:"kind,attr"`
	Description   string    `json:"description" xml:"description"`
	Amount        string    `json:"amount" xml:"amount"`
	Source        string    `json:"source,omitempty" xml:"source,omitempty"`
	PaymentMethod string    `json:"payment_method,omitempty" xml:"payment_method,omitempty"`
	ID            int       `json:"id" xml:"id,attr"`
	CategoryID    int       `json:"category_id" xml:"category_id"`
	UserID        int       `json:"user_id" xml:"user_id"`
	IsTaxable     bool      `json:"is_taxable,omitempty" xml:"is_taxable,omitempty"`
	IsPlanned     bool      `json:"is_planned,omitempty" xml:"is_planned,omitempty"`
}

// CategoryRow is the flat export shape of a category.
type CategoryRow struct {
	Kind             string `json:"kind" xml:"kind,attr"`
	Name             string `json:"name" xml:"name"`
	Description      string `json:"description,omitempty" xml:"description,omitempty"`
	Color            string `json:"color" xml:"color"`
	MaxMonthlyBudget string `json:"max_monthly_budget,omitempty" xml:"max_monthly_budget,omitempty"`
	ID               int    `json:"id" xml:"id,attr"`
	UserID           int    `json:"user_id" xml:"user_id"`
	IsRecurring      bool   `json:"is_recurring,omitempty" xml:"is_recurring,omitempty"`
	IsEssential      bool   `json:"is_essential,omitempty" xml:"is_essential,omitempty"`
}

// ReportRow is the flat export shape of a monthly report snapshot.
type ReportRow struct {
	GeneratedAt   time.Time `json:"generated_at" xml:"generated_at"`
	Period        string    `json:"period" xml:"period,attr"`
	TotalIncome   string    `json:"total_income" xml:"total_income"`
	TotalExpenses string    `json:"total_expenses" xml:"total_expenses"`
	Balance       string    `json:"balance" xml:"balance"`
	ID            int       `json:"id" xml:"id,attr"`
	UserID        int       `json:"user_id" xml:"user_id"`
}

type transactionsDoc struct {
	XMLName xml.Name         `xml:"transactions"`
	Rows    []TransactionRow `xml:"transaction"`
}

type categoriesDoc struct {
	XMLName xml.Name      `xml:"categories"`
	Rows    []CategoryRow `xml:"category"`
}

func flattenTransaction(txn model.Transaction) TransactionRow {
	meta := txn.Meta()
	row := TransactionRow{
		ID:          meta.ID,
		Kind:        string(txn.Kind()),
		Amount:      meta.Amount.String(),
		Description: meta.Description,
		Date:        meta.Date,
		CategoryID:  meta.CategoryID,
		UserID:      meta.UserID,
	}

	switch v := txn.(type) {
	case *model.Income:
		row.Source = v.Source
		row.IsTaxable = v.IsTaxable
	case *model.Expense:
		row.PaymentMethod = v.PaymentMethod
		row.IsPlanned = v.IsPlanned
	}
	return row
}

func flattenCategory(category model.Category) CategoryRow {
	meta := category.Meta()
	row := CategoryRow{
		ID:          meta.ID,
		Kind:        string(category.Kind()),
		Name:        meta.Name,
		Description: meta.Description,
		Color:       meta.Color,
		UserID:      meta.UserID,
	}

	switch v := category.(type) {
	case *model.IncomeCategory:
		row.IsRecurring = v.IsRecurring
	case *model.ExpenseCategory:
		row.IsEssential = v.IsEssential
		row.MaxMonthlyBudget = v.MaxMonthlyBudget.String()
	}
	return row
}

func flattenReport(report *model.MonthlyReport) ReportRow {
	return ReportRow{
		ID:            report.ID,
		UserID:        report.UserID,
		Period:        report.Period(),
		TotalIncome:   report.TotalIncome.String(),
		TotalExpenses: report.TotalExpenses.String(),
		Balance:       report.Balance.String(),
		GeneratedAt:   report.GeneratedAt,
	}
}

// TransactionsJSON writes transactions as an indented JSON array.
func TransactionsJSON(w io.Writer, transactions []model.Transaction) error {
	rows := make([]TransactionRow, 0, len(transactions))
	for _, txn := range transactions {
		rows = append(rows, flattenTransaction(txn))
	}
	return writeJSON(w, rows)
}

// TransactionsXML writes transactions as an indented XML document.
func TransactionsXML(w io.Writer, transactions []model.Transaction) error {
	doc := transactionsDoc{Rows: make([]TransactionRow, 0, len(transactions))}
	for _, txn := range transactions {
		doc.Rows = append(doc.Rows, flattenTransaction(txn))
	}
	return writeXML(w, doc)
}

// CategoriesJSON writes categories as an indented JSON array.
func CategoriesJSON(w io.Writer, categories []model.Category) error {
	rows := make([]CategoryRow, 0, len(categories))
	for _, category := range categories {
		rows = append(rows, flattenCategory(category))
	}
	return writeJSON(w, rows)
}

// CategoriesXML writes categories as an indented XML document.
func CategoriesXML(w io.Writer, categories []model.Category) error {
	doc := categoriesDoc{Rows: make([]CategoryRow, 0, len(categories))}
	for _, category := range categories {
		doc.Rows = append(doc.Rows, flattenCategory(category))
	}
	return writeXML(w, doc)
}

// ReportJSON writes a single report snapshot as indented JSON.
func ReportJSON(w io.Writer, report *model.MonthlyReport) error {
	return writeJSON(w, flattenReport(report))
}

// ReportXML writes a single report snapshot as indented XML.
func ReportXML(w io.Writer, report *model.MonthlyReport) error {
	return writeXML(w, flattenReport(report))
}

// ToFile creates path (and any missing parent directories) and runs the
// given write function against it.
func ToFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	f, err := os.Create(path) //nolint:gosec // caller-chosen export path
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON export: %w", err)
	}
	return nil
}

func writeXML(w io.Writer, v any) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write XML header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode XML export: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
