package service

import (
	"strings"

	"budgeteer/internal/model"
)

// UserByUsername matches the user with the given username.
func UserByUsername(username string) Predicate[*model.User] {
	return func(u *model.User) bool { return u.Username == username }
}

// CategoriesByUser matches categories owned by the given user.
func CategoriesByUser(userID int) Predicate[model.Category] {
	return func(c model.Category) bool { return c.Meta().UserID == userID }
}

// TransactionsByUser matches transactions owned by the given user.
func TransactionsByUser(userID int) Predicate[model.Transaction] {
	return func(t model.Transaction) bool { return t.Meta().UserID == userID }
}

// TransactionsByCategory matches transactions referencing the given category.
func TransactionsByCategory(categoryID int) Predicate[model.Transaction] {
	return func(t model.Transaction) bool { return t.Meta().CategoryID == categoryID }
}

// TransactionsInPeriod matches the user's transactions dated in the given
// calendar month.
func TransactionsInPeriod(userID, month, year int) Predicate[model.Transaction] {
	return func(t model.Transaction) bool {
		meta := t.Meta()
		return meta.UserID == userID &&
			meta.Date.Year() == year &&
			int(meta.Date.Month()) == month
	}
}

// TransactionsDescribed matches transactions whose description contains the
// given substring.
func TransactionsDescribed(substring string) Predicate[model.Transaction] {
	return func(t model.Transaction) bool {
		return strings.Contains(t.Meta().Description, substring)
	}
}

// BudgetsByUser matches budgets owned by the given user.
func BudgetsByUser(userID int) Predicate[*model.Budget] {
	return func(b *model.Budget) bool { return b.UserID == userID }
}

// BudgetsForPeriod matches the user's budgets for the given calendar month.
func BudgetsForPeriod(userID, month, year int) Predicate[*model.Budget] {
	return func(b *model.Budget) bool {
		return b.UserID == userID && b.Month == month && b.Year == year
	}
}
