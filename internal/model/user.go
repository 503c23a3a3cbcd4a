// Package model defines the financial entities tracked by the application.
package model

import "time"

// User is an identity record. A user owns categories, transactions and
// budgets; deleting a user cascades to categories and budgets but is
// refused while transactions exist.
type User struct {
	CreatedAt    time.Time
	Username     string
	PasswordHash string
	Email        string
	FullName     string
	ID           int
}
