package service

import (
	"fmt"
	"regexp"
	"strings"

	"budgeteer/internal/common"
	"budgeteer/internal/model"
)

// colorPattern accepts hex colors in #RRGGBB or #RGB form.
var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})$`)

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", common.ErrValidation)
	}
	return nil
}

func validateColor(color string) error {
	if !colorPattern.MatchString(color) {
		return fmt.Errorf("%w: color %q must match #RRGGBB or #RGB", common.ErrValidation, color)
	}
	return nil
}

func validatePositiveAmount(amount model.Amount) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero, got %s", common.ErrValidation, amount)
	}
	return nil
}

func validateNonNegativeAmount(amount model.Amount, field string) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s cannot be negative, got %s", common.ErrValidation, field, amount)
	}
	return nil
}

func validateMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12, got %d", common.ErrValidation, month)
	}
	return nil
}

func validateID(id int, field string) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s must be a positive id, got %d", common.ErrValidation, field, id)
	}
	return nil
}
