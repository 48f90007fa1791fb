package service

import (
	"errors"
	"fmt"
)

// ErrPeriodAlreadyClosed means closing entries for the period exist and a
// repeat close was refused.
var ErrPeriodAlreadyClosed = errors.New("period already closed")

// ErrInvalidPeriod means the period is not a four-digit fiscal year.
var ErrInvalidPeriod = errors.New("invalid period")

// UnbalancedEntryError is the validation failure for an entry whose debit
// and credit totals do not match within the tolerance. Nothing is persisted
// when it is returned.
type UnbalancedEntryError struct {
	TotalDebit  float64
	TotalCredit float64
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("entry is not balanced: debits %.2f != credits %.2f", e.TotalDebit, e.TotalCredit)
}

// InvalidLineError is the validation failure for a posting line with a
// missing account code or a non-positive amount.
type InvalidLineError struct {
	AccountCode string
	Amount      float64
	Reason      string
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("invalid posting line (account %q, amount %.2f): %s", e.AccountCode, e.Amount, e.Reason)
}

// IsValidationError reports whether err is a normal business rejection of
// the entry itself, as opposed to an infrastructure fault.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var unbalanced *UnbalancedEntryError
	if errors.As(err, &unbalanced) {
		return true
	}

	var line *InvalidLineError
	return errors.As(err, &line)
}
