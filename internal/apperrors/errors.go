package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvariant indicates that a caller broke an internal contract (e.g. a malformed transaction
// shape handed to the store). It is never caused by user input.
var ErrInvariant = errors.New("invariant violation")

// ErrInvalidAmount indicates that an amount was zero or negative.
var ErrInvalidAmount = fmt.Errorf("%w: amount must be positive", ErrValidation)

// ErrSelfTransfer indicates a transfer whose source and target are the same account.
var ErrSelfTransfer = fmt.Errorf("%w: source and target accounts must differ", ErrValidation)

// ErrAccountNotFound indicates that an account referenced by a balance operation does not exist.
var ErrAccountNotFound = fmt.Errorf("account %w", ErrNotFound)

// ErrOverdraft indicates that a withdrawal or transfer would make the source balance negative.
var ErrOverdraft = errors.New("insufficient balance")
