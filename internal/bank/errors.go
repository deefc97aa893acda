package bank

import "errors"

var (
	// ErrNonPositiveAmount is returned when a deposit, withdrawal or transfer amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")
	// ErrMinimumBalance is returned when a savings withdrawal would cross the minimum balance.
	ErrMinimumBalance = errors.New("minimum balance requirement not met")
	// ErrOverdraftLimit is returned when a checking withdrawal would exceed the overdraft limit.
	ErrOverdraftLimit = errors.New("overdraft limit exceeded")
	// ErrInsufficientFunds is returned when the source balance cannot cover a transfer.
	ErrInsufficientFunds = errors.New("insufficient funds for transfer")
	// ErrSameAccount is returned when a transfer names the same account on both sides.
	ErrSameAccount = errors.New("cannot transfer to the same account")
)
