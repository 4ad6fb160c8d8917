package engine

import "errors"

// Command failures are local, recoverable conditions. A rejected
// command always returns the input state unchanged so the caller can
// retry with a different command.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPriceConflict     = errors.New("item already listed at a different price")
	ErrNoActiveCustomer  = errors.New("no active customer")
	ErrCustomerPresent   = errors.New("a customer is already present")
	ErrBudgetExceeded    = errors.New("price exceeds the customer's budget")
	ErrShopClosed        = errors.New("closed on Sundays")
	ErrUnknownItem       = errors.New("unknown item")
)
