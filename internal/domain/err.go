package domain

import "fmt"

type ErrorCode string

const (
	CodeInvalidAmount     ErrorCode = "INVALID_AMOUNT"
	CodeAccountNotFound   ErrorCode = "ACCOUNT_NOT_FOUND"
	CodeInsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
)

// WithdrawalError is the structured failure returned by account creation and
// withdrawal processing. Errors with the same Code match under errors.Is.
type WithdrawalError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func NewWithdrawalError(code ErrorCode, message string) *WithdrawalError {
	return &WithdrawalError{Code: code, Message: message}
}

func (e *WithdrawalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *WithdrawalError) Is(target error) bool {
	t, ok := target.(*WithdrawalError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

var (
	ErrInvalidAmount     = NewWithdrawalError(CodeInvalidAmount, "Invalid amount")
	ErrAccountNotFound   = NewWithdrawalError(CodeAccountNotFound, "Account not found")
	ErrInsufficientFunds = NewWithdrawalError(CodeInsufficientFunds, "Insufficient funds")
)
