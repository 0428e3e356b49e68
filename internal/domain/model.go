package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BankAccount struct {
	ID       string          `json:"id"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

type WithdrawalRequest struct {
	AccountID string          `json:"accountId"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
}

// Transaction is the computed record of a processed withdrawal. It is never
// stored by this module; callers persist RemainingBalance themselves.
type Transaction struct {
	ID               string          `json:"id"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Timestamp        time.Time       `json:"timestamp"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

type WithdrawalResult struct {
	Success     bool        `json:"success"`
	Transaction Transaction `json:"transaction"`
}
